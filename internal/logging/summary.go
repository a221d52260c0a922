// Console rendering of the end-of-run summary, printed after the progress
// UI has torn down.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/linuxmatters/deadair/internal/config"
	"github.com/linuxmatters/deadair/internal/mains"
	"github.com/linuxmatters/deadair/internal/scanner"
)

// bytesToGB converts a byte count to base-2 gigabytes for display.
func bytesToGB(n int64) float64 {
	return float64(n) / (1 << 30)
}

// RenderSummary writes the run summary: counts, reclaimable space and the
// report location. Audit mode shows what a delete run would save; delete
// mode shows what was actually removed alongside the total flagged.
func RenderSummary(w io.Writer, cfg config.Config, sum scanner.Summary) {
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "SCAN COMPLETE: %s (%s mode)\n", cfg.Root, cfg.Mode)
	fmt.Fprintln(w, strings.Repeat("=", 70))

	fmt.Fprintf(w, "Scanned WAV files        : %d\n", sum.Scanned)
	fmt.Fprintf(w, "Silent candidates        : %d\n", sum.Silent)
	fmt.Fprintf(w, "Errors                   : %d\n", sum.Errors)

	if cfg.Mode == config.ModeDelete {
		fmt.Fprintf(w, "Deleted                  : %d\n", sum.Deleted)
		fmt.Fprintf(w, "GB reclaimed             : %.3f GB (deleted)\n", bytesToGB(sum.BytesReclaimed))
		fmt.Fprintf(w, "GB flagged as silent     : %.3f GB\n", bytesToGB(sum.BytesFlaggable))
	} else {
		fmt.Fprintf(w, "GB available to be saved : %.3f GB\n", bytesToGB(sum.BytesFlaggable))
	}

	fmt.Fprintf(w, "CSV report               : %s\n", cfg.ReportPath)

	if sum.NearThresholdKeeps > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%d kept file(s) peaked within 10x of the %.6g threshold.\n",
			sum.NearThresholdKeeps, cfg.SilenceThreshold)
		fmt.Fprintf(w, "Listen for %d Hz mains hum in those files before raising the threshold.\n",
			mains.LocalFrequency())
	}

	fmt.Fprintln(w)
}
