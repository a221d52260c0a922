package ui

import (
	"github.com/linuxmatters/deadair/internal/scanner"
)

// FileStartMsg indicates the scanner has moved on to a new file
type FileStartMsg struct {
	Index int
	Path  string
}

// FileDoneMsg carries the classification of a finished file
type FileDoneMsg struct {
	Index   int
	Outcome scanner.Outcome
}

// AllDoneMsg indicates every file has been scanned
type AllDoneMsg struct{}
