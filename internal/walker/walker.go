// Package walker enumerates the WAV files under a directory tree.
package walker

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// FindWAVFiles recursively gathers every .wav file under root, matched
// case-insensitively on the extension. The full list is collected up front
// so the progress display knows its true total before scanning starts.
//
// Unreadable subdirectories are logged and skipped; only a failure on the
// root itself is returned as an error.
func FindWAVFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logrus.WithField("path", path).WithError(err).Warn("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".wav") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
