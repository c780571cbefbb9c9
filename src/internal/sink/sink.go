// Package sink implements the per-run addition log: a text file opened once
// in append mode that receives one line per newly added book.
package sink

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// DefaultPrefix is the file name prefix used when none is configured.
const DefaultPrefix = "book_input_"

// maxAttempts bounds the suffixes tried when a run in the same second
// already claimed the timestamped name.
const maxAttempts = 100

// File is an append-only line log. Writes go straight to the OS file, so each
// Append is on disk (modulo page cache) when it returns.
type File struct {
	f    *os.File
	path string
}

// FileName returns the log file name for a run started at now. Attempt 0 is
// the plain timestamped name; later attempts add a numeric suffix.
func FileName(prefix string, now time.Time, attempt int) string {
	if attempt == 0 {
		return fmt.Sprintf("%s%d.txt", prefix, now.Unix())
	}
	return fmt.Sprintf("%s%d-%d.txt", prefix, now.Unix(), attempt)
}

// Open creates dir if missing and opens a fresh log file in it.
// It never appends to a file left behind by another run.
func Open(dir, prefix string, now time.Time) (*File, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("open log sink: %w", err)
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		path := filepath.Join(dir, FileName(prefix, now, attempt))
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL|os.O_APPEND, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("open log sink %s: %w", path, err)
		}
		slog.Info("log sink opened", "path", path)
		return &File{f: f, path: path}, nil
	}
	return nil, fmt.Errorf("open log sink: no free file name for %s%d in %s", prefix, now.Unix(), dir)
}

// Path is the location of the log file.
func (s *File) Path() string { return s.path }

// Append writes line followed by a newline.
func (s *File) Append(line string) error {
	if s.f == nil {
		return fs.ErrClosed
	}
	if _, err := s.f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append to %s: %w", s.path, err)
	}
	return nil
}

// Close releases the file. Closing twice is a no-op.
func (s *File) Close() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	slog.Info("log sink closed", "path", s.path)
	return err
}
