package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink receives a formatted document
type Sink interface {
	Write(data []byte) error
	Name() string
}

// FileSink writes the document to a file. The file is replaced atomically, so a
// failed write leaves any previous document untouched.
type FileSink struct {
	Path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{
		Path: path,
	}
}

// Write implements the Sink interface
func (s *FileSink) Write(data []byte) error {
	dir := filepath.Dir(s.Path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	// removing the temp file after a successful rename is a no-op
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.Path, err)
	}

	return nil
}

func (s *FileSink) Name() string {
	return s.Path
}

// WriterSink writes the document followed by a newline
type WriterSink struct {
	W io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{
		W: w,
	}
}

// Write implements the Sink interface
func (s *WriterSink) Write(data []byte) error {
	if _, err := fmt.Fprintf(s.W, "%s\n", data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (s *WriterSink) Name() string {
	return "stdout"
}
