package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/philipp01105/logchain/core"
)

// openFile is a variable to allow overriding file opening in tests
var openFile = func(name string, perm os.FileMode) (io.WriteCloser, error) {
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, perm)
}

// FileConfig holds configuration for the file sink
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Perm is the mode used when the file is created (default: 0644)
	Perm os.FileMode
	// CreateDirs creates missing parent directories before each open
	CreateDirs bool
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Perm == 0 {
		cfg.Perm = 0644
	}
}

// FileSink appends lines to a file. Every Write is a self-contained
// open, write, flush and close cycle; no handle is kept between calls.
// The file is created if missing and never truncated.
//
// Writes from several goroutines to the same path are not coordinated.
type FileSink struct {
	filename   string
	perm       os.FileMode
	createDirs bool
}

// NewFileSink creates a new file sink. The file is not opened until the
// first Write, so an unwritable path is reported by Write.
func NewFileSink(cfg FileConfig) (*FileSink, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	applyFileDefaults(&cfg)

	return &FileSink{
		filename:   cfg.Filename,
		perm:       cfg.Perm,
		createDirs: cfg.CreateDirs,
	}, nil
}

// Filename returns the path the sink appends to
func (s *FileSink) Filename() string {
	return s.filename
}

// Write appends line and a newline to the file. The file is closed on
// every return path; a close failure is combined with any earlier error.
func (s *FileSink) Write(line string) (err error) {
	if s.createDirs {
		if mkErr := os.MkdirAll(filepath.Dir(s.filename), 0755); mkErr != nil {
			return s.fail(core.OpOpen, mkErr)
		}
	}

	file, err := openFile(s.filename, s.perm)
	if err != nil {
		return s.fail(core.OpOpen, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = multierr.Append(err, s.fail(core.OpClose, closeErr))
		}
	}()

	w := bufio.NewWriterSize(file, 4096)
	if _, err := w.WriteString(line); err != nil {
		return s.fail(core.OpWrite, err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return s.fail(core.OpWrite, err)
	}
	if err := w.Flush(); err != nil {
		return s.fail(core.OpFlush, err)
	}
	return nil
}

func (s *FileSink) fail(op string, err error) error {
	return &core.SinkError{Target: s.filename, Op: op, Err: err}
}
