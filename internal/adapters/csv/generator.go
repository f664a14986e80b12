package csv

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/hailam/genfixture/internal/ports"
	"github.com/hailam/genfixture/internal/utils"
)

const (
	separator  = ";"
	lineEnding = "\n" // Use LF line endings for consistency
	bufSize    = 8192
)

type CsvGenerator struct{}

func New() ports.SinkOpener {
	return &CsvGenerator{}
}

// Open creates (or truncates) the file at path and returns a writer emitting
// semicolon-separated lines. Fields are written verbatim, without quoting.
func (g *CsvGenerator) Open(path string) (ports.RowWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &rowWriter{f: f, w: bufio.NewWriterSize(f, bufSize)}, nil
}

type rowWriter struct {
	f      *os.File
	w      *bufio.Writer
	closed bool
}

func (rw *rowWriter) WriteHeader(columns []string) error {
	return rw.writeLine(strings.Join(columns, separator))
}

func (rw *rowWriter) WriteRow(r ports.Row) error {
	return rw.writeLine(r.Product + separator + utils.FormatDecimal(r.Price))
}

func (rw *rowWriter) writeLine(line string) error {
	if rw.closed {
		return os.ErrClosed
	}
	if _, err := rw.w.WriteString(line); err != nil {
		return err
	}
	_, err := rw.w.WriteString(lineEnding)
	return err
}

// Close flushes the buffer, syncs and closes the file. The file is closed
// even when the flush fails.
func (rw *rowWriter) Close() error {
	if rw.closed {
		return nil
	}
	rw.closed = true
	flushErr := rw.w.Flush()
	var syncErr error
	if flushErr == nil {
		syncErr = rw.f.Sync()
	}
	return errors.Join(flushErr, syncErr, rw.f.Close())
}
