package xlsx

import (
	"errors"
	"os"

	"github.com/hailam/genfixture/internal/ports"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

type XlsxGenerator struct {
	sheet string
}

func New() ports.SinkOpener {
	return &XlsxGenerator{sheet: sheetName}
}

// Open creates (or truncates) the workbook file at path up front, so an
// unwritable path fails before any row is generated. Rows are streamed into
// Sheet1 and the workbook is serialized on Close.
func (g *XlsxGenerator) Open(path string) (ports.RowWriter, error) {
	out, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	book := excelize.NewFile()
	sw, err := book.NewStreamWriter(g.sheet)
	if err != nil {
		book.Close()
		out.Close()
		return nil, err
	}
	return &rowWriter{out: out, book: book, sw: sw, next: 1}, nil
}

type rowWriter struct {
	out    *os.File
	book   *excelize.File
	sw     *excelize.StreamWriter
	next   int // next 1-based row number
	closed bool
}

func (rw *rowWriter) WriteHeader(columns []string) error {
	values := make([]interface{}, len(columns))
	for i, c := range columns {
		values[i] = c
	}
	return rw.setRow(values)
}

func (rw *rowWriter) WriteRow(r ports.Row) error {
	return rw.setRow([]interface{}{r.Product, r.Price})
}

func (rw *rowWriter) setRow(values []interface{}) error {
	if rw.closed {
		return os.ErrClosed
	}
	cell, err := excelize.CoordinatesToCellName(1, rw.next)
	if err != nil {
		return err
	}
	if err := rw.sw.SetRow(cell, values); err != nil {
		return err
	}
	rw.next++
	return nil
}

// Close flushes the stream, writes the workbook to the file and closes it.
func (rw *rowWriter) Close() error {
	if rw.closed {
		return nil
	}
	rw.closed = true
	err := rw.sw.Flush()
	if err == nil {
		err = rw.book.Write(rw.out)
	}
	if err == nil {
		err = rw.out.Sync()
	}
	return errors.Join(err, rw.book.Close(), rw.out.Close())
}
