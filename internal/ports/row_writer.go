package ports

// RowWriter is the port for anything that can persist fixture rows.
type RowWriter interface {
	WriteHeader(columns []string) error
	WriteRow(r Row) error
	// Close flushes buffered rows and releases the file. It is safe to call
	// more than once.
	Close() error
}

// SinkOpener creates (or truncates) the file at path and returns a writer for it.
type SinkOpener interface {
	Open(path string) (RowWriter, error)
}
