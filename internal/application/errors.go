package application

// FileAccessError reports that a fixture file could not be created, written
// or closed. Its message is the underlying I/O error's message, unchanged.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string { return e.Err.Error() }

func (e *FileAccessError) Unwrap() error { return e.Err }
