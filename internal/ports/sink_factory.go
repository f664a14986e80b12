package ports

// SinkFactory is the port for looking up sinks by FileType.
type SinkFactory interface {
	// For returns a SinkOpener for the given FileType, or an error if unsupported.
	For(t FileType) (SinkOpener, error)
}
