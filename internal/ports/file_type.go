package ports

// FileType is the identifier for each output format.
type FileType string

const (
	FileTypeDelimited FileType = "csv"
	FileTypeXLSX      FileType = "xlsx"
)
