package factory

import (
	"fmt"

	"github.com/hailam/genfixture/internal/adapters/csv"
	"github.com/hailam/genfixture/internal/adapters/xlsx"
	"github.com/hailam/genfixture/internal/ports"
)

// StaticSinkFactory provides concrete implementations for SinkOpeners.
type StaticSinkFactory struct {
	sinks map[ports.FileType]ports.SinkOpener
}

// NewStaticSinkFactory creates a new factory with pre-initialized sinks.
func NewStaticSinkFactory() ports.SinkFactory {
	return &StaticSinkFactory{
		sinks: map[ports.FileType]ports.SinkOpener{
			ports.FileTypeDelimited: csv.New(),
			ports.FileTypeXLSX:      xlsx.New(),
		},
	}
}

// For returns the appropriate SinkOpener for the given FileType.
func (f *StaticSinkFactory) For(t ports.FileType) (ports.SinkOpener, error) {
	sink, ok := f.sinks[t]
	if !ok {
		return nil, fmt.Errorf("unsupported file type: '%s'", t)
	}
	return sink, nil
}
