package application

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hailam/genfixture/internal/ports"
)

// Target is one output file and the format it is written in.
type Target struct {
	Path string
	Type ports.FileType
}

// FixtureService orchestrates fixture generation: it opens every target,
// draws the rows once and writes each row to all targets in order.
type FixtureService struct {
	factory ports.SinkFactory
	src     ports.RandomSource
	log     zerolog.Logger
}

// NewFixtureService constructs a FixtureService with the given factory,
// random source and logger.
func NewFixtureService(factory ports.SinkFactory, src ports.RandomSource, log zerolog.Logger) *FixtureService {
	return &FixtureService{factory: factory, src: src, log: log}
}

// CreateFixture writes the header and RowCount rows to every target. Files are
// created or truncated; a failure part way through leaves whatever was
// written on disk. Every opened file is closed before returning.
func (s *FixtureService) CreateFixture(targets ...Target) (err error) {
	if len(targets) == 0 {
		return errors.New("no output targets given")
	}

	// 1. Resolve sinks before touching the filesystem
	openers := make([]ports.SinkOpener, len(targets))
	for i, t := range targets {
		opener, ferr := s.factory.For(t.Type)
		if ferr != nil {
			return fmt.Errorf("no sink for type '%s': %w", t.Type, ferr)
		}
		openers[i] = opener
	}

	// 2. Open every target
	writers := make([]ports.RowWriter, 0, len(targets))
	defer func() {
		for i, w := range writers {
			if cerr := w.Close(); cerr != nil && err == nil {
				err = &FileAccessError{Path: targets[i].Path, Err: cerr}
			}
		}
		if err != nil && len(writers) > 0 {
			paths := make([]string, len(writers))
			for i := range writers {
				paths[i] = targets[i].Path
			}
			s.log.Warn().Err(err).Strs("paths", paths).Msg("fixture left incomplete on disk")
		}
	}()
	for i, t := range targets {
		w, oerr := openers[i].Open(t.Path)
		if oerr != nil {
			return &FileAccessError{Path: t.Path, Err: oerr}
		}
		writers = append(writers, w)
		s.log.Debug().Str("path", t.Path).Str("type", string(t.Type)).Msg("opened fixture target")
	}

	// 3. Header, then rows in generation order
	for i, w := range writers {
		if werr := w.WriteHeader(Header); werr != nil {
			return &FileAccessError{Path: targets[i].Path, Err: werr}
		}
	}
	for n := 0; n < RowCount; n++ {
		row := NewRow(s.src)
		for i, w := range writers {
			if werr := w.WriteRow(row); werr != nil {
				return &FileAccessError{Path: targets[i].Path, Err: werr}
			}
		}
	}

	s.log.Debug().Int("rows", RowCount).Int("targets", len(targets)).Msg("fixture rows written")
	return nil
}
