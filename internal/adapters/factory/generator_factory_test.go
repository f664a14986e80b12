package factory

import (
	"strings"
	"testing"

	"github.com/hailam/genfixture/internal/adapters/csv"
	"github.com/hailam/genfixture/internal/adapters/xlsx"
	"github.com/hailam/genfixture/internal/ports"
)

func TestNewStaticSinkFactory(t *testing.T) {
	factory := NewStaticSinkFactory()
	if factory == nil {
		t.Fatal("NewStaticSinkFactory() returned nil")
	}
	if _, ok := factory.(*StaticSinkFactory); !ok {
		t.Errorf("NewStaticSinkFactory() returned type %T, want *StaticSinkFactory", factory)
	}
}

func TestStaticSinkFactory_For(t *testing.T) {
	factory := NewStaticSinkFactory()

	tests := []struct {
		name        string
		fileType    ports.FileType
		check       func(t *testing.T, s ports.SinkOpener)
		wantErrText string
	}{
		{
			name:     "Get delimited sink",
			fileType: ports.FileTypeDelimited,
			check: func(t *testing.T, s ports.SinkOpener) {
				if _, ok := s.(*csv.CsvGenerator); !ok {
					t.Errorf("For(csv) returned type %T, want *csv.CsvGenerator", s)
				}
			},
		},
		{
			name:     "Get xlsx sink",
			fileType: ports.FileTypeXLSX,
			check: func(t *testing.T, s ports.SinkOpener) {
				if _, ok := s.(*xlsx.XlsxGenerator); !ok {
					t.Errorf("For(xlsx) returned type %T, want *xlsx.XlsxGenerator", s)
				}
			},
		},
		{
			name:        "Get unsupported type",
			fileType:    "pdf",
			wantErrText: "unsupported file type: 'pdf'",
		},
		{
			name:        "Get empty type",
			fileType:    "",
			wantErrText: "unsupported file type: ''",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := factory.For(tc.fileType)
			if tc.wantErrText != "" {
				if err == nil {
					t.Fatalf("For(%q) expected an error containing %q, but got nil", tc.fileType, tc.wantErrText)
				}
				if !strings.Contains(err.Error(), tc.wantErrText) {
					t.Errorf("For(%q) error = %q, expected error containing %q", tc.fileType, err.Error(), tc.wantErrText)
				}
				return
			}
			if err != nil {
				t.Fatalf("For(%q) returned unexpected error: %v", tc.fileType, err)
			}
			tc.check(t, got)
		})
	}
}
