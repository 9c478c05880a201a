// Package codec handles forwarding cache dumps in various formats.
//
// Dumps let a populated cache be carried across runs or machines without
// re-polling the devices. Importers re-enter records through the domain
// sanitizers downstream; codecs themselves only translate bytes.
package codec

import (
	"fmt"
	"io"

	"github.com/cleishm/MACSearch/internal/domain"
)

// Importer parses a cache dump
type Importer interface {
	Parse(r io.Reader) ([]domain.ForwardingRecord, error)
	Format() string
}

// Exporter writes a cache dump
type Exporter interface {
	Export(records []domain.ForwardingRecord, w io.Writer) error
	Format() string
}

// Codec handles both directions of one dump format
type Codec interface {
	Importer
	Exporter
}

// For returns the codec for a format name.
func For(format string) (Codec, error) {
	switch format {
	case "json":
		return NewJSONCodec(), nil
	case "yaml":
		return NewYAMLCodec(), nil
	case "csv":
		return NewCSVCodec(), nil
	default:
		return nil, fmt.Errorf("unknown dump format %q (want json, yaml or csv)", format)
	}
}
