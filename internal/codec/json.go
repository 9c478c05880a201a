package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cleishm/MACSearch/internal/domain"
)

// JSONCodec handles JSON cache dumps
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

type jsonDump struct {
	Records []domain.ForwardingRecord `json:"records"`
}

// Parse reads a JSON cache dump
func (c *JSONCodec) Parse(r io.Reader) ([]domain.ForwardingRecord, error) {
	var dump jsonDump
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&dump); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return dump.Records, nil
}

// Export writes a JSON cache dump
func (c *JSONCodec) Export(records []domain.ForwardingRecord, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(jsonDump{Records: records}); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
