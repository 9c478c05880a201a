package codec

import (
	"fmt"
	"io"

	"github.com/cleishm/MACSearch/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML cache dumps
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

type yamlDump struct {
	Records []domain.ForwardingRecord `yaml:"records"`
}

// Parse reads a YAML cache dump
func (c *YAMLCodec) Parse(r io.Reader) ([]domain.ForwardingRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML: %w", err)
	}

	var dump yamlDump
	if err := yaml.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return dump.Records, nil
}

// Export writes a YAML cache dump
func (c *YAMLCodec) Export(records []domain.ForwardingRecord, w io.Writer) error {
	data, err := yaml.Marshal(yamlDump{Records: records})
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return nil
}
