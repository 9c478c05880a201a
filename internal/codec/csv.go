package codec

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleishm/MACSearch/internal/domain"
)

// CSVCodec handles CSV cache dumps
type CSVCodec struct{}

// NewCSVCodec creates a new CSV codec
func NewCSVCodec() *CSVCodec {
	return &CSVCodec{}
}

// Format returns the codec format identifier
func (c *CSVCodec) Format() string {
	return "csv"
}

var csvHeader = []string{"host", "port", "mac", "vlan"}

// Parse reads a CSV cache dump. A leading header row is skipped.
func (c *CSVCodec) Parse(r io.Reader) ([]domain.ForwardingRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 4

	var records []domain.ForwardingRecord
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}

		if first {
			first = false
			if row[0] == csvHeader[0] && row[1] == csvHeader[1] {
				continue
			}
		}

		records = append(records, domain.ForwardingRecord{
			Host: row[0],
			Port: row[1],
			MAC:  row[2],
			VLAN: row[3],
		})
	}
	return records, nil
}

// Export writes a CSV cache dump with a header row
func (c *CSVCodec) Export(records []domain.ForwardingRecord, w io.Writer) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		if err := writer.Write([]string{rec.Host, rec.Port, rec.MAC, rec.VLAN}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
