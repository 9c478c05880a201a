package query

import (
	"fmt"
	"strings"

	"github.com/cleishm/MACSearch/internal/domain"
)

// Filter is the run-time state of one filter category.
type Filter struct {
	// Requested is false when the category was not mentioned at all.
	Requested bool
	// Values holds the literal filter values. Requested with zero values
	// means the category is streamed: one value per input line at
	// execution time.
	Values []string
}

// Literal returns a filter with known values.
func Literal(values ...string) Filter {
	return Filter{Requested: true, Values: values}
}

// Streamed returns a filter whose values arrive during execution.
func Streamed() Filter {
	return Filter{Requested: true}
}

// Criteria is the full filter specification for one search run.
type Criteria struct {
	MAC  Filter
	Port Filter
	VLAN Filter
	// Exclusions are raw host:port pairs to subtract from the result.
	// Always literal, never streamed.
	Exclusions []string
}

// Build compiles criteria into a predicate set. Categories are processed in
// the fixed order mac, port, vlan; that order defines both the condition
// order and the positional binder order for streamed input lines. Build has
// no side effects, and any malformed literal value or exclusion pair fails
// the whole build.
func Build(c Criteria) (*domain.PredicateSet, error) {
	pred := &domain.PredicateSet{}

	categories := []struct {
		column   domain.Column
		filter   Filter
		sanitize domain.SanitizeFunc
	}{
		{domain.ColumnMAC, c.MAC, domain.SanitizeMAC},
		{domain.ColumnPort, c.Port, domain.SanitizePort},
		{domain.ColumnVLAN, c.VLAN, domain.SanitizeVLAN},
	}

	for _, cat := range categories {
		switch {
		case !cat.filter.Requested:
			// Absent: matches everything, contributes nothing.

		case len(cat.filter.Values) > 0:
			values := make([]string, 0, len(cat.filter.Values))
			for _, raw := range cat.filter.Values {
				v, err := cat.sanitize(raw)
				if err != nil {
					return nil, err
				}
				values = append(values, v)
			}
			pred.Conditions = append(pred.Conditions, domain.Membership{Column: cat.column, Values: values})

		default:
			pred.Conditions = append(pred.Conditions, domain.Placeholder{Column: cat.column})
			pred.Binders = append(pred.Binders, domain.Binder{Column: cat.column, Sanitize: cat.sanitize})
		}
	}

	for _, raw := range c.Exclusions {
		host, port, err := splitExclusion(raw)
		if err != nil {
			return nil, err
		}
		pred.Conditions = append(pred.Conditions, domain.Exclusion{Host: host, Port: port})
	}

	if len(pred.Conditions) == 0 {
		// No filter must return the entire cache, not an empty result.
		pred.Conditions = append(pred.Conditions, domain.MatchAll{})
	}

	return pred, nil
}

// splitExclusion parses a raw host:port exclusion pair.
func splitExclusion(raw string) (string, string, error) {
	hostPart, portPart, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return "", "", fmt.Errorf("failed to parse exclusion %q: expected host:port", raw)
	}

	host := domain.SanitizeHost(hostPart)
	if host == "" {
		return "", "", fmt.Errorf("failed to parse exclusion %q: empty host", raw)
	}

	port, err := domain.SanitizePort(portPart)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse exclusion %q: %w", raw, err)
	}

	return host, port, nil
}
