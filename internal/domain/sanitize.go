package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError reports a filter token or record field that could not be
// normalized into canonical form.
type ValidationError struct {
	Field Column
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Field, e.Value)
}

var (
	canonicalMAC = regexp.MustCompile(`^[0-9a-f]{12}$`)
	decimalOnly  = regexp.MustCompile(`^[0-9]+$`)
)

// SanitizeMAC normalizes a raw MAC address into twelve lowercase hex digits
// with no separators. Space and hyphen separators are accepted, and
// single-digit octets in separated notation are zero-padded (a:2:34:...
// becomes 0a:02:34:... before the separators are stripped).
func SanitizeMAC(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", ":")
	s = strings.ReplaceAll(s, "-", ":")

	parts := strings.Split(s, ":")
	for i, part := range parts {
		if len(part) == 1 {
			parts[i] = "0" + part
		}
	}
	s = strings.Join(parts, "")

	if !canonicalMAC.MatchString(s) {
		return "", &ValidationError{Field: ColumnMAC, Value: raw}
	}
	return s, nil
}

// SanitizePort validates a raw port token. The digit string is returned
// unchanged, so "01" and "1" remain distinct keys.
func SanitizePort(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !decimalOnly.MatchString(s) {
		return "", &ValidationError{Field: ColumnPort, Value: raw}
	}
	return s, nil
}

// SanitizeVLAN validates a raw VLAN token.
func SanitizeVLAN(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if !decimalOnly.MatchString(s) {
		return "", &ValidationError{Field: ColumnVLAN, Value: raw}
	}
	return s, nil
}

// SanitizeHost trims surrounding whitespace. Hostnames are opaque keys and
// get no further validation.
func SanitizeHost(raw string) string {
	return strings.TrimSpace(raw)
}
