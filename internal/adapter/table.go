package adapter

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/cleishm/MACSearch/internal/domain"
)

// macTableCommands maps a device platform to the command that prints its
// MAC forwarding table.
var macTableCommands = map[string]string{
	"cisco_ios": "show mac address-table",
	"procurve":  "show mac-address",
	"junos":     "show ethernet-switching table",
}

// CommandFor returns the MAC-table command for a platform.
func CommandFor(platform string) (string, error) {
	cmd, ok := macTableCommands[platform]
	if !ok {
		return "", fmt.Errorf("unsupported platform %q", platform)
	}
	return cmd, nil
}

var (
	// macTokenPattern matches the MAC notations switches print:
	// aabb.ccdd.eeff (Cisco), aabbcc-ddeeff (ProCurve), and the
	// colon/hyphen separated octet forms.
	macTokenPattern = regexp.MustCompile(
		`^(?:[0-9a-fA-F]{4}\.[0-9a-fA-F]{4}\.[0-9a-fA-F]{4}|[0-9a-fA-F]{6}-[0-9a-fA-F]{6}|[0-9a-fA-F]{1,2}(?:[:-][0-9a-fA-F]{1,2}){5})$`)
	allDigits      = regexp.MustCompile(`^[0-9]+$`)
	trailingDigits = regexp.MustCompile(`([0-9]+)$`)
)

// ParseTable extracts forwarding records from MAC-table command output.
// The parser is tolerant: lines without a recognizable MAC token (headers,
// separators, prompts) are skipped, as are candidate lines whose fields
// cannot be normalized.
func ParseTable(host string, output string) []domain.ForwardingRecord {
	var records []domain.ForwardingRecord

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		rec, ok := parseLine(host, scanner.Text())
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	return records
}

// parseLine extracts one record from one table line.
func parseLine(host, line string) (domain.ForwardingRecord, bool) {
	fields := strings.Fields(line)

	macIdx := -1
	for i, f := range fields {
		if macTokenPattern.MatchString(f) {
			macIdx = i
			break
		}
	}
	if macIdx < 0 {
		return domain.ForwardingRecord{}, false
	}

	mac, err := domain.SanitizeMAC(stripMACPunctuation(fields[macIdx]))
	if err != nil {
		return domain.ForwardingRecord{}, false
	}

	// VLAN is the last purely numeric field. Cisco prints it first
	// (vlan mac type port) and ProCurve last (mac port vlan); in both
	// layouts the port column carries non-digit characters. Tables that
	// omit the VLAN entirely get 0.
	vlan := "0"
	vlanIdx := -1
	for i, f := range fields {
		if i != macIdx && allDigits.MatchString(f) {
			vlan = f
			vlanIdx = i
		}
	}

	// Port comes from the last remaining field that ends in digits
	// (Gi1/0/24 -> 24).
	port := ""
	for i := len(fields) - 1; i >= 0; i-- {
		if i == macIdx || i == vlanIdx {
			continue
		}
		if m := trailingDigits.FindStringSubmatch(fields[i]); m != nil {
			port = m[1]
			break
		}
	}
	if port == "" {
		return domain.ForwardingRecord{}, false
	}

	rec, err := domain.ForwardingRecord{Host: host, Port: port, MAC: mac, VLAN: vlan}.Sanitize()
	if err != nil {
		return domain.ForwardingRecord{}, false
	}
	return rec, true
}

// stripMACPunctuation removes the dot and dash groupings SanitizeMAC does
// not speak (Cisco aabb.ccdd.eeff, ProCurve aabbcc-ddeeff).
func stripMACPunctuation(token string) string {
	if strings.Contains(token, ".") {
		return strings.ReplaceAll(token, ".", "")
	}
	if strings.Count(token, "-") == 1 {
		return strings.ReplaceAll(token, "-", "")
	}
	return token
}
