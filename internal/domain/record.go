package domain

// Column identifies a forwarding table column
type Column string

const (
	ColumnHost Column = "host"
	ColumnPort Column = "port"
	ColumnMAC  Column = "mac"
	ColumnVLAN Column = "vlan"
)

// ForwardingRecord is one observed MAC forwarding table entry.
// All fields are stored in canonical form: mac is twelve lowercase hex
// digits without separators, port and vlan are decimal digit strings.
type ForwardingRecord struct {
	Host string `json:"host" yaml:"host"`
	Port string `json:"port" yaml:"port"`
	MAC  string `json:"mac" yaml:"mac"`
	VLAN string `json:"vlan" yaml:"vlan"`
}

// Sanitize returns a canonicalized copy of the record, or a ValidationError
// if any field cannot be normalized. Used when records enter the system
// from a device parser or an imported dump.
func (r ForwardingRecord) Sanitize() (ForwardingRecord, error) {
	host := SanitizeHost(r.Host)

	port, err := SanitizePort(r.Port)
	if err != nil {
		return ForwardingRecord{}, err
	}

	mac, err := SanitizeMAC(r.MAC)
	if err != nil {
		return ForwardingRecord{}, err
	}

	vlan, err := SanitizeVLAN(r.VLAN)
	if err != nil {
		return ForwardingRecord{}, err
	}

	return ForwardingRecord{Host: host, Port: port, MAC: mac, VLAN: vlan}, nil
}
