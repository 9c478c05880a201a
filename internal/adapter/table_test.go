package adapter

import (
	"reflect"
	"testing"

	"github.com/cleishm/MACSearch/internal/domain"
)

func TestParseTableCiscoOutput(t *testing.T) {
	output := `          Mac Address Table
-------------------------------------------

Vlan    Mac Address       Type        Ports
----    -----------       --------    -----
  10    aabb.ccdd.eeff    DYNAMIC     Gi1/0/24
  10    1122.3344.5566    DYNAMIC     Gi1/0/1
  20    dead.beef.cafe    STATIC      Po2
Total Mac Addresses for this criterion: 3
`

	got := ParseTable("sw1", output)

	want := []domain.ForwardingRecord{
		{Host: "sw1", Port: "24", MAC: "aabbccddeeff", VLAN: "10"},
		{Host: "sw1", Port: "1", MAC: "112233445566", VLAN: "10"},
		{Host: "sw1", Port: "2", MAC: "deadbeefcafe", VLAN: "20"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseTableProCurveOutput(t *testing.T) {
	output := ` Status and Counters - Port Address Table

  MAC Address   Port  VLAN
  ------------- ----- ----
  aabbcc-ddeeff 24    10
`

	got := ParseTable("sw2", output)

	want := []domain.ForwardingRecord{
		{Host: "sw2", Port: "24", MAC: "aabbccddeeff", VLAN: "10"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestParseTableSkipsGarbage(t *testing.T) {
	output := "not a table\nat all\n"
	if got := ParseTable("sw1", output); len(got) != 0 {
		t.Fatalf("expected no records, got %v", got)
	}
}

func TestCommandFor(t *testing.T) {
	cmd, err := CommandFor("cisco_ios")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd != "show mac address-table" {
		t.Fatalf("unexpected command %q", cmd)
	}

	if _, err := CommandFor("ancient_hub"); err == nil {
		t.Fatalf("expected error for unsupported platform")
	}
}
