package cli

import "testing"

func TestFilterFrom(t *testing.T) {
	if f := filterFrom(nil); f.Requested {
		t.Fatalf("expected absent filter for no flag values")
	}

	f := filterFrom([]string{"-"})
	if !f.Requested || len(f.Values) != 0 {
		t.Fatalf("expected streamed filter for \"-\", got %+v", f)
	}

	f = filterFrom([]string{"aa:bb:cc:dd:ee:ff", "10"})
	if !f.Requested || len(f.Values) != 2 {
		t.Fatalf("expected literal filter, got %+v", f)
	}

	// "-" only switches mode when it is the sole value.
	f = filterFrom([]string{"-", "10"})
	if len(f.Values) != 2 {
		t.Fatalf("expected literal filter, got %+v", f)
	}
}

func TestInferFormat(t *testing.T) {
	cases := map[string]string{
		"dump.json": "json",
		"dump.yaml": "yaml",
		"dump.YML":  "yaml",
		"dump.csv":  "csv",
		"dump":      "json",
	}
	for path, want := range cases {
		if got := inferFormat(path); got != want {
			t.Errorf("inferFormat(%q) = %q, want %q", path, got, want)
		}
	}
}
