package apiref

import (
	"errors"
	"testing"
)

func TestParseIDExtractsTrailingInteger(t *testing.T) {
	id, err := ParseID("/api/challenges/3", "challenges")
	if err != nil {
		t.Fatalf("ParseID() unexpected error: %v", err)
	}
	if id != 3 {
		t.Fatalf("ParseID() = %d, want 3", id)
	}
}

func TestParseIDRejectsMalformedReferences(t *testing.T) {
	cases := []struct {
		name     string
		ref      string
		resource string
	}{
		{"wrong resource", "/api/locations/3", "challenges"},
		{"missing id", "/api/challenges/", "challenges"},
		{"non-numeric id", "/api/challenges/abc", "challenges"},
		{"zero id", "/api/challenges/0", "challenges"},
		{"extra segment", "/api/challenges/3/extra", "challenges"},
		{"bare id", "3", "challenges"},
		{"empty", "", "challenges"},
	}

	for _, tc := range cases {
		if _, err := ParseID(tc.ref, tc.resource); !errors.Is(err, ErrNotAReference) {
			t.Fatalf("%s: ParseID(%q) error = %v, want ErrNotAReference", tc.name, tc.ref, err)
		}
	}
}
