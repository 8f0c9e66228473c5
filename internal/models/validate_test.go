package models

import (
	"strings"
	"testing"
)

func TestValidateActLengths(t *testing.T) {
	valid := Act{
		Title:       "Plant a tree",
		Description: "Planted an oak in the park",
		Category:    "Nature",
		UserID:      1,
	}
	if err := ValidateAct(&valid); err != nil {
		t.Fatalf("ValidateAct() unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Act)
	}{
		{"short title", func(a *Act) { a.Title = "ab" }},
		{"long title", func(a *Act) { a.Title = strings.Repeat("x", 256) }},
		{"short description", func(a *Act) { a.Description = "too short" }},
		{"long description", func(a *Act) { a.Description = strings.Repeat("x", 1001) }},
		{"short category", func(a *Act) { a.Category = "ab" }},
		{"whitespace only title", func(a *Act) { a.Title = "    " }},
		{"no owner", func(a *Act) { a.UserID = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			act := valid
			tc.mutate(&act)
			if err := ValidateAct(&act); err == nil {
				t.Fatal("ValidateAct() accepted an invalid act")
			}
		})
	}
}

func TestValidateLocationCoordinates(t *testing.T) {
	lat, lng := 48.8566, 2.3522
	valid := Location{City: "Paris", Country: "France", Latitude: &lat, Longitude: &lng}
	if err := ValidateLocation(&valid); err != nil {
		t.Fatalf("ValidateLocation() unexpected error: %v", err)
	}

	badLat := 91.0
	if err := ValidateLocation(&Location{City: "Paris", Country: "France", Latitude: &badLat}); err == nil {
		t.Fatal("ValidateLocation() accepted latitude > 90")
	}
	badLng := -180.5
	if err := ValidateLocation(&Location{City: "Paris", Country: "France", Longitude: &badLng}); err == nil {
		t.Fatal("ValidateLocation() accepted longitude < -180")
	}

	// Coordinates are optional.
	if err := ValidateLocation(&Location{City: "Paris", Country: "France"}); err != nil {
		t.Fatalf("ValidateLocation() without coordinates: %v", err)
	}
}

func TestValidateUserEmail(t *testing.T) {
	if err := ValidateUser(&User{Pseudo: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("ValidateUser() unexpected error: %v", err)
	}
	for _, email := range []string{"", "alice", "alice@", "@example.com", "alice@nodot"} {
		if err := ValidateUser(&User{Pseudo: "alice", Email: email}); err == nil {
			t.Fatalf("ValidateUser() accepted email %q", email)
		}
	}
}

func TestValidateCommentBounds(t *testing.T) {
	if err := ValidateComment(&Comment{Content: "ok", ActID: 1}); err != nil {
		t.Fatalf("ValidateComment() unexpected error: %v", err)
	}
	if err := ValidateComment(&Comment{Content: "x", ActID: 1}); err == nil {
		t.Fatal("ValidateComment() accepted a one-character comment")
	}
	if err := ValidateComment(&Comment{Content: "fine content", ActID: 0}); err == nil {
		t.Fatal("ValidateComment() accepted a comment without an act")
	}
}
