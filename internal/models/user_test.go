package models

import "testing"

func TestRoleListAlwaysIncludesBaseRole(t *testing.T) {
	cases := []struct {
		name  string
		roles []string
	}{
		{"empty", nil},
		{"admin only", []string{RoleAdmin}},
		{"already present", []string{RoleUser, RoleAdmin}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var u User
			if err := u.SetRoleList(tc.roles); err != nil {
				t.Fatalf("SetRoleList() unexpected error: %v", err)
			}
			if !u.HasRole(RoleUser) {
				t.Fatalf("RoleList() = %v, missing %s", u.RoleList(), RoleUser)
			}
		})
	}
}

func TestRoleListDeduplicates(t *testing.T) {
	var u User
	if err := u.SetRoleList([]string{RoleUser, RoleUser, RoleAdmin}); err != nil {
		t.Fatalf("SetRoleList() unexpected error: %v", err)
	}

	roles := u.RoleList()
	if len(roles) != 2 {
		t.Fatalf("RoleList() = %v, want two unique roles", roles)
	}
}

func TestHasRoleDistinguishesAdmin(t *testing.T) {
	var u User
	if err := u.SetRoleList(nil); err != nil {
		t.Fatalf("SetRoleList() unexpected error: %v", err)
	}
	if u.HasRole(RoleAdmin) {
		t.Fatal("plain user reported as admin")
	}
}
