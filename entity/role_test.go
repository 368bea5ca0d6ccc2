package entity

import "testing"

func TestRoleAtLeast(t *testing.T) {
	cases := []struct {
		role, threshold Role
		want            bool
	}{
		{RoleUser, RoleUser, true},
		{RoleUser, RoleAdmin, false},
		{RoleUser, RoleSuperAdmin, false},
		{RoleAdmin, RoleUser, true},
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleSuperAdmin, false},
		{RoleSuperAdmin, RoleUser, true},
		{RoleSuperAdmin, RoleAdmin, true},
		{RoleSuperAdmin, RoleSuperAdmin, true},
		{Role("bogus"), RoleUser, false},
		{RoleUser, Role("bogus"), false},
	}
	for _, c := range cases {
		if got := c.role.AtLeast(c.threshold); got != c.want {
			t.Errorf("%s.AtLeast(%s) = %v, want %v", c.role, c.threshold, got, c.want)
		}
	}
}

func TestRideStatusValid(t *testing.T) {
	for _, s := range []RideStatus{RidePending, RideAccepted, RideInProgress, RideCompleted, RideCancelled} {
		if !s.Valid() {
			t.Errorf("%s must be valid", s)
		}
	}
	if RideStatus("teleported").Valid() {
		t.Error("unknown statuses must be invalid")
	}
	if RideStatus("").Valid() {
		t.Error("empty status must be invalid")
	}
}
