package domain

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{"  Admin  ", RoleAdmin},
		{"secretaria", RoleSecretary},
		{"tecnico", RoleTechnician},
		{"operador", RoleTechnician},
		{"Operador", RoleTechnician},
		{"manager", RoleUnknown},
		{"", RoleUnknown},
	}
	for _, tc := range cases {
		if got := ParseRole(tc.in); got != tc.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRoleKnown(t *testing.T) {
	for _, role := range []Role{RoleAdmin, RoleSecretary, RoleTechnician} {
		if !role.Known() {
			t.Errorf("%v should be known", role)
		}
	}
	if RoleUnknown.Known() {
		t.Error("RoleUnknown should not be known")
	}
	if Role("manager").Known() {
		t.Error("arbitrary role should not be known")
	}
}

func TestValidJobTransition(t *testing.T) {
	cases := []struct {
		from, to JobStatus
		ok       bool
	}{
		{JobStatusScheduled, JobStatusInProgress, true},
		{JobStatusScheduled, JobStatusCancelled, true},
		{JobStatusScheduled, JobStatusDone, false},
		{JobStatusInProgress, JobStatusDone, true},
		{JobStatusInProgress, JobStatusCancelled, true},
		{JobStatusInProgress, JobStatusScheduled, false},
		{JobStatusDone, JobStatusInProgress, false},
		{JobStatusCancelled, JobStatusScheduled, false},
	}
	for _, tc := range cases {
		if got := ValidJobTransition(tc.from, tc.to); got != tc.ok {
			t.Errorf("ValidJobTransition(%v, %v) = %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}
