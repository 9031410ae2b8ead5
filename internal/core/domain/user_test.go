package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		input string
		want  UserRole
	}{
		{"employee", RoleEmployee},
		{"EMPLOYEE", RoleEmployee},
		{" emploYee ", RoleEmployee},
		{"customer", RoleCustomer},
		{"  CustomeR  ", RoleCustomer},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.input)
		if err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRole(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseRole_Invalid(t *testing.T) {
	for _, input := range []string{"", "admin", "ROLE_EMPLOYEE ", "wizard"} {
		if _, err := ParseRole(input); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("ParseRole(%q): expected ErrInvalidCredentials, got %v", input, err)
		}
	}
}
