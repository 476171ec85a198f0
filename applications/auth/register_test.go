package auth

import (
	"testing"

	"github.com/Furqanhalari/travel-goals/apperr"

	"github.com/stretchr/testify/assert"
)

func registerParams() RegisterParams {
	return RegisterParams{
		FullName:    "Test Traveler",
		Username:    "traveler",
		Email:       "traveler@example.com",
		Phone:       "5551234567",
		Password:    "secret123",
		AccountType: "customer",
	}
}

// Self-registration is limited to customer and vendor accounts. Anything
// else (notably "admin", which exists in user_roles) must be rejected
// before any row is written.
func TestRegisterRejectsUnknownAccountType(t *testing.T) {
	for _, accountType := range []string{"admin", "Admin", "superuser", "root"} {
		t.Run(accountType, func(t *testing.T) {
			p := registerParams()
			p.AccountType = accountType
			_, err := Register(p)
			assert.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterParams)
	}{
		{"missing full name", func(p *RegisterParams) { p.FullName = " " }},
		{"missing username", func(p *RegisterParams) { p.Username = "" }},
		{"missing email", func(p *RegisterParams) { p.Email = "" }},
		{"missing phone", func(p *RegisterParams) { p.Phone = "" }},
		{"missing password", func(p *RegisterParams) { p.Password = "" }},
		{"short password", func(p *RegisterParams) { p.Password = "12345" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := registerParams()
			tc.mutate(&p)
			_, err := Register(p)
			assert.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}
