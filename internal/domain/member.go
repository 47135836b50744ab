package domain

import (
	"strings"
	"time"
)

// Member is a registered user of the member guard.
type Member struct {
	ID           int64
	Name         string
	Kana         string
	Email        string
	PasswordHash string
	PostalCode   string
	Address      string
	PhoneNumber  string
	Birthday     string // "YYYYMMDD", optional
	Occupation   string // optional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreatedBy implements OwnedResource: a profile is owned by the member it
// belongs to.
func (m *Member) CreatedBy() int64 { return m.ID }

// UpdateMemberProfile holds the editable fields of a member profile.
type UpdateMemberProfile struct {
	Name        string
	Kana        string
	Email       string
	PostalCode  string
	Address     string
	PhoneNumber string
	Birthday    string
	Occupation  string
}

// Validate checks that the profile update is well-formed.
func (u *UpdateMemberProfile) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrValidation("name is required")
	}
	if strings.TrimSpace(u.Kana) == "" {
		return ErrValidation("kana is required")
	}
	if strings.TrimSpace(u.Email) == "" || !strings.Contains(u.Email, "@") {
		return ErrValidation("a valid email address is required")
	}
	if !allDigits(u.PostalCode) || len(u.PostalCode) != 7 {
		return ErrValidation("postal code must be 7 digits")
	}
	if strings.TrimSpace(u.Address) == "" {
		return ErrValidation("address is required")
	}
	if !allDigits(u.PhoneNumber) || len(u.PhoneNumber) < 10 || len(u.PhoneNumber) > 11 {
		return ErrValidation("phone number must be 10 or 11 digits")
	}
	if u.Birthday != "" && (!allDigits(u.Birthday) || len(u.Birthday) != 8) {
		return ErrValidation("birthday must be 8 digits (YYYYMMDD)")
	}
	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Admin is an administrator of the admin guard. Administrators live in a
// credential store separate from members.
type Admin struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
