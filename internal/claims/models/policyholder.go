package models

import (
	"time"

	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/email"
	"coverline/pkg/platform/strings"
	"coverline/pkg/platform/validation"
)

// maxAgeYears bounds a realistic date of birth.
const maxAgeYears = 150

// Address is the postal address of a policyholder.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// PolicyholderFields are the mutable attributes of a policyholder. Create and
// update both take the full set.
type PolicyholderFields struct {
	FirstName      string
	LastName       string
	DateOfBirth    time.Time
	Email          string
	Phone          string
	AlternatePhone string
	Address        Address
}

// Policyholder is the individual who owns policies.
//
// Invariants:
//   - Names, contact fields and every address line are non-blank
//   - Email has the user@domain.tld shape and is stored lowercased
//   - Phone (and AlternatePhone when set) is an international number
//   - DateOfBirth is strictly before today (UTC) and at most 150 years ago
type Policyholder struct {
	ID             id.PolicyholderID
	FirstName      string
	LastName       string
	DateOfBirth    time.Time
	Email          string
	Phone          string
	AlternatePhone string
	Address        Address
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPolicyholder constructs and validates a policyholder.
func NewPolicyholder(holderID id.PolicyholderID, f PolicyholderFields, now time.Time) (*Policyholder, error) {
	p := &Policyholder{ID: holderID, CreatedAt: now, UpdatedAt: now}
	p.assign(f)
	if err := p.Validate(now); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Policyholder) assign(f PolicyholderFields) {
	p.FirstName = f.FirstName
	p.LastName = f.LastName
	p.DateOfBirth = StartOfDay(f.DateOfBirth)
	p.Email = email.Normalize(f.Email)
	p.Phone = f.Phone
	p.AlternatePhone = f.AlternatePhone
	p.Address = f.Address
}

// Validate checks every policyholder invariant against the given clock.
func (p *Policyholder) Validate(now time.Time) error {
	required := []struct {
		name  string
		value string
		max   int
	}{
		{"first_name", p.FirstName, validation.MaxNameLength},
		{"last_name", p.LastName, validation.MaxNameLength},
		{"email", p.Email, 0},
		{"phone", p.Phone, 0},
		{"street", p.Address.Street, validation.MaxStreetLength},
		{"city", p.Address.City, validation.MaxNameLength},
		{"state", p.Address.State, validation.MaxNameLength},
		{"postal_code", p.Address.PostalCode, validation.MaxPostalCodeLength},
		{"country", p.Address.Country, validation.MaxNameLength},
	}
	for _, field := range required {
		if strings.IsBlank(field.value) {
			return dErrors.New(dErrors.CodeValidation, field.name+" is required")
		}
		if field.max > 0 && len(field.value) > field.max {
			return dErrors.New(dErrors.CodeValidation, field.name+" is too long")
		}
	}
	if !email.IsValid(p.Email) {
		return dErrors.New(dErrors.CodeValidation, "email must be a valid address")
	}
	if !validation.IsPhone(p.Phone) {
		return dErrors.New(dErrors.CodeValidation, "phone must be 9 to 15 digits with an optional leading +")
	}
	if p.AlternatePhone != "" && !validation.IsPhone(p.AlternatePhone) {
		return dErrors.New(dErrors.CodeValidation, "alternate_phone must be 9 to 15 digits with an optional leading +")
	}

	today := StartOfDay(now)
	if p.DateOfBirth.IsZero() || !p.DateOfBirth.Before(today) {
		return dErrors.New(dErrors.CodeValidation, "date_of_birth must be before today")
	}
	if p.DateOfBirth.Before(today.AddDate(-maxAgeYears, 0, 0)) {
		return dErrors.New(dErrors.CodeValidation, "date_of_birth is not realistic")
	}
	return nil
}

// ApplyUpdate replaces the mutable fields. The policyholder is left untouched
// when the result would be invalid.
func (p *Policyholder) ApplyUpdate(f PolicyholderFields, now time.Time) error {
	next := *p
	next.assign(f)
	next.UpdatedAt = now
	if err := next.Validate(now); err != nil {
		return err
	}
	*p = next
	return nil
}

// Age returns the policyholder's age in whole years on now's UTC date.
func (p *Policyholder) Age(now time.Time) int {
	now = now.UTC()
	years := now.Year() - p.DateOfBirth.Year()
	if now.Month() < p.DateOfBirth.Month() ||
		(now.Month() == p.DateOfBirth.Month() && now.Day() < p.DateOfBirth.Day()) {
		years--
	}
	return years
}

// FullName joins first and last name.
func (p *Policyholder) FullName() string {
	return p.FirstName + " " + p.LastName
}

// PolicyholderDetails is a policyholder with the identities of the policies it owns.
type PolicyholderDetails struct {
	Policyholder *Policyholder
	PolicyIDs    []id.PolicyID
}

// Clone returns a copy safe to hand out of a store.
func (p *Policyholder) Clone() *Policyholder {
	c := *p
	return &c
}
