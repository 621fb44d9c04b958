package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
)

type PolicyholderSuite struct {
	suite.Suite
	now time.Time
}

func TestPolicyholderSuite(t *testing.T) {
	suite.Run(t, new(PolicyholderSuite))
}

func (s *PolicyholderSuite) SetupTest() {
	s.now = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
}

func (s *PolicyholderSuite) validFields() PolicyholderFields {
	return PolicyholderFields{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: time.Date(1985, 12, 10, 0, 0, 0, 0, time.UTC),
		Email:       "Ada@Example.com",
		Phone:       "+447911123456",
		Address: Address{
			Street:     "12 St James's Square",
			City:       "London",
			State:      "Greater London",
			PostalCode: "SW1Y 4JH",
			Country:    "UK",
		},
	}
}

func (s *PolicyholderSuite) TestNewPolicyholder() {
	s.Run("valid fields", func() {
		p, err := NewPolicyholder(id.NewPolicyholderID(), s.validFields(), s.now)
		s.Require().NoError(err)
		s.Equal("ada@example.com", p.Email)
		s.Equal(s.now, p.CreatedAt)
		s.Equal(s.now, p.UpdatedAt)
		s.Equal(38, p.Age(s.now))
	})

	s.Run("blank required field", func() {
		f := s.validFields()
		f.Address.City = "   "
		_, err := NewPolicyholder(id.NewPolicyholderID(), f, s.now)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "city")
	})

	s.Run("malformed email", func() {
		f := s.validFields()
		f.Email = "ada@example"
		_, err := NewPolicyholder(id.NewPolicyholderID(), f, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("malformed phone", func() {
		f := s.validFields()
		f.Phone = "12-34"
		_, err := NewPolicyholder(id.NewPolicyholderID(), f, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("alternate phone checked only when present", func() {
		f := s.validFields()
		f.AlternatePhone = "not-a-phone"
		_, err := NewPolicyholder(id.NewPolicyholderID(), f, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		f.AlternatePhone = ""
		_, err = NewPolicyholder(id.NewPolicyholderID(), f, s.now)
		s.NoError(err)
	})
}

func (s *PolicyholderSuite) TestDateOfBirth() {
	s.Run("today is rejected", func() {
		f := s.validFields()
		f.DateOfBirth = StartOfDay(s.now)
		_, err := NewPolicyholder(id.NewPolicyholderID(), f, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("yesterday is accepted", func() {
		f := s.validFields()
		f.DateOfBirth = StartOfDay(s.now).AddDate(0, 0, -1)
		p, err := NewPolicyholder(id.NewPolicyholderID(), f, s.now)
		s.Require().NoError(err)
		s.Equal(0, p.Age(s.now))
	})

	s.Run("future is rejected", func() {
		f := s.validFields()
		f.DateOfBirth = s.now.AddDate(1, 0, 0)
		_, err := NewPolicyholder(id.NewPolicyholderID(), f, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unrealistic age is rejected", func() {
		f := s.validFields()
		f.DateOfBirth = time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC)
		_, err := NewPolicyholder(id.NewPolicyholderID(), f, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *PolicyholderSuite) TestApplyUpdate() {
	s.Run("refreshes updated_at", func() {
		p, err := NewPolicyholder(id.NewPolicyholderID(), s.validFields(), s.now)
		s.Require().NoError(err)

		later := s.now.Add(time.Hour)
		f := s.validFields()
		f.LastName = "King"
		s.Require().NoError(p.ApplyUpdate(f, later))

		s.Equal("King", p.LastName)
		s.Equal(later, p.UpdatedAt)
		s.Equal(s.now, p.CreatedAt)
	})

	s.Run("invalid update leaves the policyholder unchanged", func() {
		p, err := NewPolicyholder(id.NewPolicyholderID(), s.validFields(), s.now)
		s.Require().NoError(err)
		before := *p

		f := s.validFields()
		f.LastName = "King"
		f.Email = "broken"
		err = p.ApplyUpdate(f, s.now.Add(time.Hour))

		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal(before, *p)
	})
}
