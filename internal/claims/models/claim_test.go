package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
)

type ClaimSuite struct {
	suite.Suite
	now time.Time
}

func TestClaimSuite(t *testing.T) {
	suite.Run(t, new(ClaimSuite))
}

func (s *ClaimSuite) SetupTest() {
	s.now = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
}

func (s *ClaimSuite) validFields() ClaimFields {
	return ClaimFields{
		IncidentDate:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Description:         "Rear-end collision",
		IncidentDescription: "Hit from behind at a junction",
		AmountRequested:     25000,
	}
}

func (s *ClaimSuite) TestNewClaim() {
	s.Run("starts SUBMITTED with a derived number", func() {
		claimID := id.NewClaimID()
		c, err := NewClaim(claimID, id.NewPolicyID(), s.validFields(), s.now)
		s.Require().NoError(err)

		s.Equal(ClaimStatusSubmitted, c.Status)
		s.Regexp(`^CLM-[0-9a-f]{8}$`, c.ClaimNumber)
		s.Equal(id.ClaimNumberFor(claimID), c.ClaimNumber)
		s.Equal(s.now, c.FilingDate)
		s.Equal(int64(1), c.Version)
		s.Nil(c.AssignedAdjusterID)
		s.Nil(c.SettlementAmount)
		s.Nil(c.SettlementDate)
		s.Empty(c.Notes)
	})

	s.Run("incident in the future is rejected", func() {
		f := s.validFields()
		f.IncidentDate = s.now.Add(time.Minute)
		_, err := NewClaim(id.NewClaimID(), id.NewPolicyID(), f, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("incident exactly now is accepted", func() {
		f := s.validFields()
		f.IncidentDate = s.now
		_, err := NewClaim(id.NewClaimID(), id.NewPolicyID(), f, s.now)
		s.NoError(err)
	})

	s.Run("incident with an offset is normalised", func() {
		f := s.validFields()
		f.IncidentDate = time.Date(2024, 6, 1, 12, 0, 0, 0, time.FixedZone("EST", -5*60*60))
		c, err := NewClaim(id.NewClaimID(), id.NewPolicyID(), f, s.now)
		s.Require().NoError(err)
		s.Equal(time.UTC, c.IncidentDate.Location())
		s.Equal(17, c.IncidentDate.Hour())
	})
}

func (s *ClaimSuite) TestValidate() {
	cases := []struct {
		name   string
		mutate func(*Claim)
	}{
		{"zero amount", func(c *Claim) { c.AmountRequested = 0 }},
		{"negative amount", func(c *Claim) { c.AmountRequested = -10 }},
		{"blank description", func(c *Claim) { c.Description = " \t" }},
		{"blank incident description", func(c *Claim) { c.IncidentDescription = "" }},
		{"oversized incident description", func(c *Claim) { c.IncidentDescription = strings.Repeat("x", 1001) }},
		{"negative settlement", func(c *Claim) { v := -1.0; c.SettlementAmount = &v }},
		{"amount beyond storage range", func(c *Claim) { c.AmountRequested = 1e12 }},
		{"amount with sub-cent precision", func(c *Claim) { c.AmountRequested = 100.125 }},
		{"settlement with sub-cent precision", func(c *Claim) { v := 10.001; c.SettlementAmount = &v }},
		{"unknown status", func(c *Claim) { c.Status = "PAID" }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			c, err := NewClaim(id.NewClaimID(), id.NewPolicyID(), s.validFields(), s.now)
			s.Require().NoError(err)
			tc.mutate(c)
			err = c.Validate(s.now)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		})
	}

	s.Run("zero settlement is allowed", func() {
		c, err := NewClaim(id.NewClaimID(), id.NewPolicyID(), s.validFields(), s.now)
		s.Require().NoError(err)
		zero := 0.0
		c.SettlementAmount = &zero
		s.NoError(c.Validate(s.now))
	})
}

func (s *ClaimSuite) TestClone() {
	c, err := NewClaim(id.NewClaimID(), id.NewPolicyID(), s.validFields(), s.now)
	s.Require().NoError(err)
	adj := id.AdjusterID(id.NewClaimID())
	amt := 100.0
	c.AssignedAdjusterID = &adj
	c.SettlementAmount = &amt
	c.Notes = append(c.Notes, "first")

	clone := c.Clone()
	*clone.SettlementAmount = 5
	clone.Notes[0] = "changed"

	s.Equal(100.0, *c.SettlementAmount)
	s.Equal("first", c.Notes[0])
	s.Equal(*c.AssignedAdjusterID, *clone.AssignedAdjusterID)
}
