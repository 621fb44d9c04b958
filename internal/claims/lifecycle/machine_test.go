package lifecycle

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
)

type MachineSuite struct {
	suite.Suite
	strict     *Machine
	permissive *Machine
	now        time.Time
	adjuster   id.AdjusterID
}

func TestMachineSuite(t *testing.T) {
	suite.Run(t, new(MachineSuite))
}

func (s *MachineSuite) SetupTest() {
	s.strict = NewMachine()
	s.permissive = NewMachine(WithPermissive(true))
	s.now = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	s.adjuster = id.AdjusterID(uuid.New())
}

func (s *MachineSuite) claimIn(status models.ClaimStatus) *models.Claim {
	c, err := models.NewClaim(id.NewClaimID(), id.NewPolicyID(), models.ClaimFields{
		IncidentDate:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Description:         "Burst pipe",
		IncidentDescription: "Kitchen flooded overnight",
		AmountRequested:     1000,
	}, s.now.Add(-time.Hour))
	s.Require().NoError(err)
	c.Status = status
	return c
}

func (s *MachineSuite) transitionTo(to models.ClaimStatus) Transition {
	t := Transition{To: to}
	if to == models.ClaimStatusUnderReview {
		adj := s.adjuster
		t.AdjusterID = &adj
	}
	return t
}

func (s *MachineSuite) TestSettlement() {
	for _, from := range models.AllClaimStatuses {
		if from == models.ClaimStatusApproved {
			continue
		}
		for _, m := range []*Machine{s.strict, s.permissive} {
			s.Run("settle from "+string(from), func() {
				c := s.claimIn(from)
				err := m.Process(c, Transition{To: models.ClaimStatusSettled}, s.now)
				s.Require().Error(err)
				s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
				s.Equal(from, c.Status)
				s.Nil(c.SettlementDate)
			})
		}
	}

	s.Run("settle from APPROVED stamps the settlement date", func() {
		c := s.claimIn(models.ClaimStatusApproved)
		amount := 900.0
		err := s.strict.Process(c, Transition{To: models.ClaimStatusSettled, SettlementAmount: &amount}, s.now)
		s.Require().NoError(err)

		s.Equal(models.ClaimStatusSettled, c.Status)
		s.Require().NotNil(c.SettlementDate)
		s.Equal(s.now, *c.SettlementDate)
		s.Equal(900.0, *c.SettlementAmount)
		s.Equal(s.now, c.UpdatedAt)
	})
}

func (s *MachineSuite) TestUnderReview() {
	s.Run("requires an adjuster", func() {
		c := s.claimIn(models.ClaimStatusSubmitted)
		err := s.strict.Process(c, Transition{To: models.ClaimStatusUnderReview}, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal(models.ClaimStatusSubmitted, c.Status)
		s.Nil(c.AssignedAdjusterID)
	})

	s.Run("nil adjuster UUID counts as missing", func() {
		c := s.claimIn(models.ClaimStatusSubmitted)
		zero := id.AdjusterID(uuid.Nil)
		err := s.permissive.Process(c, Transition{To: models.ClaimStatusUnderReview, AdjusterID: &zero}, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("adjuster check runs before adjacency", func() {
		c := s.claimIn(models.ClaimStatusSettled)
		err := s.strict.Process(c, Transition{To: models.ClaimStatusUnderReview}, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("assigns the adjuster", func() {
		c := s.claimIn(models.ClaimStatusSubmitted)
		err := s.strict.Process(c, s.transitionTo(models.ClaimStatusUnderReview), s.now)
		s.Require().NoError(err)
		s.Require().NotNil(c.AssignedAdjusterID)
		s.Equal(s.adjuster, *c.AssignedAdjusterID)
		s.Equal(s.now, c.UpdatedAt)
	})
}

func (s *MachineSuite) TestAdjacencyTable() {
	allowed := map[models.ClaimStatus]map[models.ClaimStatus]bool{}
	for from, tos := range adjacency {
		allowed[from] = map[models.ClaimStatus]bool{}
		for _, to := range tos {
			allowed[from][to] = true
		}
	}

	for _, from := range models.AllClaimStatuses {
		for _, to := range models.AllClaimStatuses {
			s.Run(string(from)+"->"+string(to), func() {
				c := s.claimIn(from)
				err := s.strict.Process(c, s.transitionTo(to), s.now)
				if allowed[from][to] {
					s.Require().NoError(err)
					s.Equal(to, c.Status)
					return
				}
				s.Require().Error(err)
				s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
				s.Equal(from, c.Status)
			})
		}
	}
}

func (s *MachineSuite) TestTerminalStatesHaveNoExits() {
	s.Empty(s.strict.Allowed(models.ClaimStatusRejected))
	s.Empty(s.strict.Allowed(models.ClaimStatusSettled))
	s.Len(s.permissive.Allowed(models.ClaimStatusSettled), len(models.AllClaimStatuses))
}

func (s *MachineSuite) TestPermissive() {
	s.Run("reopening a settled claim is allowed", func() {
		c := s.claimIn(models.ClaimStatusSettled)
		s.NoError(s.permissive.Process(c, Transition{To: models.ClaimStatusRejected}, s.now))
		s.Equal(models.ClaimStatusRejected, c.Status)
	})

	s.Run("strict machine refuses the same move", func() {
		c := s.claimIn(models.ClaimStatusSettled)
		err := s.strict.Process(c, Transition{To: models.ClaimStatusRejected}, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
	})
}

func (s *MachineSuite) TestPayloadRules() {
	s.Run("unknown target status", func() {
		c := s.claimIn(models.ClaimStatusSubmitted)
		err := s.strict.Process(c, Transition{To: "PAID"}, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("note is appended in order", func() {
		c := s.claimIn(models.ClaimStatusSubmitted)
		first, second := "photos requested", "photos received"
		s.Require().NoError(s.strict.Process(c, Transition{To: models.ClaimStatusAdditionalInfoRequired, Note: &first}, s.now))
		s.Require().NoError(s.strict.Process(c, Transition{To: models.ClaimStatusSubmitted, Note: &second}, s.now))
		s.Equal([]string{first, second}, c.Notes)
	})

	s.Run("blank note is rejected", func() {
		c := s.claimIn(models.ClaimStatusSubmitted)
		blank := "  "
		err := s.strict.Process(c, Transition{To: models.ClaimStatusRejected, Note: &blank}, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Empty(c.Notes)
	})

	s.Run("negative settlement amount is rejected", func() {
		c := s.claimIn(models.ClaimStatusSubmitted)
		amount := -1.0
		err := s.strict.Process(c, Transition{To: models.ClaimStatusApproved, SettlementAmount: &amount}, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("settlement amount with a non-settling status is rejected", func() {
		c := s.claimIn(models.ClaimStatusSubmitted)
		amount := 10.0
		err := s.strict.Process(c, Transition{To: models.ClaimStatusRejected, SettlementAmount: &amount}, s.now)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Nil(c.SettlementAmount)
	})

	s.Run("approval records the settlement amount without a settlement date", func() {
		c := s.claimIn(models.ClaimStatusUnderReview)
		amount := 750.0
		s.Require().NoError(s.strict.Process(c, Transition{To: models.ClaimStatusApproved, SettlementAmount: &amount}, s.now))
		s.Equal(750.0, *c.SettlementAmount)
		s.Nil(c.SettlementDate)
	})
}
