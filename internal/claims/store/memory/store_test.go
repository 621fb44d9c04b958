package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/platform/sentinel"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
	now   time.Time
}

func (s *StoreSuite) SetupTest() {
	s.store = New()
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) newHolder(email string) *models.Policyholder {
	h, err := models.NewPolicyholder(id.NewPolicyholderID(), models.PolicyholderFields{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: time.Date(1985, 12, 10, 0, 0, 0, 0, time.UTC),
		Email:       email,
		Phone:       "+447700900123",
		Address: models.Address{
			Street:     "12 St James's Square",
			City:       "London",
			State:      "Greater London",
			PostalCode: "SW1Y 4JH",
			Country:    "UK",
		},
	}, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreatePolicyholder(s.ctx, h))
	return h
}

func (s *StoreSuite) newPolicy(holderID id.PolicyholderID, status models.PolicyStatus) *models.Policy {
	p, err := models.NewPolicy(id.NewPolicyID(), holderID, models.PolicyTerms{
		Type:           models.PolicyTypeAuto,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CoverageAmount: 50000,
		Premium:        1200,
		Deductible:     500,
		Status:         status,
	}, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreatePolicy(s.ctx, p))
	return p
}

func (s *StoreSuite) newClaim(policyID id.PolicyID) *models.Claim {
	c, err := models.NewClaim(id.NewClaimID(), policyID, models.ClaimFields{
		IncidentDate:        time.Date(2024, 5, 30, 8, 0, 0, 0, time.UTC),
		Description:         "Rear-ended at a junction",
		IncidentDescription: "Stationary at lights, hit from behind",
		AmountRequested:     2500,
	}, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreateClaim(s.ctx, c))
	return c
}

func (s *StoreSuite) newDocument(claimID id.ClaimID, uploaded time.Time) *models.ClaimDocument {
	d, err := models.NewClaimDocument(id.NewDocumentID(), claimID, models.DocumentFields{
		Name:         "photo.jpg",
		DocumentType: "photo",
		ContentType:  "image/jpeg",
		Size:         2048,
		StoragePath:  "claims/" + claimID.String() + "/photo.jpg",
	}, uploaded)
	s.Require().NoError(err)
	s.Require().NoError(s.store.CreateDocument(s.ctx, d))
	return d
}

func (s *StoreSuite) TestPolicyholders() {
	s.Run("finds created policyholder", func() {
		h := s.newHolder("ada@example.com")

		found, err := s.store.FindPolicyholder(s.ctx, h.ID)
		s.Require().NoError(err)
		s.Equal(h.Email, found.Email)
	})

	s.Run("returns ErrNotFound for unknown ID", func() {
		_, err := s.store.FindPolicyholder(s.ctx, id.NewPolicyholderID())
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("rejects duplicate email", func() {
		s.newHolder("dup@example.com")
		h := s.newHolderUnsaved("dup@example.com")

		err := s.store.CreatePolicyholder(s.ctx, h)
		s.ErrorIs(err, sentinel.ErrConflict)
	})

	s.Run("update moves the email index", func() {
		h := s.newHolder("old@example.com")
		h.Email = "new@example.com"
		s.Require().NoError(s.store.UpdatePolicyholder(s.ctx, h))

		other := s.newHolderUnsaved("old@example.com")
		s.NoError(s.store.CreatePolicyholder(s.ctx, other))
	})

	s.Run("update rejects an email owned by someone else", func() {
		s.newHolder("taken@example.com")
		h := s.newHolder("mine@example.com")
		h.Email = "taken@example.com"

		s.ErrorIs(s.store.UpdatePolicyholder(s.ctx, h), sentinel.ErrConflict)
	})

	s.Run("returned rows are copies", func() {
		h := s.newHolder("copy@example.com")
		found, err := s.store.FindPolicyholder(s.ctx, h.ID)
		s.Require().NoError(err)
		found.FirstName = "Changed"

		again, err := s.store.FindPolicyholder(s.ctx, h.ID)
		s.Require().NoError(err)
		s.Equal("Ada", again.FirstName)
	})
}

func (s *StoreSuite) newHolderUnsaved(email string) *models.Policyholder {
	h, err := models.NewPolicyholder(id.NewPolicyholderID(), models.PolicyholderFields{
		FirstName:   "Grace",
		LastName:    "Hopper",
		DateOfBirth: time.Date(1976, 12, 9, 0, 0, 0, 0, time.UTC),
		Email:       email,
		Phone:       "+12025550123",
		Address: models.Address{
			Street:     "1 Navy Way",
			City:       "Arlington",
			State:      "VA",
			PostalCode: "22202",
			Country:    "US",
		},
	}, s.now)
	s.Require().NoError(err)
	return h
}

func (s *StoreSuite) TestPolicyReferencesOwner() {
	p, err := models.NewPolicy(id.NewPolicyID(), id.NewPolicyholderID(), models.PolicyTerms{
		Type:           models.PolicyTypeHealth,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CoverageAmount: 1000,
		Premium:        10,
	}, s.now)
	s.Require().NoError(err)

	s.ErrorIs(s.store.CreatePolicy(s.ctx, p), sentinel.ErrNotFound)
}

func (s *StoreSuite) TestListPoliciesFilters() {
	a := s.newHolder("a@example.com")
	b := s.newHolder("b@example.com")
	active := s.newPolicy(a.ID, models.PolicyStatusActive)
	s.newPolicy(a.ID, models.PolicyStatusCancelled)
	s.newPolicy(b.ID, models.PolicyStatusActive)

	byOwner, err := s.store.ListPolicies(s.ctx, models.PolicyFilter{PolicyholderID: a.ID})
	s.Require().NoError(err)
	s.Len(byOwner, 2)

	activeOfA, err := s.store.ListPolicies(s.ctx, models.PolicyFilter{PolicyholderID: a.ID, Status: models.PolicyStatusActive})
	s.Require().NoError(err)
	s.Require().Len(activeOfA, 1)
	s.Equal(active.ID, activeOfA[0].ID)

	paged, err := s.store.ListPolicies(s.ctx, models.PolicyFilter{Page: models.Page{Limit: 2, Offset: 2}})
	s.Require().NoError(err)
	s.Len(paged, 1)
}

func (s *StoreSuite) TestUpdateClaimIsCompareAndSwap() {
	h := s.newHolder("cas@example.com")
	p := s.newPolicy(h.ID, models.PolicyStatusActive)
	c := s.newClaim(p.ID)

	first, err := s.store.FindClaim(s.ctx, c.ID)
	s.Require().NoError(err)
	second, err := s.store.FindClaim(s.ctx, c.ID)
	s.Require().NoError(err)

	first.Status = models.ClaimStatusApproved
	s.Require().NoError(s.store.UpdateClaim(s.ctx, first))
	s.Equal(int64(2), first.Version)

	second.Status = models.ClaimStatusRejected
	s.ErrorIs(s.store.UpdateClaim(s.ctx, second), sentinel.ErrStaleVersion)

	stored, err := s.store.FindClaim(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(models.ClaimStatusApproved, stored.Status)
	s.Equal(int64(2), stored.Version)
}

func (s *StoreSuite) TestDeleteCascades() {
	h := s.newHolder("cascade@example.com")
	p := s.newPolicy(h.ID, models.PolicyStatusCancelled)
	c := s.newClaim(p.ID)
	s.newDocument(c.ID, s.now)

	s.Require().NoError(s.store.DeletePolicyholder(s.ctx, h.ID))

	_, err := s.store.FindPolicy(s.ctx, p.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.store.FindClaim(s.ctx, c.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	docs, err := s.store.ListDocuments(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Empty(docs)

	// The email is free again once its owner is gone.
	s.newHolder("cascade@example.com")
}

func (s *StoreSuite) TestDocumentsOrderedByUpload() {
	h := s.newHolder("docs@example.com")
	p := s.newPolicy(h.ID, models.PolicyStatusActive)
	c := s.newClaim(p.ID)
	later := s.newDocument(c.ID, s.now.Add(time.Hour))
	earlier := s.newDocument(c.ID, s.now)

	docs, err := s.store.ListDocuments(s.ctx, c.ID)
	s.Require().NoError(err)
	s.Require().Len(docs, 2)
	s.Equal(earlier.ID, docs[0].ID)
	s.Equal(later.ID, docs[1].ID)
}

func (s *StoreSuite) TestRunInTx() {
	s.Run("discards every write on failure", func() {
		boom := errors.New("boom")
		var created *models.Policyholder

		err := s.store.RunInTx(s.ctx, func(txCtx context.Context) error {
			created = s.newHolderUnsaved("rollback@example.com")
			s.Require().NoError(s.store.CreatePolicyholder(txCtx, created))

			_, err := s.store.FindPolicyholder(txCtx, created.ID)
			s.Require().NoError(err, "writes are visible inside the transaction")
			return boom
		})
		s.ErrorIs(err, boom)

		_, err = s.store.FindPolicyholder(s.ctx, created.ID)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("publishes writes on success", func() {
		var created *models.Policyholder
		err := s.store.RunInTx(s.ctx, func(txCtx context.Context) error {
			created = s.newHolderUnsaved("commit@example.com")
			return s.store.CreatePolicyholder(txCtx, created)
		})
		s.Require().NoError(err)

		_, err = s.store.FindPolicyholder(s.ctx, created.ID)
		s.NoError(err)
	})

	s.Run("nested calls join the outer transaction", func() {
		boom := errors.New("boom")
		var created *models.Policyholder
		err := s.store.RunInTx(s.ctx, func(txCtx context.Context) error {
			s.Require().NoError(s.store.RunInTx(txCtx, func(inner context.Context) error {
				created = s.newHolderUnsaved("nested@example.com")
				return s.store.CreatePolicyholder(inner, created)
			}))
			return boom
		})
		s.ErrorIs(err, boom)

		_, err = s.store.FindPolicyholder(s.ctx, created.ID)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("refuses a cancelled context", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()

		err := s.store.RunInTx(ctx, func(context.Context) error { return nil })
		s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
	})
}
