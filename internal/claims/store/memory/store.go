// Package memory is an in-process claims store.
//
// All tables live in one snapshot. RunInTx clones the snapshot, runs the
// use-case against the clone under the write lock and swaps it in only when
// the use-case succeeds, so a failed use-case leaves no partial writes.
// Calls outside a transaction validate before mutating and are atomic on
// their own.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
	dErrors "coverline/pkg/domain-errors"
	"coverline/pkg/platform/sentinel"
)

type tables struct {
	holders       map[id.PolicyholderID]*models.Policyholder
	policies      map[id.PolicyID]*models.Policy
	claims        map[id.ClaimID]*models.Claim
	documents     map[id.DocumentID]*models.ClaimDocument
	emails        map[string]id.PolicyholderID
	policyNumbers map[string]id.PolicyID
	claimNumbers  map[string]id.ClaimID
}

func newTables() *tables {
	return &tables{
		holders:       make(map[id.PolicyholderID]*models.Policyholder),
		policies:      make(map[id.PolicyID]*models.Policy),
		claims:        make(map[id.ClaimID]*models.Claim),
		documents:     make(map[id.DocumentID]*models.ClaimDocument),
		emails:        make(map[string]id.PolicyholderID),
		policyNumbers: make(map[string]id.PolicyID),
		claimNumbers:  make(map[string]id.ClaimID),
	}
}

// clone copies the maps. Rows are never mutated in place, so they are shared.
func (t *tables) clone() *tables {
	c := newTables()
	for k, v := range t.holders {
		c.holders[k] = v
	}
	for k, v := range t.policies {
		c.policies[k] = v
	}
	for k, v := range t.claims {
		c.claims[k] = v
	}
	for k, v := range t.documents {
		c.documents[k] = v
	}
	for k, v := range t.emails {
		c.emails[k] = v
	}
	for k, v := range t.policyNumbers {
		c.policyNumbers[k] = v
	}
	for k, v := range t.claimNumbers {
		c.claimNumbers[k] = v
	}
	return c
}

type txKey struct{}

// Store implements the claims service store ports and its StoreTx.
type Store struct {
	mu   sync.RWMutex
	data *tables
}

func New() *Store {
	return &Store{data: newTables()}
}

// RunInTx runs fn against a private snapshot and publishes it on success.
// Nested calls join the outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*tables); ok {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(context.WithValue(ctx, txKey{}, work)); err != nil {
		return err
	}
	s.data = work
	return nil
}

// Ping reports whether the store is usable. The in-memory store always is.
func (s *Store) Ping(context.Context) error {
	return nil
}

func (s *Store) read(ctx context.Context, fn func(t *tables) error) error {
	if t, ok := ctx.Value(txKey{}).(*tables); ok {
		return fn(t)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.data)
}

func (s *Store) write(ctx context.Context, fn func(t *tables) error) error {
	if t, ok := ctx.Value(txKey{}).(*tables); ok {
		return fn(t)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// Policyholders

func (s *Store) CreatePolicyholder(ctx context.Context, holder *models.Policyholder) error {
	return s.write(ctx, func(t *tables) error {
		if _, ok := t.holders[holder.ID]; ok {
			return fmt.Errorf("policyholder %s: %w", holder.ID, sentinel.ErrConflict)
		}
		if _, ok := t.emails[holder.Email]; ok {
			return fmt.Errorf("email %s: %w", holder.Email, sentinel.ErrConflict)
		}
		t.holders[holder.ID] = holder.Clone()
		t.emails[holder.Email] = holder.ID
		return nil
	})
}

func (s *Store) FindPolicyholder(ctx context.Context, holderID id.PolicyholderID) (*models.Policyholder, error) {
	var out *models.Policyholder
	err := s.read(ctx, func(t *tables) error {
		h, ok := t.holders[holderID]
		if !ok {
			return fmt.Errorf("policyholder %s: %w", holderID, sentinel.ErrNotFound)
		}
		out = h.Clone()
		return nil
	})
	return out, err
}

func (s *Store) UpdatePolicyholder(ctx context.Context, holder *models.Policyholder) error {
	return s.write(ctx, func(t *tables) error {
		current, ok := t.holders[holder.ID]
		if !ok {
			return fmt.Errorf("policyholder %s: %w", holder.ID, sentinel.ErrNotFound)
		}
		if owner, taken := t.emails[holder.Email]; taken && owner != holder.ID {
			return fmt.Errorf("email %s: %w", holder.Email, sentinel.ErrConflict)
		}
		delete(t.emails, current.Email)
		t.emails[holder.Email] = holder.ID
		t.holders[holder.ID] = holder.Clone()
		return nil
	})
}

func (s *Store) DeletePolicyholder(ctx context.Context, holderID id.PolicyholderID) error {
	return s.write(ctx, func(t *tables) error {
		h, ok := t.holders[holderID]
		if !ok {
			return fmt.Errorf("policyholder %s: %w", holderID, sentinel.ErrNotFound)
		}
		for _, p := range t.policies {
			if p.PolicyholderID == holderID {
				t.deletePolicy(p)
			}
		}
		delete(t.emails, h.Email)
		delete(t.holders, holderID)
		return nil
	})
}

func (s *Store) ListPolicyholders(ctx context.Context, page models.Page) ([]*models.Policyholder, error) {
	var out []*models.Policyholder
	err := s.read(ctx, func(t *tables) error {
		all := make([]*models.Policyholder, 0, len(t.holders))
		for _, h := range t.holders {
			all = append(all, h)
		}
		slices.SortFunc(all, func(a, b *models.Policyholder) int {
			return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID.String(), b.ID.String()))
		})
		from, to := page.Slice(len(all))
		out = make([]*models.Policyholder, 0, to-from)
		for _, h := range all[from:to] {
			out = append(out, h.Clone())
		}
		return nil
	})
	return out, err
}

// Policies

func (s *Store) CreatePolicy(ctx context.Context, policy *models.Policy) error {
	return s.write(ctx, func(t *tables) error {
		if _, ok := t.holders[policy.PolicyholderID]; !ok {
			return fmt.Errorf("policyholder %s: %w", policy.PolicyholderID, sentinel.ErrNotFound)
		}
		if _, ok := t.policies[policy.ID]; ok {
			return fmt.Errorf("policy %s: %w", policy.ID, sentinel.ErrConflict)
		}
		if _, ok := t.policyNumbers[policy.PolicyNumber]; ok {
			return fmt.Errorf("policy number %s: %w", policy.PolicyNumber, sentinel.ErrConflict)
		}
		t.policies[policy.ID] = policy.Clone()
		t.policyNumbers[policy.PolicyNumber] = policy.ID
		return nil
	})
}

func (s *Store) FindPolicy(ctx context.Context, policyID id.PolicyID) (*models.Policy, error) {
	var out *models.Policy
	err := s.read(ctx, func(t *tables) error {
		p, ok := t.policies[policyID]
		if !ok {
			return fmt.Errorf("policy %s: %w", policyID, sentinel.ErrNotFound)
		}
		out = p.Clone()
		return nil
	})
	return out, err
}

// UpdatePolicy replaces the mutable columns. Owner and policy number are
// kept from the stored row.
func (s *Store) UpdatePolicy(ctx context.Context, policy *models.Policy) error {
	return s.write(ctx, func(t *tables) error {
		current, ok := t.policies[policy.ID]
		if !ok {
			return fmt.Errorf("policy %s: %w", policy.ID, sentinel.ErrNotFound)
		}
		next := policy.Clone()
		next.PolicyholderID = current.PolicyholderID
		next.PolicyNumber = current.PolicyNumber
		next.CreatedAt = current.CreatedAt
		t.policies[policy.ID] = next
		return nil
	})
}

func (s *Store) DeletePolicy(ctx context.Context, policyID id.PolicyID) error {
	return s.write(ctx, func(t *tables) error {
		p, ok := t.policies[policyID]
		if !ok {
			return fmt.Errorf("policy %s: %w", policyID, sentinel.ErrNotFound)
		}
		t.deletePolicy(p)
		return nil
	})
}

func (t *tables) deletePolicy(p *models.Policy) {
	for _, c := range t.claims {
		if c.PolicyID == p.ID {
			t.deleteClaim(c)
		}
	}
	delete(t.policyNumbers, p.PolicyNumber)
	delete(t.policies, p.ID)
}

func (s *Store) ListPolicies(ctx context.Context, filter models.PolicyFilter) ([]*models.Policy, error) {
	var out []*models.Policy
	err := s.read(ctx, func(t *tables) error {
		var matched []*models.Policy
		for _, p := range t.policies {
			if filter.Matches(p) {
				matched = append(matched, p)
			}
		}
		slices.SortFunc(matched, func(a, b *models.Policy) int {
			return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID.String(), b.ID.String()))
		})
		from, to := filter.Page.Slice(len(matched))
		out = make([]*models.Policy, 0, to-from)
		for _, p := range matched[from:to] {
			out = append(out, p.Clone())
		}
		return nil
	})
	return out, err
}

// Claims

func (s *Store) CreateClaim(ctx context.Context, claim *models.Claim) error {
	return s.write(ctx, func(t *tables) error {
		if _, ok := t.policies[claim.PolicyID]; !ok {
			return fmt.Errorf("policy %s: %w", claim.PolicyID, sentinel.ErrNotFound)
		}
		if _, ok := t.claims[claim.ID]; ok {
			return fmt.Errorf("claim %s: %w", claim.ID, sentinel.ErrConflict)
		}
		if _, ok := t.claimNumbers[claim.ClaimNumber]; ok {
			return fmt.Errorf("claim number %s: %w", claim.ClaimNumber, sentinel.ErrConflict)
		}
		t.claims[claim.ID] = claim.Clone()
		t.claimNumbers[claim.ClaimNumber] = claim.ID
		return nil
	})
}

func (s *Store) FindClaim(ctx context.Context, claimID id.ClaimID) (*models.Claim, error) {
	var out *models.Claim
	err := s.read(ctx, func(t *tables) error {
		c, ok := t.claims[claimID]
		if !ok {
			return fmt.Errorf("claim %s: %w", claimID, sentinel.ErrNotFound)
		}
		out = c.Clone()
		return nil
	})
	return out, err
}

// UpdateClaim stores claim when its Version matches the stored row and bumps
// the version on both.
func (s *Store) UpdateClaim(ctx context.Context, claim *models.Claim) error {
	return s.write(ctx, func(t *tables) error {
		current, ok := t.claims[claim.ID]
		if !ok {
			return fmt.Errorf("claim %s: %w", claim.ID, sentinel.ErrNotFound)
		}
		if current.Version != claim.Version {
			return fmt.Errorf("claim %s at version %d: %w", claim.ID, current.Version, sentinel.ErrStaleVersion)
		}
		next := claim.Clone()
		next.Version++
		next.PolicyID = current.PolicyID
		next.ClaimNumber = current.ClaimNumber
		next.FilingDate = current.FilingDate
		next.CreatedAt = current.CreatedAt
		t.claims[claim.ID] = next
		claim.Version = next.Version
		return nil
	})
}

func (s *Store) DeleteClaim(ctx context.Context, claimID id.ClaimID) error {
	return s.write(ctx, func(t *tables) error {
		c, ok := t.claims[claimID]
		if !ok {
			return fmt.Errorf("claim %s: %w", claimID, sentinel.ErrNotFound)
		}
		t.deleteClaim(c)
		return nil
	})
}

func (t *tables) deleteClaim(c *models.Claim) {
	for docID, d := range t.documents {
		if d.ClaimID == c.ID {
			delete(t.documents, docID)
		}
	}
	delete(t.claimNumbers, c.ClaimNumber)
	delete(t.claims, c.ID)
}

func (s *Store) ListClaims(ctx context.Context, filter models.ClaimFilter) ([]*models.Claim, error) {
	var out []*models.Claim
	err := s.read(ctx, func(t *tables) error {
		var matched []*models.Claim
		for _, c := range t.claims {
			if filter.Matches(c) {
				matched = append(matched, c)
			}
		}
		slices.SortFunc(matched, func(a, b *models.Claim) int {
			return cmp.Or(a.FilingDate.Compare(b.FilingDate), cmp.Compare(a.ID.String(), b.ID.String()))
		})
		from, to := filter.Page.Slice(len(matched))
		out = make([]*models.Claim, 0, to-from)
		for _, c := range matched[from:to] {
			out = append(out, c.Clone())
		}
		return nil
	})
	return out, err
}

// Documents

func (s *Store) CreateDocument(ctx context.Context, doc *models.ClaimDocument) error {
	return s.write(ctx, func(t *tables) error {
		if _, ok := t.claims[doc.ClaimID]; !ok {
			return fmt.Errorf("claim %s: %w", doc.ClaimID, sentinel.ErrNotFound)
		}
		if _, ok := t.documents[doc.ID]; ok {
			return fmt.Errorf("document %s: %w", doc.ID, sentinel.ErrConflict)
		}
		t.documents[doc.ID] = doc.Clone()
		return nil
	})
}

func (s *Store) ListDocuments(ctx context.Context, claimID id.ClaimID) ([]*models.ClaimDocument, error) {
	out := []*models.ClaimDocument{}
	err := s.read(ctx, func(t *tables) error {
		for _, d := range t.documents {
			if d.ClaimID == claimID {
				out = append(out, d.Clone())
			}
		}
		slices.SortFunc(out, func(a, b *models.ClaimDocument) int {
			return cmp.Or(a.UploadedAt.Compare(b.UploadedAt), cmp.Compare(a.ID.String(), b.ID.String()))
		})
		return nil
	})
	return out, err
}
