package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
)

const policyColumns = `id, policyholder_id, policy_number, policy_type, start_date, end_date,
	coverage_amount, premium, deductible, status, terms_and_conditions, created_at, updated_at`

func (s *Store) CreatePolicy(ctx context.Context, p *models.Policy) error {
	query := `
		INSERT INTO policies (` + policyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := s.q(ctx).ExecContext(ctx, query,
		uuid.UUID(p.ID), uuid.UUID(p.PolicyholderID), p.PolicyNumber, string(p.Type),
		p.StartDate, p.EndDate, p.CoverageAmount, p.Premium, p.Deductible, string(p.Status),
		string(p.TermsAndConditions), p.CreatedAt, p.UpdatedAt,
	)
	return classify(err, "insert policy")
}

func (s *Store) FindPolicy(ctx context.Context, policyID id.PolicyID) (*models.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE id = $1`
	p, err := scanPolicy(s.q(ctx).QueryRowContext(ctx, query, uuid.UUID(policyID)))
	if err != nil {
		return nil, classify(err, fmt.Sprintf("find policy %s", policyID))
	}
	return p, nil
}

// UpdatePolicy writes the mutable columns. Owner, policy number and
// created_at are never rewritten.
func (s *Store) UpdatePolicy(ctx context.Context, p *models.Policy) error {
	query := `
		UPDATE policies SET
			policy_type = $2, start_date = $3, end_date = $4, coverage_amount = $5,
			premium = $6, deductible = $7, status = $8, terms_and_conditions = $9,
			updated_at = $10
		WHERE id = $1
	`
	res, err := s.q(ctx).ExecContext(ctx, query,
		uuid.UUID(p.ID), string(p.Type), p.StartDate, p.EndDate, p.CoverageAmount,
		p.Premium, p.Deductible, string(p.Status), string(p.TermsAndConditions), p.UpdatedAt,
	)
	if err != nil {
		return classify(err, "update policy")
	}
	return requireRow(res, fmt.Sprintf("update policy %s", p.ID))
}

func (s *Store) DeletePolicy(ctx context.Context, policyID id.PolicyID) error {
	res, err := s.q(ctx).ExecContext(ctx, `DELETE FROM policies WHERE id = $1`, uuid.UUID(policyID))
	if err != nil {
		return classify(err, "delete policy")
	}
	return requireRow(res, fmt.Sprintf("delete policy %s", policyID))
}

func (s *Store) ListPolicies(ctx context.Context, filter models.PolicyFilter) ([]*models.Policy, error) {
	var (
		conds []string
		args  []any
	)
	if !filter.PolicyholderID.IsNil() {
		args = append(args, uuid.UUID(filter.PolicyholderID))
		conds = append(conds, fmt.Sprintf("policyholder_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + policyColumns + ` FROM policies`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	paging, pageArgs := pageClause(filter.Page, len(args)+1)
	query += ` ORDER BY created_at ASC, id ASC` + paging
	args = append(args, pageArgs...)

	rows, err := s.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "list policies")
	}
	defer rows.Close()

	policies := []*models.Policy{}
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, classify(err, "scan policy")
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate policies")
	}
	return policies, nil
}

func scanPolicy(row rowScanner) (*models.Policy, error) {
	var (
		p                models.Policy
		policyID, holder uuid.UUID
		policyType       string
		status           string
		terms            []byte
	)
	err := row.Scan(&policyID, &holder, &p.PolicyNumber, &policyType, &p.StartDate, &p.EndDate,
		&p.CoverageAmount, &p.Premium, &p.Deductible, &status, &terms, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.ID = id.PolicyID(policyID)
	p.PolicyholderID = id.PolicyholderID(holder)
	p.Type = models.PolicyType(policyType)
	p.Status = models.PolicyStatus(status)
	p.TermsAndConditions = terms
	p.StartDate = models.StartOfDay(p.StartDate)
	p.EndDate = models.StartOfDay(p.EndDate)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}
