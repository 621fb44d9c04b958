package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
	"coverline/pkg/platform/sentinel"
)

const claimColumns = `id, policy_id, claim_number, incident_date, filing_date, description,
	incident_description, amount_requested, status, assigned_adjuster_id, settlement_amount,
	settlement_date, notes, version, created_at, updated_at`

func (s *Store) CreateClaim(ctx context.Context, c *models.Claim) error {
	notes, err := encodeNotes(c.Notes)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO claims (` + claimColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = s.q(ctx).ExecContext(ctx, query,
		uuid.UUID(c.ID), uuid.UUID(c.PolicyID), c.ClaimNumber, c.IncidentDate, c.FilingDate,
		c.Description, c.IncidentDescription, c.AmountRequested, string(c.Status),
		adjusterParam(c.AssignedAdjusterID), settlementAmountParam(c.SettlementAmount),
		settlementDateParam(c.SettlementDate), notes, c.Version, c.CreatedAt, c.UpdatedAt,
	)
	return classify(err, "insert claim")
}

func (s *Store) FindClaim(ctx context.Context, claimID id.ClaimID) (*models.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE id = $1`
	c, err := scanClaim(s.q(ctx).QueryRowContext(ctx, query, uuid.UUID(claimID)))
	if err != nil {
		return nil, classify(err, fmt.Sprintf("find claim %s", claimID))
	}
	return c, nil
}

// UpdateClaim writes the lifecycle columns when the stored version still
// matches c.Version, and bumps the version.
func (s *Store) UpdateClaim(ctx context.Context, c *models.Claim) error {
	notes, err := encodeNotes(c.Notes)
	if err != nil {
		return err
	}
	query := `
		UPDATE claims SET
			description = $3, incident_description = $4, amount_requested = $5, status = $6,
			assigned_adjuster_id = $7, settlement_amount = $8, settlement_date = $9,
			notes = $10, updated_at = $11, version = version + 1
		WHERE id = $1 AND version = $2
		RETURNING version
	`
	var next int64
	err = s.q(ctx).QueryRowContext(ctx, query,
		uuid.UUID(c.ID), c.Version, c.Description, c.IncidentDescription, c.AmountRequested,
		string(c.Status), adjusterParam(c.AssignedAdjusterID), settlementAmountParam(c.SettlementAmount),
		settlementDateParam(c.SettlementDate), notes, c.UpdatedAt,
	).Scan(&next)
	if err == sql.ErrNoRows {
		return s.staleOrMissing(ctx, c.ID)
	}
	if err != nil {
		return classify(err, "update claim")
	}
	c.Version = next
	return nil
}

// staleOrMissing tells a lost compare-and-swap apart from a deleted row.
func (s *Store) staleOrMissing(ctx context.Context, claimID id.ClaimID) error {
	var exists bool
	err := s.q(ctx).QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM claims WHERE id = $1)`, uuid.UUID(claimID)).Scan(&exists)
	if err != nil {
		return classify(err, "check claim")
	}
	if exists {
		return fmt.Errorf("update claim %s: %w", claimID, sentinel.ErrStaleVersion)
	}
	return fmt.Errorf("update claim %s: %w", claimID, sentinel.ErrNotFound)
}

func (s *Store) DeleteClaim(ctx context.Context, claimID id.ClaimID) error {
	res, err := s.q(ctx).ExecContext(ctx, `DELETE FROM claims WHERE id = $1`, uuid.UUID(claimID))
	if err != nil {
		return classify(err, "delete claim")
	}
	return requireRow(res, fmt.Sprintf("delete claim %s", claimID))
}

func (s *Store) ListClaims(ctx context.Context, filter models.ClaimFilter) ([]*models.Claim, error) {
	var (
		conds []string
		args  []any
	)
	if !filter.PolicyID.IsNil() {
		args = append(args, uuid.UUID(filter.PolicyID))
		conds = append(conds, fmt.Sprintf("policy_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + claimColumns + ` FROM claims`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	paging, pageArgs := pageClause(filter.Page, len(args)+1)
	query += ` ORDER BY filing_date ASC, id ASC` + paging
	args = append(args, pageArgs...)

	rows, err := s.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "list claims")
	}
	defer rows.Close()

	claims := []*models.Claim{}
	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, classify(err, "scan claim")
		}
		claims = append(claims, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate claims")
	}
	return claims, nil
}

func scanClaim(row rowScanner) (*models.Claim, error) {
	var (
		c                 models.Claim
		claimID, policyID uuid.UUID
		status            string
		adjuster          uuid.NullUUID
		settlementAmount  sql.NullFloat64
		settlementDate    sql.NullTime
		notes             []byte
	)
	err := row.Scan(&claimID, &policyID, &c.ClaimNumber, &c.IncidentDate, &c.FilingDate, &c.Description,
		&c.IncidentDescription, &c.AmountRequested, &status, &adjuster, &settlementAmount,
		&settlementDate, &notes, &c.Version, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.ID = id.ClaimID(claimID)
	c.PolicyID = id.PolicyID(policyID)
	c.Status = models.ClaimStatus(status)
	if adjuster.Valid {
		adj := id.AdjusterID(adjuster.UUID)
		c.AssignedAdjusterID = &adj
	}
	if settlementAmount.Valid {
		amt := settlementAmount.Float64
		c.SettlementAmount = &amt
	}
	if settlementDate.Valid {
		at := settlementDate.Time.UTC()
		c.SettlementDate = &at
	}
	if err := json.Unmarshal(notes, &c.Notes); err != nil {
		return nil, fmt.Errorf("decode claim notes: %w", err)
	}
	if c.Notes == nil {
		c.Notes = []string{}
	}
	c.IncidentDate = c.IncidentDate.UTC()
	c.FilingDate = c.FilingDate.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}

func encodeNotes(notes []string) (string, error) {
	if notes == nil {
		notes = []string{}
	}
	b, err := json.Marshal(notes)
	if err != nil {
		return "", fmt.Errorf("encode claim notes: %w", err)
	}
	return string(b), nil
}

func adjusterParam(adj *id.AdjusterID) uuid.NullUUID {
	if adj == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(*adj), Valid: true}
}

func settlementAmountParam(amt *float64) sql.NullFloat64 {
	if amt == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *amt, Valid: true}
}

func settlementDateParam(at *time.Time) sql.NullTime {
	if at == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *at, Valid: true}
}
