package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"coverline/internal/claims/models"
	id "coverline/pkg/domain"
)

const policyholderColumns = `id, first_name, last_name, date_of_birth, email, phone, alternate_phone,
	street, city, state, postal_code, country, created_at, updated_at`

func (s *Store) CreatePolicyholder(ctx context.Context, h *models.Policyholder) error {
	query := `
		INSERT INTO policyholders (` + policyholderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := s.q(ctx).ExecContext(ctx, query,
		uuid.UUID(h.ID), h.FirstName, h.LastName, h.DateOfBirth, h.Email, h.Phone, h.AlternatePhone,
		h.Address.Street, h.Address.City, h.Address.State, h.Address.PostalCode, h.Address.Country,
		h.CreatedAt, h.UpdatedAt,
	)
	return classify(err, "insert policyholder")
}

func (s *Store) FindPolicyholder(ctx context.Context, holderID id.PolicyholderID) (*models.Policyholder, error) {
	query := `SELECT ` + policyholderColumns + ` FROM policyholders WHERE id = $1`
	h, err := scanPolicyholder(s.q(ctx).QueryRowContext(ctx, query, uuid.UUID(holderID)))
	if err != nil {
		return nil, classify(err, fmt.Sprintf("find policyholder %s", holderID))
	}
	return h, nil
}

func (s *Store) UpdatePolicyholder(ctx context.Context, h *models.Policyholder) error {
	query := `
		UPDATE policyholders SET
			first_name = $2, last_name = $3, date_of_birth = $4, email = $5, phone = $6,
			alternate_phone = $7, street = $8, city = $9, state = $10, postal_code = $11,
			country = $12, updated_at = $13
		WHERE id = $1
	`
	res, err := s.q(ctx).ExecContext(ctx, query,
		uuid.UUID(h.ID), h.FirstName, h.LastName, h.DateOfBirth, h.Email, h.Phone, h.AlternatePhone,
		h.Address.Street, h.Address.City, h.Address.State, h.Address.PostalCode, h.Address.Country,
		h.UpdatedAt,
	)
	if err != nil {
		return classify(err, "update policyholder")
	}
	return requireRow(res, fmt.Sprintf("update policyholder %s", h.ID))
}

// DeletePolicyholder relies on ON DELETE CASCADE for policies, claims and documents.
func (s *Store) DeletePolicyholder(ctx context.Context, holderID id.PolicyholderID) error {
	res, err := s.q(ctx).ExecContext(ctx, `DELETE FROM policyholders WHERE id = $1`, uuid.UUID(holderID))
	if err != nil {
		return classify(err, "delete policyholder")
	}
	return requireRow(res, fmt.Sprintf("delete policyholder %s", holderID))
}

func (s *Store) ListPolicyholders(ctx context.Context, page models.Page) ([]*models.Policyholder, error) {
	paging, args := pageClause(page, 1)
	query := `SELECT ` + policyholderColumns + ` FROM policyholders ORDER BY created_at ASC, id ASC` + paging
	rows, err := s.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classify(err, "list policyholders")
	}
	defer rows.Close()

	holders := []*models.Policyholder{}
	for rows.Next() {
		h, err := scanPolicyholder(rows)
		if err != nil {
			return nil, classify(err, "scan policyholder")
		}
		holders = append(holders, h)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "iterate policyholders")
	}
	return holders, nil
}

func scanPolicyholder(row rowScanner) (*models.Policyholder, error) {
	var (
		h        models.Policyholder
		holderID uuid.UUID
	)
	err := row.Scan(&holderID, &h.FirstName, &h.LastName, &h.DateOfBirth, &h.Email, &h.Phone, &h.AlternatePhone,
		&h.Address.Street, &h.Address.City, &h.Address.State, &h.Address.PostalCode, &h.Address.Country,
		&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	h.ID = id.PolicyholderID(holderID)
	h.DateOfBirth = models.StartOfDay(h.DateOfBirth)
	h.CreatedAt = h.CreatedAt.UTC()
	h.UpdatedAt = h.UpdatedAt.UTC()
	return &h, nil
}
