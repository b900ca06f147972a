package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/billora/billora-api/internal/domain/entity"
	"github.com/billora/billora-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo stores the single seller profile rendered on documents.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the adapter.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// GetProfile returns the seller profile; nil when not yet configured.
func (r *CompanyRepo) GetProfile() (*entity.Company, error) {
	query := `
		SELECT id, name, vat_number, address, phone, email, created_at, updated_at
		FROM company_profile ORDER BY created_at LIMIT 1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query).Scan(
		&c.ID, &c.Name, &c.VATNumber, &c.Address, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company profile: %w", err)
	}
	return &c, nil
}

// SaveProfile upserts the seller profile.
func (r *CompanyRepo) SaveProfile(company *entity.Company) error {
	query := `
		INSERT INTO company_profile (id, name, vat_number, address, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, vat_number = EXCLUDED.vat_number, address = EXCLUDED.address,
			phone = EXCLUDED.phone, email = EXCLUDED.email, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.VATNumber, company.Address,
		company.Phone, company.Email, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save company profile: %w", err)
	}
	return nil
}
