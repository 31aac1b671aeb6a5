package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerbooks/ledgerbooks_app/internal/apperrors"
	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	portsrepo "github.com/ledgerbooks/ledgerbooks_app/internal/core/ports/repositories"
)

type PgxTaxCodeRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTaxCodeRepository creates a new repository for tax code data.
func NewPgxTaxCodeRepository(pool *pgxpool.Pool) portsrepo.TaxCodeRepositoryFacade {
	return &PgxTaxCodeRepository{pool: pool}
}

var _ portsrepo.TaxCodeRepositoryFacade = (*PgxTaxCodeRepository)(nil)

const taxCodeColumns = `tax_code_id, code, name, rate_percent, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanTaxCode(row pgx.Row) (domain.TaxCode, error) {
	var taxCode domain.TaxCode
	err := row.Scan(
		&taxCode.TaxCodeID,
		&taxCode.Code,
		&taxCode.Name,
		&taxCode.RatePercent,
		&taxCode.IsActive,
		&taxCode.CreatedAt,
		&taxCode.CreatedBy,
		&taxCode.LastUpdatedAt,
		&taxCode.LastUpdatedBy,
	)
	return taxCode, err
}

// SaveTaxCode inserts a new tax code.
func (r *PgxTaxCodeRepository) SaveTaxCode(ctx context.Context, taxCode domain.TaxCode) error {
	query := `
		INSERT INTO tax_codes (tax_code_id, code, name, rate_percent, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		taxCode.TaxCodeID,
		taxCode.Code,
		taxCode.Name,
		taxCode.RatePercent,
		taxCode.IsActive,
		taxCode.CreatedAt,
		taxCode.CreatedBy,
		taxCode.LastUpdatedAt,
		taxCode.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: tax code %s", apperrors.ErrDuplicate, taxCode.Code)
		}
		return fmt.Errorf("failed to insert tax code %s: %w", taxCode.TaxCodeID, err)
	}
	return nil
}

// FindTaxCodeByID retrieves a tax code by its ID.
func (r *PgxTaxCodeRepository) FindTaxCodeByID(ctx context.Context, taxCodeID string) (*domain.TaxCode, error) {
	query := `SELECT ` + taxCodeColumns + ` FROM tax_codes WHERE tax_code_id = $1;`

	taxCode, err := scanTaxCode(r.pool.QueryRow(ctx, query, taxCodeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tax code by ID %s: %w", taxCodeID, err)
	}
	return &taxCode, nil
}

// FindTaxCodeByCode retrieves a tax code by its user-facing code.
func (r *PgxTaxCodeRepository) FindTaxCodeByCode(ctx context.Context, code string) (*domain.TaxCode, error) {
	query := `SELECT ` + taxCodeColumns + ` FROM tax_codes WHERE code = $1;`

	taxCode, err := scanTaxCode(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tax code by code %s: %w", code, err)
	}
	return &taxCode, nil
}

// ListTaxCodes retrieves all tax codes ordered by code.
func (r *PgxTaxCodeRepository) ListTaxCodes(ctx context.Context) ([]domain.TaxCode, error) {
	query := `SELECT ` + taxCodeColumns + ` FROM tax_codes ORDER BY code;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tax codes: %w", err)
	}
	defer rows.Close()

	taxCodes := []domain.TaxCode{}
	for rows.Next() {
		taxCode, err := scanTaxCode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax code row: %w", err)
		}
		taxCodes = append(taxCodes, taxCode)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tax code rows: %w", err)
	}
	return taxCodes, nil
}
