package repositories

import (
	"context"

	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
)

// TaxCodeRepositoryFacade defines persistence operations for tax codes.
type TaxCodeRepositoryFacade interface {
	SaveTaxCode(ctx context.Context, taxCode domain.TaxCode) error
	FindTaxCodeByID(ctx context.Context, taxCodeID string) (*domain.TaxCode, error)
	FindTaxCodeByCode(ctx context.Context, code string) (*domain.TaxCode, error)
	ListTaxCodes(ctx context.Context) ([]domain.TaxCode, error)
}
