package services

import (
	"context"

	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	"github.com/ledgerbooks/ledgerbooks_app/internal/dto"
)

// TaxCodeSvcFacade defines tax-code master data operations.
type TaxCodeSvcFacade interface {
	CreateTaxCode(ctx context.Context, req dto.CreateTaxCodeRequest, creatorUserID string) (*domain.TaxCode, error)
	GetTaxCodeByID(ctx context.Context, taxCodeID string) (*domain.TaxCode, error)
	GetTaxCodeByCode(ctx context.Context, code string) (*domain.TaxCode, error)
	ListTaxCodes(ctx context.Context) ([]domain.TaxCode, error)
}
