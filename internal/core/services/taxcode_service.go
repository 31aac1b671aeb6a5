package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbooks/ledgerbooks_app/internal/apperrors"
	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	portsrepo "github.com/ledgerbooks/ledgerbooks_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerbooks/ledgerbooks_app/internal/core/ports/services"
	"github.com/ledgerbooks/ledgerbooks_app/internal/dto"
	"github.com/ledgerbooks/ledgerbooks_app/internal/middleware"
)

// taxCodeService manages tax-code master data.
type taxCodeService struct {
	taxCodeRepo portsrepo.TaxCodeRepositoryFacade
}

// NewTaxCodeService creates a new tax code service.
func NewTaxCodeService(taxCodeRepo portsrepo.TaxCodeRepositoryFacade) portssvc.TaxCodeSvcFacade {
	return &taxCodeService{taxCodeRepo: taxCodeRepo}
}

var _ portssvc.TaxCodeSvcFacade = (*taxCodeService)(nil)

// CreateTaxCode adds a new tax code.
func (s *taxCodeService) CreateTaxCode(ctx context.Context, req dto.CreateTaxCodeRequest, creatorUserID string) (*domain.TaxCode, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.RatePercent.IsNegative() {
		return nil, fmt.Errorf("%w: tax rate must not be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	taxCode := domain.TaxCode{
		TaxCodeID:   uuid.NewString(),
		Code:        req.Code,
		Name:        req.Name,
		RatePercent: req.RatePercent,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.taxCodeRepo.SaveTaxCode(ctx, taxCode); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: tax code %s", apperrors.ErrDuplicate, req.Code)
		}
		logger.Error("Failed to save tax code", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to save tax code: %w", err)
	}

	logger.Info("Tax code created", slog.String("tax_code_id", taxCode.TaxCodeID), slog.String("code", taxCode.Code))
	return &taxCode, nil
}

// GetTaxCodeByID retrieves a single tax code by its identifier.
func (s *taxCodeService) GetTaxCodeByID(ctx context.Context, taxCodeID string) (*domain.TaxCode, error) {
	return s.taxCodeRepo.FindTaxCodeByID(ctx, taxCodeID)
}

// GetTaxCodeByCode retrieves a single tax code by its user-facing code.
func (s *taxCodeService) GetTaxCodeByCode(ctx context.Context, code string) (*domain.TaxCode, error) {
	return s.taxCodeRepo.FindTaxCodeByCode(ctx, code)
}

// ListTaxCodes retrieves all tax codes.
func (s *taxCodeService) ListTaxCodes(ctx context.Context) ([]domain.TaxCode, error) {
	return s.taxCodeRepo.ListTaxCodes(ctx)
}
