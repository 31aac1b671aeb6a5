package dto

import (
	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTaxCodeRequest is the payload for adding a tax code.
type CreateTaxCodeRequest struct {
	Code        string          `json:"code" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	RatePercent decimal.Decimal `json:"ratePercent" binding:"required"`
}

// TaxCodeResponse defines the data returned for a tax code.
type TaxCodeResponse struct {
	TaxCodeID   string          `json:"taxCodeID"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	RatePercent decimal.Decimal `json:"ratePercent"`
	IsActive    bool            `json:"isActive"`
}

// ListTaxCodesResponse is the collection wrapper for tax code listings.
type ListTaxCodesResponse struct {
	TaxCodes []TaxCodeResponse `json:"taxCodes"`
}

// ToTaxCodeResponse converts a domain.TaxCode to its DTO.
func ToTaxCodeResponse(tc *domain.TaxCode) TaxCodeResponse {
	return TaxCodeResponse{
		TaxCodeID:   tc.TaxCodeID,
		Code:        tc.Code,
		Name:        tc.Name,
		RatePercent: tc.RatePercent,
		IsActive:    tc.IsActive,
	}
}

// ToTaxCodeResponses converts a slice of domain tax codes.
func ToTaxCodeResponses(codes []domain.TaxCode) []TaxCodeResponse {
	responses := make([]TaxCodeResponse, len(codes))
	for i := range codes {
		responses[i] = ToTaxCodeResponse(&codes[i])
	}
	return responses
}
