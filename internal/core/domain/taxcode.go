package domain

import (
	"github.com/shopspring/decimal"
)

// TaxCode is a master-data tax rate referenced by journal lines. The journal
// module treats the reference as informational; no tax arithmetic happens at
// posting time.
type TaxCode struct {
	TaxCodeID   string          `json:"taxCodeID"` // Primary Key (UUID)
	Code        string          `json:"code"`      // e.g. "VAT20"
	Name        string          `json:"name"`
	RatePercent decimal.Decimal `json:"ratePercent"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}
