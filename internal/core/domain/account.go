package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether the account type is one of the five fundamentals.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// Account represents a ledger account in the chart of accounts.
type Account struct {
	AccountID    string      `json:"accountID"` // Primary Key (UUID)
	Code         string      `json:"code"`      // User-facing account number, e.g. "10001"
	Name         string      `json:"name"`
	AccountType  AccountType `json:"accountType"`
	CurrencyCode string      `json:"currencyCode"`
	Description  string      `json:"description"` // Nullable
	IsActive     bool        `json:"isActive"`    // Inactive accounts refuse new postings
	AuditFields
	Balance decimal.Decimal `json:"balance"` // Persisted running balance
}
