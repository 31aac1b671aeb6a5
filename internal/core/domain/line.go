package domain

import (
	"github.com/shopspring/decimal"
)

// DraftLine is one editable debit/credit row of a journal draft.
//
// Invariant: at most one of Debit and Credit is non-zero at any time. Mutate
// amounts through SetDebit/SetCredit, which keep the invariant; the fields
// stay exported so repositories and mappers can read them directly.
type DraftLine struct {
	AccountID   string          `json:"accountID"`   // Chart-of-accounts reference; validity is the account service's concern
	Description string          `json:"description"` // Optional free text
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	TaxCode     string          `json:"taxCode"` // Optional tax-code reference, informational here
}

// SetDebit records a debit amount on the line and clears any credit amount.
// Negative input is coerced to zero rather than rejected, matching the
// lenient form behavior this models.
func (l *DraftLine) SetDebit(amount decimal.Decimal) {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	l.Debit = amount
	l.Credit = decimal.Zero
}

// SetCredit records a credit amount on the line and clears any debit amount.
func (l *DraftLine) SetCredit(amount decimal.Decimal) {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	l.Credit = amount
	l.Debit = decimal.Zero
}

// AmountDebit returns the debit amount, zero when unset.
func (l *DraftLine) AmountDebit() decimal.Decimal {
	return l.Debit
}

// AmountCredit returns the credit amount, zero when unset.
func (l *DraftLine) AmountCredit() decimal.Decimal {
	return l.Credit
}

// IsEmpty reports whether the line carries no amount on either side.
func (l *DraftLine) IsEmpty() bool {
	return l.Debit.IsZero() && l.Credit.IsZero()
}

// ParseAmount converts free-form user input into a non-negative decimal.
// Unparseable or negative input coerces to zero; this deliberately mirrors
// the permissive text-input handling of the journal entry form and is not an
// error condition. Callers wanting strict validation should validate before
// parsing.
func ParseAmount(input string) decimal.Decimal {
	d, err := decimal.NewFromString(input)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
