package domain_test

import (
	"testing"

	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func debitLine(account, amount string) domain.DraftLine {
	l := domain.DraftLine{AccountID: account}
	l.SetDebit(dec(amount))
	return l
}

func creditLine(account, amount string) domain.DraftLine {
	l := domain.DraftLine{AccountID: account}
	l.SetCredit(dec(amount))
	return l
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name           string
		lines          []domain.DraftLine
		wantDebit      string
		wantCredit     string
		wantBalanced   bool
		wantDifference string
	}{
		{
			name:           "balanced two-line entry",
			lines:          []domain.DraftLine{debitLine("10001", "100.00"), creditLine("40001", "100.00")},
			wantDebit:      "100.00",
			wantCredit:     "100.00",
			wantBalanced:   true,
			wantDifference: "0",
		},
		{
			name:           "unbalanced by fifty cents",
			lines:          []domain.DraftLine{debitLine("10001", "100.00"), creditLine("40001", "99.50")},
			wantDebit:      "100.00",
			wantCredit:     "99.50",
			wantBalanced:   false,
			wantDifference: "0.50",
		},
		{
			name: "split credit side still balances",
			lines: []domain.DraftLine{
				debitLine("10001", "150.00"),
				creditLine("40001", "100.00"),
				creditLine("40002", "50.00"),
			},
			wantDebit:      "150.00",
			wantCredit:     "150.00",
			wantBalanced:   true,
			wantDifference: "0",
		},
		{
			name:           "empty lines contribute zero",
			lines:          []domain.DraftLine{{}, {}},
			wantDebit:      "0",
			wantCredit:     "0",
			wantBalanced:   true,
			wantDifference: "0",
		},
		{
			name:           "drift below tolerance counts as balanced",
			lines:          []domain.DraftLine{debitLine("10001", "100.0004"), creditLine("40001", "100.00")},
			wantDebit:      "100.00",
			wantCredit:     "100.00",
			wantBalanced:   true,
			wantDifference: "0",
		},
		{
			name:           "subtotals round to two decimals",
			lines:          []domain.DraftLine{debitLine("10001", "33.335"), creditLine("40001", "33.33")},
			wantDebit:      "33.34",
			wantCredit:     "33.33",
			wantBalanced:   false,
			wantDifference: "0.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ComputeTotals(tt.lines)
			assert.True(t, got.TotalDebit.Equal(dec(tt.wantDebit)), "total debit: got %s", got.TotalDebit)
			assert.True(t, got.TotalCredit.Equal(dec(tt.wantCredit)), "total credit: got %s", got.TotalCredit)
			assert.Equal(t, tt.wantBalanced, got.IsBalanced)
			assert.True(t, got.Difference.Equal(dec(tt.wantDifference)), "difference: got %s", got.Difference)
		})
	}
}

func TestComputeTotals_Idempotent(t *testing.T) {
	lines := []domain.DraftLine{
		debitLine("10001", "42.42"),
		creditLine("40001", "40.00"),
		creditLine("40002", "2.42"),
	}

	first := domain.ComputeTotals(lines)
	second := domain.ComputeTotals(lines)

	assert.Equal(t, first, second)
}

func TestDraftLine_DebitCreditExclusion(t *testing.T) {
	var l domain.DraftLine

	l.SetDebit(dec("75.00"))
	assert.True(t, l.AmountDebit().Equal(dec("75.00")))
	assert.True(t, l.AmountCredit().IsZero())

	// Setting a credit clears the debit side.
	l.SetCredit(dec("12.34"))
	assert.True(t, l.AmountDebit().IsZero())
	assert.True(t, l.AmountCredit().Equal(dec("12.34")))

	// And back again.
	l.SetDebit(dec("1.00"))
	assert.True(t, l.AmountCredit().IsZero())
}

func TestDraftLine_NegativeCoercesToZero(t *testing.T) {
	var l domain.DraftLine

	l.SetDebit(dec("-5"))
	assert.True(t, l.AmountDebit().IsZero())
	assert.True(t, l.IsEmpty())

	l.SetCredit(dec("-0.01"))
	assert.True(t, l.AmountCredit().IsZero())
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"100.50", "100.50"},
		{"0", "0"},
		{"", "0"},
		{"abc", "0"},
		{"12,50", "0"},
		{"-3.14", "0"},
		{"007", "7"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := domain.ParseAmount(tt.input)
			assert.True(t, got.Equal(dec(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}
