package domain

import (
	"github.com/shopspring/decimal"
)

// balanceTolerance is the epsilon under which a debit/credit discrepancy is
// treated as floating-point drift rather than an unbalanced entry. The value
// is part of the observable contract and must not change.
var balanceTolerance = decimal.RequireFromString("0.001")

// Totals is the verdict of folding a draft's lines.
type Totals struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	IsBalanced  bool            `json:"isBalanced"`
	Difference  decimal.Decimal `json:"difference"` // abs(debit-credit), zero when balanced
}

// ComputeTotals folds the lines into debit/credit subtotals and a balance
// verdict. Totals are rounded to 2 decimal places (round half away from
// zero). The function is pure: repeated calls over unchanged lines return
// identical results.
func ComputeTotals(lines []DraftLine) Totals {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for i := range lines {
		totalDebit = totalDebit.Add(lines[i].AmountDebit())
		totalCredit = totalCredit.Add(lines[i].AmountCredit())
	}

	totalDebit = totalDebit.Round(2)
	totalCredit = totalCredit.Round(2)
	difference := totalDebit.Sub(totalCredit).Abs()

	return Totals{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		IsBalanced:  difference.LessThan(balanceTolerance),
		Difference:  difference,
	}
}
