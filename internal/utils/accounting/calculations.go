package accounting

import (
	"fmt"

	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount converts a journal line into the signed balance
// change it causes on its account.
//
// Convention:
//
//	DEBIT  to ASSET/EXPENSE            -> Positive (+)
//	CREDIT to ASSET/EXPENSE            -> Negative (-)
//	DEBIT  to LIABILITY/EQUITY/INCOME  -> Negative (-)
//	CREDIT to LIABILITY/EQUITY/INCOME  -> Positive (+)
func CalculateSignedAmount(line domain.JournalLine, accountType domain.AccountType) (decimal.Decimal, error) {
	isDebit := !line.Debit.IsZero()
	amount := line.Debit
	if !isDebit {
		amount = line.Credit
	}

	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			amount = amount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Income:
		if isDebit {
			amount = amount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type %q for account %s", accountType, line.AccountID)
	}
	return amount, nil
}

// SumDebits totals the debit side of a set of lines. For a balanced journal
// this equals the credit side and represents the journal's economic value.
func SumDebits(lines []domain.JournalLine) decimal.Decimal {
	total := decimal.Zero
	for i := range lines {
		total = total.Add(lines[i].Debit)
	}
	return total
}
