package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a posted journal entry.
type JournalStatus string

const (
	Posted JournalStatus = "POSTED"
)

// PostingStatus indicates the state of one scheduled posting of a recurring
// journal.
type PostingStatus string

const (
	PostingPending PostingStatus = "PENDING"
	PostingDone    PostingStatus = "DONE"
)

// Journal is a finalized, balanced financial event composed of its lines.
// One-shot journals carry a single scheduled posting on the journal date;
// recurring journals carry one per expanded occurrence.
type Journal struct {
	JournalID    string          `json:"journalID"` // Primary Key (UUID)
	JournalDate  time.Time       `json:"journalDate"`
	Reference    string          `json:"reference"` // Unique user-facing label
	Description  string          `json:"description"`
	CurrencyCode string          `json:"currencyCode"`
	Status       JournalStatus   `json:"status"`
	IsRecurring  bool            `json:"isRecurring"`
	Recurrence   *RecurrencePlan `json:"recurrence,omitempty"`
	// Amount is the economic value of the journal: the sum of the debit side,
	// which for a balanced entry equals the credit side.
	Amount decimal.Decimal `json:"amount"`
	AuditFields
	// Loaded on demand; nil when only the header was fetched.
	Lines    []JournalLine      `json:"lines,omitempty"`
	Postings []ScheduledPosting `json:"postings,omitempty"`
}

// JournalLine is one persisted debit/credit row of a posted journal. Exactly
// one of Debit and Credit is non-zero.
type JournalLine struct {
	LineID      string          `json:"lineID"`    // Primary Key (UUID)
	JournalID   string          `json:"journalID"` // FK -> journals
	AccountID   string          `json:"accountID"` // FK -> accounts
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	TaxCode     string          `json:"taxCode"` // Nullable FK -> tax_codes
	AuditFields
}

// ScheduledPosting is one dated occurrence of a journal, produced by the
// recurrence expansion at submission time.
type ScheduledPosting struct {
	PostingID   string        `json:"postingID"` // Primary Key (UUID)
	JournalID   string        `json:"journalID"` // FK -> journals
	Sequence    int           `json:"sequence"`  // 1-based occurrence number
	PostingDate time.Time     `json:"postingDate"`
	Status      PostingStatus `json:"status"`
}
