package repositories

import (
	"context"

	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindJournalByID retrieves a journal header by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals retrieves a page of journal headers using token-based
	// pagination, newest journal date first. It returns the journals and a
	// token for the next page, nil when exhausted.
	ListJournals(ctx context.Context, limit int, nextToken *string) ([]domain.Journal, *string, error)
}

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// SaveJournal persists a journal, its lines, and its scheduled postings,
	// and applies the per-account balance changes, all within one database
	// transaction.
	SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine, postings []domain.ScheduledPosting, balanceChanges map[string]decimal.Decimal) error

	// UpdateJournal updates the mutable header fields of a journal.
	UpdateJournal(ctx context.Context, journal domain.Journal) error
}

// LineReader defines read operations for journal line data.
type LineReader interface {
	// FindLinesByJournalID retrieves all lines of a single journal.
	FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)

	// ListLinesByAccountID retrieves a page of lines posted to an account
	// using token-based pagination.
	ListLinesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error)
}

// PostingReader defines read operations for scheduled posting data.
type PostingReader interface {
	// FindPostingsByJournalID retrieves a journal's scheduled postings in
	// sequence order.
	FindPostingsByJournalID(ctx context.Context, journalID string) ([]domain.ScheduledPosting, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	LineReader
	PostingReader
}
