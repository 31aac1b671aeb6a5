package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ledgerbooks/ledgerbooks_app/internal/apperrors"
	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	portsrepo "github.com/ledgerbooks/ledgerbooks_app/internal/core/ports/repositories"
	"github.com/ledgerbooks/ledgerbooks_app/internal/utils/pagination"
)

type PgxJournalRepository struct {
	pool *pgxpool.Pool
}

// NewPgxJournalRepository creates a new repository for journal, line, and
// scheduled posting data.
func NewPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{pool: pool}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, journal_date, reference, description, currency_code, status, is_recurring,
	recurrence_frequency, recurrence_start_date, recurrence_end_date, recurrence_occurrences,
	amount, created_at, created_by, last_updated_at, last_updated_by`

// scanJournal scans one journal row, reconstructing the recurrence plan from
// its nullable columns when present.
func scanJournal(row pgx.Row) (*domain.Journal, error) {
	var journal domain.Journal
	var frequency *string
	var startDate, endDate *time.Time
	var occurrences *int

	err := row.Scan(
		&journal.JournalID,
		&journal.JournalDate,
		&journal.Reference,
		&journal.Description,
		&journal.CurrencyCode,
		&journal.Status,
		&journal.IsRecurring,
		&frequency,
		&startDate,
		&endDate,
		&occurrences,
		&journal.Amount,
		&journal.CreatedAt,
		&journal.CreatedBy,
		&journal.LastUpdatedAt,
		&journal.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	if frequency != nil && startDate != nil {
		journal.Recurrence = &domain.RecurrencePlan{
			Frequency:   domain.RecurrenceFrequency(*frequency),
			StartDate:   *startDate,
			EndDate:     endDate,
			Occurrences: occurrences,
		}
	}
	return &journal, nil
}

// SaveJournal persists the journal header, its lines, its scheduled postings,
// and the per-account balance changes within one database transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine, postings []domain.ScheduledPosting, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var frequency *string
	var startDate, endDate *time.Time
	var occurrences *int
	if journal.Recurrence != nil {
		freq := string(journal.Recurrence.Frequency)
		frequency = &freq
		start := journal.Recurrence.StartDate
		startDate = &start
		endDate = journal.Recurrence.EndDate
		occurrences = journal.Recurrence.Occurrences
	}

	journalQuery := `
		INSERT INTO journals (journal_id, journal_date, reference, description, currency_code, status, is_recurring,
			recurrence_frequency, recurrence_start_date, recurrence_end_date, recurrence_occurrences,
			amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, journalQuery,
		journal.JournalID,
		journal.JournalDate,
		journal.Reference,
		journal.Description,
		journal.CurrencyCode,
		journal.Status,
		journal.IsRecurring,
		frequency,
		startDate,
		endDate,
		occurrences,
		journal.Amount,
		journal.CreatedAt,
		journal.CreatedBy,
		journal.LastUpdatedAt,
		journal.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: journal reference %s", apperrors.ErrDuplicate, journal.Reference)
		}
		return fmt.Errorf("failed to insert journal %s: %w", journal.JournalID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (line_id, journal_id, account_id, description, debit, credit, tax_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, line := range lines {
		batch.Queue(lineQuery,
			line.LineID,
			line.JournalID,
			line.AccountID,
			line.Description,
			line.Debit,
			line.Credit,
			line.TaxCode,
			line.CreatedAt,
			line.CreatedBy,
			line.LastUpdatedAt,
			line.LastUpdatedBy,
		)
	}

	postingQuery := `
		INSERT INTO scheduled_postings (posting_id, journal_id, sequence, posting_date, status)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, posting := range postings {
		batch.Queue(postingQuery,
			posting.PostingID,
			posting.JournalID,
			posting.Sequence,
			posting.PostingDate,
			posting.Status,
		)
	}

	balanceQuery := `
		UPDATE accounts SET balance = balance + $1, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $4;
	`
	for accountID, change := range balanceChanges {
		batch.Queue(balanceQuery, change, journal.LastUpdatedAt, journal.LastUpdatedBy, accountID)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute insert batch for journal %s: %w", journal.JournalID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for journal %s: %w", journal.JournalID, err)
	}

	return nil
}

// FindJournalByID retrieves a journal header by its ID.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`

	journal, err := scanJournal(r.pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}
	return journal, nil
}

// ListJournals retrieves a page of journal headers, newest journal date
// first, using keyset pagination on (journal_date, created_at).
func (r *PgxJournalRepository) ListJournals(ctx context.Context, limit int, nextToken *string) ([]domain.Journal, *string, error) {
	query := `SELECT ` + journalColumns + ` FROM journals`
	args := []any{}

	if nextToken != nil && *nextToken != "" {
		journalDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` WHERE (journal_date, created_at) < ($1, $2)`
		args = append(args, journalDate, createdAt)
	}
	query += fmt.Sprintf(` ORDER BY journal_date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // Fetch one extra to detect the next page

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	journals := []domain.Journal{}
	for rows.Next() {
		journal, err := scanJournal(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		journals = append(journals, *journal)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal rows: %w", err)
	}

	var newNextToken *string
	if len(journals) > limit {
		journals = journals[:limit]
		last := journals[limit-1]
		token := pagination.EncodeToken(last.JournalDate, last.CreatedAt)
		newNextToken = &token
	}
	return journals, newNextToken, nil
}

// UpdateJournal updates the mutable header fields of a journal.
func (r *PgxJournalRepository) UpdateJournal(ctx context.Context, journal domain.Journal) error {
	query := `
		UPDATE journals SET journal_date = $1, description = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $5;
	`
	tag, err := r.pool.Exec(ctx, query,
		journal.JournalDate,
		journal.Description,
		journal.LastUpdatedAt,
		journal.LastUpdatedBy,
		journal.JournalID,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal %s: %w", journal.JournalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const lineColumns = `line_id, journal_id, account_id, description, debit, credit, tax_code, created_at, created_by, last_updated_at, last_updated_by`

func scanLine(row pgx.Row) (domain.JournalLine, error) {
	var line domain.JournalLine
	err := row.Scan(
		&line.LineID,
		&line.JournalID,
		&line.AccountID,
		&line.Description,
		&line.Debit,
		&line.Credit,
		&line.TaxCode,
		&line.CreatedAt,
		&line.CreatedBy,
		&line.LastUpdatedAt,
		&line.LastUpdatedBy,
	)
	return line, err
}

// FindLinesByJournalID retrieves all lines of a single journal.
func (r *PgxJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE journal_id = $1 ORDER BY line_id;`

	rows, err := r.pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line row for journal %s: %w", journalID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows for journal %s: %w", journalID, err)
	}
	return lines, nil
}

// ListLinesByAccountID retrieves a page of lines posted to an account. Lines
// of one journal share a created_at, so the cursor tie-breaks on line_id.
func (r *PgxJournalRepository) ListLinesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	query := `SELECT ` + lineColumns + ` FROM journal_lines WHERE account_id = $1`
	args := []any{accountID}

	if nextToken != nil && *nextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(*nextToken)
		if err != nil || len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		createdAt, err := time.Parse(time.RFC3339Nano, fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		query += ` AND (created_at, line_id) < ($2, $3)`
		args = append(args, createdAt, fields[1])
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, line_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query lines for account %s: %w", accountID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan line row for account %s: %w", accountID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating line rows for account %s: %w", accountID, err)
	}

	var newNextToken *string
	if len(lines) > limit {
		lines = lines[:limit]
		last := lines[limit-1]
		token := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.LineID)
		newNextToken = &token
	}
	return lines, newNextToken, nil
}

// FindPostingsByJournalID retrieves a journal's scheduled postings in
// sequence order.
func (r *PgxJournalRepository) FindPostingsByJournalID(ctx context.Context, journalID string) ([]domain.ScheduledPosting, error) {
	query := `
		SELECT posting_id, journal_id, sequence, posting_date, status
		FROM scheduled_postings
		WHERE journal_id = $1
		ORDER BY sequence;
	`
	rows, err := r.pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query postings for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	postings := []domain.ScheduledPosting{}
	for rows.Next() {
		var posting domain.ScheduledPosting
		if err := rows.Scan(
			&posting.PostingID,
			&posting.JournalID,
			&posting.Sequence,
			&posting.PostingDate,
			&posting.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan posting row for journal %s: %w", journalID, err)
		}
		postings = append(postings, posting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posting rows for journal %s: %w", journalID, err)
	}
	return postings, nil
}
