package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbooks/ledgerbooks_app/internal/apperrors"
	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	portsrepo "github.com/ledgerbooks/ledgerbooks_app/internal/core/ports/repositories"
	portssvc "github.com/ledgerbooks/ledgerbooks_app/internal/core/ports/services"
	"github.com/ledgerbooks/ledgerbooks_app/internal/dto"
	"github.com/ledgerbooks/ledgerbooks_app/internal/middleware"
	"github.com/ledgerbooks/ledgerbooks_app/internal/utils/accounting"
)

var (
	ErrJournalMinAccounts = errors.New("journal must affect at least two different accounts")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrCurrencyMismatch   = errors.New("account currency does not match journal currency")
	ErrTaxCodeNotFound    = errors.New("tax code not found")
)

// ReferenceGenerator produces default journal references when the caller
// supplies none. Injected so uniqueness strategy (counter, UUID, external
// sequence) is the composition root's choice, not this service's.
type ReferenceGenerator func() string

// DefaultReferenceGenerator derives a reference from a UUID, avoiding the
// collision-prone random 4-digit suffixes of naive implementations.
func DefaultReferenceGenerator() string {
	return "JE-" + strings.ToUpper(uuid.NewString()[:8])
}

// journalService posts journal drafts and reads back posted journals.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	taxCodeSvc  portssvc.TaxCodeSvcFacade
	refGen      ReferenceGenerator
}

// NewJournalService creates a new journal service. A nil refGen falls back
// to DefaultReferenceGenerator.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountSvc portssvc.AccountSvcFacade, taxCodeSvc portssvc.TaxCodeSvcFacade, refGen ReferenceGenerator) portssvc.JournalSvcFacade {
	if refGen == nil {
		refGen = DefaultReferenceGenerator
	}
	return &journalService{
		journalRepo: journalRepo,
		accountSvc:  accountSvc,
		taxCodeSvc:  taxCodeSvc,
		refGen:      refGen,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// draftFromRequest builds the domain draft a creation request describes.
func (s *journalService) draftFromRequest(req dto.CreateJournalRequest) (*domain.JournalDraft, error) {
	reference := req.Reference
	if reference == "" {
		reference = s.refGen()
	}

	draft := domain.NewJournalDraft(req.Date, reference, req.Description)
	draft.CurrencyCode = req.CurrencyCode

	lines := make([]domain.DraftLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i].AccountID = lineReq.AccountID
		lines[i].Description = lineReq.Description
		lines[i].TaxCode = lineReq.TaxCode
		if lineReq.Debit != nil {
			lines[i].SetDebit(*lineReq.Debit)
		}
		if lineReq.Credit != nil {
			lines[i].SetCredit(*lineReq.Credit)
		}
	}
	draft.Lines = lines

	if req.Recurrence != nil {
		if err := draft.SetRecurring(req.Recurrence.ToDomain()); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

// validateAccounts fetches every referenced account and checks existence,
// active status, and currency agreement. Returns account types keyed by ID
// for the balance-change calculation.
func (s *journalService) validateAccounts(ctx context.Context, lines []domain.DraftLine, currencyCode string) (map[string]domain.AccountType, error) {
	accountIDs := make([]string, 0, len(lines))
	for i := range lines {
		accountIDs = append(accountIDs, lines[i].AccountID)
	}
	uniqueIDs := uniqueStrings(accountIDs)
	if len(uniqueIDs) < 2 {
		return nil, fmt.Errorf("%w", ErrJournalMinAccounts)
	}

	accountsMap, err := s.accountSvc.GetAccountByIDs(ctx, uniqueIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	accountTypes := make(map[string]domain.AccountType, len(uniqueIDs))
	for _, id := range uniqueIDs {
		acc, found := accountsMap[id]
		if !found {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, id)
		}
		if !acc.IsActive {
			return nil, fmt.Errorf("%w: account %s", ErrAccountInactive, id)
		}
		if acc.CurrencyCode != currencyCode {
			return nil, fmt.Errorf("%w: account currency %s vs journal currency %s for account %s", ErrCurrencyMismatch, acc.CurrencyCode, currencyCode, id)
		}
		accountTypes[id] = acc.AccountType
	}
	return accountTypes, nil
}

// validateTaxCodes checks that every referenced tax code exists. Tax codes
// are informational on journal lines; only their existence matters here.
func (s *journalService) validateTaxCodes(ctx context.Context, lines []domain.DraftLine) error {
	seen := make(map[string]struct{})
	for i := range lines {
		code := lines[i].TaxCode
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		if _, err := s.taxCodeSvc.GetTaxCodeByCode(ctx, code); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrTaxCodeNotFound, code)
			}
			return fmt.Errorf("failed to look up tax code %s: %w", code, err)
		}
	}
	return nil
}

// CreateJournal validates and posts a journal draft, expanding any
// recurrence plan into scheduled postings, and persists everything
// atomically.
func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	draft, err := s.draftFromRequest(req)
	if err != nil {
		return nil, err
	}

	accountTypes, err := s.validateAccounts(ctx, draft.Lines, draft.CurrencyCode)
	if err != nil {
		return nil, err
	}
	if err := s.validateTaxCodes(ctx, draft.Lines); err != nil {
		return nil, err
	}

	// The aggregate enforces balance, line minimum, and recurrence bounds.
	submission, err := draft.Submit()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	journalID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	lines := make([]domain.JournalLine, len(draft.Lines))
	for i := range draft.Lines {
		lines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			JournalID:   journalID,
			AccountID:   draft.Lines[i].AccountID,
			Description: draft.Lines[i].Description,
			Debit:       draft.Lines[i].AmountDebit(),
			Credit:      draft.Lines[i].AmountCredit(),
			TaxCode:     draft.Lines[i].TaxCode,
			AuditFields: audit,
		}
	}

	postings := make([]domain.ScheduledPosting, len(submission.PostingDates))
	for i, date := range submission.PostingDates {
		postings[i] = domain.ScheduledPosting{
			PostingID:   uuid.NewString(),
			JournalID:   journalID,
			Sequence:    i + 1,
			PostingDate: date,
			Status:      domain.PostingPending,
		}
	}

	// Net balance change per account, applied once at posting time.
	balanceChanges := make(map[string]decimal.Decimal)
	for i := range lines {
		signedAmount, err := accounting.CalculateSignedAmount(lines[i], accountTypes[lines[i].AccountID])
		if err != nil {
			logger.Error("Failed to calculate signed amount", slog.String("error", err.Error()), slog.String("line_id", lines[i].LineID))
			return nil, fmt.Errorf("internal error calculating balance changes: %w", err)
		}
		balanceChanges[lines[i].AccountID] = balanceChanges[lines[i].AccountID].Add(signedAmount)
	}

	journal := domain.Journal{
		JournalID:    journalID,
		JournalDate:  draft.JournalDate,
		Reference:    draft.Reference,
		Description:  draft.Description,
		CurrencyCode: draft.CurrencyCode,
		Status:       domain.Posted,
		IsRecurring:  draft.IsRecurring(),
		Recurrence:   draft.Recurrence,
		Amount:       accounting.SumDebits(lines),
		AuditFields:  audit,
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, lines, postings, balanceChanges); err != nil {
		logger.Error("Failed to save journal", slog.String("error", err.Error()), slog.String("reference", journal.Reference))
		return nil, fmt.Errorf("failed to save journal: %w", err)
	}

	logger.Info("Journal posted",
		slog.String("journal_id", journalID),
		slog.String("reference", journal.Reference),
		slog.Bool("recurring", journal.IsRecurring),
		slog.Int("postings", len(postings)),
	)

	journal.Lines = lines
	journal.Postings = postings
	return &journal, nil
}

// ValidateDraft computes the live totals verdict the entry form renders
// after each mutation. It never persists and never errors: malformed input
// simply yields an unsubmittable verdict.
func (s *journalService) ValidateDraft(ctx context.Context, req dto.ValidateDraftRequest) dto.DraftVerdictResponse {
	lines := make([]domain.DraftLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		lines[i].AccountID = lineReq.AccountID
		if lineReq.Debit != "" {
			lines[i].SetDebit(domain.ParseAmount(lineReq.Debit))
		}
		if lineReq.Credit != "" {
			lines[i].SetCredit(domain.ParseAmount(lineReq.Credit))
		}
	}

	draft := domain.JournalDraft{
		JournalDate: time.Now().UTC(),
		Reference:   req.Reference,
		Description: req.Description,
		Lines:       lines,
		Status:      domain.Editing,
	}
	return dto.ToDraftVerdictResponse(draft.Totals(), draft.CanSubmit())
}

// GetJournalByID retrieves a journal with its lines and scheduled postings.
func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal by ID", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		logger.Error("Failed to fetch journal lines", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve lines for journal %s: %w", journalID, apperrors.ErrInternal)
	}
	journal.Lines = lines

	postings, err := s.journalRepo.FindPostingsByJournalID(ctx, journalID)
	if err != nil {
		logger.Error("Failed to fetch scheduled postings", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve postings for journal %s: %w", journalID, apperrors.ErrInternal)
	}
	journal.Postings = postings

	logger.Debug("Journal retrieved", slog.String("journal_id", journalID), slog.Int("line_count", len(lines)))
	return journal, nil
}

// ListJournals retrieves a paginated list of journal headers.
func (s *journalService) ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	journals, nextToken, err := s.journalRepo.ListJournals(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list journals", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve journals: %w", err)
	}

	responses := make([]dto.JournalResponse, len(journals))
	for i := range journals {
		responses[i] = dto.ToJournalResponse(&journals[i])
	}

	logger.Info("Journals listed", slog.Int("count", len(journals)))
	return &dto.ListJournalsResponse{Journals: responses, NextToken: nextToken}, nil
}

// UpdateJournal updates the description and date of a posted journal. Lines
// are immutable once posted; corrections are new journals.
func (s *journalService) UpdateJournal(ctx context.Context, journalID string, req dto.UpdateJournalRequest, requestingUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Date != nil {
		journal.JournalDate = *req.Date
		updated = true
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description must not be empty", apperrors.ErrValidation)
		}
		journal.Description = *req.Description
		updated = true
	}
	if !updated {
		return journal, nil
	}

	journal.LastUpdatedAt = time.Now().UTC()
	journal.LastUpdatedBy = requestingUserID

	if err := s.journalRepo.UpdateJournal(ctx, *journal); err != nil {
		logger.Error("Failed to save journal update", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to save journal update: %w", err)
	}

	logger.Info("Journal updated", slog.String("journal_id", journalID))
	return journal, nil
}

// ListAccountLines retrieves the ledger view of a single account: the lines
// posted to it, newest first, with token-based pagination. The account must
// exist; inactive accounts keep their history readable.
func (s *journalService) ListAccountLines(ctx context.Context, accountID string, params dto.ListAccountLinesParams) (*dto.ListAccountLinesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountSvc.GetAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	lines, nextToken, err := s.journalRepo.ListLinesByAccountID(ctx, accountID, limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			return nil, err
		}
		logger.Error("Failed to list account lines", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to retrieve lines for account %s: %w", accountID, err)
	}

	responses := make([]dto.AccountLineResponse, len(lines))
	for i := range lines {
		responses[i] = dto.ToAccountLineResponse(&lines[i])
	}
	return &dto.ListAccountLinesResponse{AccountID: accountID, Lines: responses, NextToken: nextToken}, nil
}

// ListScheduledPostings retrieves the scheduled postings of a journal in
// sequence order.
func (s *journalService) ListScheduledPostings(ctx context.Context, journalID string) ([]domain.ScheduledPosting, error) {
	if _, err := s.journalRepo.FindJournalByID(ctx, journalID); err != nil {
		return nil, err
	}
	return s.journalRepo.FindPostingsByJournalID(ctx, journalID)
}

// uniqueStrings returns a slice containing only the unique strings from the
// input, preserving first-seen order.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
