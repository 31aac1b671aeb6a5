package services

import (
	"context"

	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	"github.com/ledgerbooks/ledgerbooks_app/internal/dto"
)

// JournalSvcFacade defines journal posting, validation, and retrieval.
type JournalSvcFacade interface {
	// CreateJournal validates and posts a journal draft built from the
	// request, expanding any recurrence plan into scheduled postings.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error)

	// ValidateDraft computes the live balance verdict for an in-progress
	// draft without persisting anything.
	ValidateDraft(ctx context.Context, req dto.ValidateDraftRequest) dto.DraftVerdictResponse

	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	ListJournals(ctx context.Context, params dto.ListJournalsParams) (*dto.ListJournalsResponse, error)
	UpdateJournal(ctx context.Context, journalID string, req dto.UpdateJournalRequest, requestingUserID string) (*domain.Journal, error)
	ListScheduledPostings(ctx context.Context, journalID string) ([]domain.ScheduledPosting, error)

	// ListAccountLines retrieves the ledger view of a single account: the
	// lines posted to it, newest first, with token-based pagination.
	ListAccountLines(ctx context.Context, accountID string, params dto.ListAccountLinesParams) (*dto.ListAccountLinesResponse, error)
}
