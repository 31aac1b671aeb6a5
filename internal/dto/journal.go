package dto

import (
	"strings"
	"time"

	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one debit/credit row of a submission. At most
// one of Debit and Credit should be set; when both arrive, the later-applied
// credit wins, mirroring the mutually-exclusive form fields.
type CreateJournalLineRequest struct {
	AccountID   string           `json:"accountID" binding:"required"`
	Description string           `json:"description"`
	Debit       *decimal.Decimal `json:"debit,omitempty"`
	Credit      *decimal.Decimal `json:"credit,omitempty"`
	TaxCode     string           `json:"taxCode"`
}

// RecurrenceRequest configures a recurring journal template.
type RecurrenceRequest struct {
	Frequency   string     `json:"frequency" binding:"required,recurrence_frequency"`
	StartDate   time.Time  `json:"startDate" binding:"required"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Occurrences *int       `json:"occurrences,omitempty" binding:"omitempty,min=1"`
}

// ToDomain converts the request into a domain recurrence plan. Frequency is
// case-insensitive on the wire.
func (r RecurrenceRequest) ToDomain() domain.RecurrencePlan {
	return domain.RecurrencePlan{
		Frequency:   domain.RecurrenceFrequency(strings.ToUpper(r.Frequency)),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Occurrences: r.Occurrences,
	}
}

// CreateJournalRequest is the payload for posting a journal draft.
type CreateJournalRequest struct {
	Date         time.Time                  `json:"date"` // Defaults to now when zero
	Reference    string                     `json:"reference"`
	Description  string                     `json:"description" binding:"required"`
	CurrencyCode string                     `json:"currencyCode" binding:"required,len=3"`
	Lines        []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
	Recurrence   *RecurrenceRequest         `json:"recurrence,omitempty"`
}

// UpdateJournalRequest carries the mutable header fields of a posted journal.
type UpdateJournalRequest struct {
	Date        *time.Time `json:"date,omitempty"`
	Description *string    `json:"description,omitempty"`
}

// ValidateDraftLineRequest is a line as the entry form holds it: raw text
// amounts. Unparseable or negative amounts count as zero, matching the
// form's lenient input handling.
type ValidateDraftLineRequest struct {
	AccountID string `json:"accountID"`
	Debit     string `json:"debit"`
	Credit    string `json:"credit"`
}

// ValidateDraftRequest asks for a live balance verdict over an in-progress
// draft without posting anything.
type ValidateDraftRequest struct {
	Reference   string                     `json:"reference"`
	Description string                     `json:"description"`
	Lines       []ValidateDraftLineRequest `json:"lines"`
}

// DraftVerdictResponse is the live feedback the entry form renders after
// every mutation.
type DraftVerdictResponse struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Difference  decimal.Decimal `json:"difference"`
	IsBalanced  bool            `json:"isBalanced"`
	CanSubmit   bool            `json:"canSubmit"`
}

// RecurrenceResponse describes the recurrence plan a journal was posted
// with. It mirrors RecurrenceRequest without its binding rules.
type RecurrenceResponse struct {
	Frequency   string     `json:"frequency"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Occurrences *int       `json:"occurrences,omitempty"`
}

// JournalLineResponse is one persisted line of a journal.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	TaxCode     string          `json:"taxCode,omitempty"`
}

// ScheduledPostingResponse is one dated occurrence of a journal.
type ScheduledPostingResponse struct {
	PostingID   string    `json:"postingID"`
	Sequence    int       `json:"sequence"`
	PostingDate time.Time `json:"postingDate"`
	Status      string    `json:"status"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID    string                     `json:"journalID"`
	Date         time.Time                  `json:"date"`
	Reference    string                     `json:"reference"`
	Description  string                     `json:"description"`
	CurrencyCode string                     `json:"currencyCode"`
	Status       string                     `json:"status"`
	IsRecurring  bool                       `json:"isRecurring"`
	Recurrence   *RecurrenceResponse        `json:"recurrence,omitempty"`
	Amount       decimal.Decimal            `json:"amount"`
	CreatedAt    time.Time                  `json:"createdAt"`
	CreatedBy    string                     `json:"createdBy"`
	Lines        []JournalLineResponse      `json:"lines,omitempty"`
	Postings     []ScheduledPostingResponse `json:"postings,omitempty"`
}

// ListJournalsParams holds query parameters for listing journals.
type ListJournalsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListJournalsResponse is a page of journals plus the token for the next one.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ListAccountLinesParams holds query parameters for the account ledger view.
type ListAccountLinesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// AccountLineResponse is one ledger row of an account: a journal line plus
// the journal it was posted under.
type AccountLineResponse struct {
	LineID      string          `json:"lineID"`
	JournalID   string          `json:"journalID"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	TaxCode     string          `json:"taxCode,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListAccountLinesResponse is a page of an account's ledger rows.
type ListAccountLinesResponse struct {
	AccountID string                `json:"accountID"`
	Lines     []AccountLineResponse `json:"lines"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToJournalLineResponse converts a domain.JournalLine to its DTO.
func ToJournalLineResponse(l *domain.JournalLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:      l.LineID,
		AccountID:   l.AccountID,
		Description: l.Description,
		Debit:       l.Debit,
		Credit:      l.Credit,
		TaxCode:     l.TaxCode,
	}
}

// ToAccountLineResponse converts a domain.JournalLine to its account ledger
// row DTO.
func ToAccountLineResponse(l *domain.JournalLine) AccountLineResponse {
	return AccountLineResponse{
		LineID:      l.LineID,
		JournalID:   l.JournalID,
		Description: l.Description,
		Debit:       l.Debit,
		Credit:      l.Credit,
		TaxCode:     l.TaxCode,
		CreatedAt:   l.CreatedAt,
	}
}

// ToScheduledPostingResponse converts a domain.ScheduledPosting to its DTO.
func ToScheduledPostingResponse(p *domain.ScheduledPosting) ScheduledPostingResponse {
	return ScheduledPostingResponse{
		PostingID:   p.PostingID,
		Sequence:    p.Sequence,
		PostingDate: p.PostingDate,
		Status:      string(p.Status),
	}
}

// ToJournalResponse converts a domain.Journal, including any loaded lines and
// postings, to its DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:    j.JournalID,
		Date:         j.JournalDate,
		Reference:    j.Reference,
		Description:  j.Description,
		CurrencyCode: j.CurrencyCode,
		Status:       string(j.Status),
		IsRecurring:  j.IsRecurring,
		Amount:       j.Amount,
		CreatedAt:    j.CreatedAt,
		CreatedBy:    j.CreatedBy,
	}
	if j.Recurrence != nil {
		resp.Recurrence = &RecurrenceResponse{
			Frequency:   string(j.Recurrence.Frequency),
			StartDate:   j.Recurrence.StartDate,
			EndDate:     j.Recurrence.EndDate,
			Occurrences: j.Recurrence.Occurrences,
		}
	}
	for i := range j.Lines {
		resp.Lines = append(resp.Lines, ToJournalLineResponse(&j.Lines[i]))
	}
	for i := range j.Postings {
		resp.Postings = append(resp.Postings, ToScheduledPostingResponse(&j.Postings[i]))
	}
	return resp
}

// ToDraftVerdictResponse converts domain totals plus the submittability check
// into the live-feedback DTO.
func ToDraftVerdictResponse(totals domain.Totals, canSubmit bool) DraftVerdictResponse {
	return DraftVerdictResponse{
		TotalDebit:  totals.TotalDebit,
		TotalCredit: totals.TotalCredit,
		Difference:  totals.Difference,
		IsBalanced:  totals.IsBalanced,
		CanSubmit:   canSubmit,
	}
}
