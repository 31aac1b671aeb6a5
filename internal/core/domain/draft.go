package domain

import (
	"fmt"
	"time"

	"github.com/ledgerbooks/ledgerbooks_app/internal/apperrors"
)

// DraftStatus is the lifecycle state of a journal draft.
type DraftStatus string

const (
	Editing   DraftStatus = "EDITING"
	Submitted DraftStatus = "SUBMITTED" // Terminal; persistence happens outside the aggregate
)

// minDraftLines is the structural floor of double-entry: an entry needs a
// debit side and a credit side.
const minDraftLines = 2

var (
	// ErrMinimumLines rejects removals that would drop a draft below two lines.
	ErrMinimumLines = fmt.Errorf("%w: a journal draft keeps at least two lines", apperrors.ErrInvariantViolation)

	// ErrLineIndex rejects line operations addressing a line that does not exist.
	ErrLineIndex = fmt.Errorf("%w: line index out of range", apperrors.ErrInvariantViolation)

	// ErrDraftAlreadySubmitted rejects mutation or re-submission after Submit.
	ErrDraftAlreadySubmitted = fmt.Errorf("%w: draft has already been submitted", apperrors.ErrInvariantViolation)
)

// JournalDraft is the editable aggregate a journal entry form mutates. It
// exclusively owns its lines and keeps the balance verdict derivable at all
// times via Totals. A draft is transient per editing session; once submitted
// it is handed to the journal service for posting and never edited again.
type JournalDraft struct {
	JournalDate  time.Time       `json:"journalDate"`
	Reference    string          `json:"reference"`
	Description  string          `json:"description"`
	CurrencyCode string          `json:"currencyCode"`
	Lines        []DraftLine     `json:"lines"`
	Recurrence   *RecurrencePlan `json:"recurrence,omitempty"` // nil means one-shot
	Status       DraftStatus     `json:"status"`
}

// Submission is the result of a successful Submit: the finalized draft plus
// the posting dates the persistence collaborator should schedule. One-shot
// drafts carry exactly one date, the journal date.
type Submission struct {
	Draft        *JournalDraft
	PostingDates []time.Time
}

// NewJournalDraft creates an editing draft with exactly two empty lines.
// A zero date defaults to the current time.
func NewJournalDraft(date time.Time, reference, description string) *JournalDraft {
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return &JournalDraft{
		JournalDate: date,
		Reference:   reference,
		Description: description,
		Lines:       make([]DraftLine, minDraftLines),
		Status:      Editing,
	}
}

// AddLine appends an empty line and returns a pointer to it for in-place
// editing. There is no upper bound on line count.
func (d *JournalDraft) AddLine() *DraftLine {
	d.Lines = append(d.Lines, DraftLine{})
	return &d.Lines[len(d.Lines)-1]
}

// RemoveLine removes the line at index. Removing below the two-line minimum
// is an invariant violation; the draft is left untouched on any error.
func (d *JournalDraft) RemoveLine(index int) error {
	if index < 0 || index >= len(d.Lines) {
		return fmt.Errorf("%w: %d", ErrLineIndex, index)
	}
	if len(d.Lines) <= minDraftLines {
		return ErrMinimumLines
	}
	d.Lines = append(d.Lines[:index], d.Lines[index+1:]...)
	return nil
}

// Line returns the line at index for mutation, or an error when out of range.
func (d *JournalDraft) Line(index int) (*DraftLine, error) {
	if index < 0 || index >= len(d.Lines) {
		return nil, fmt.Errorf("%w: %d", ErrLineIndex, index)
	}
	return &d.Lines[index], nil
}

// Totals recomputes the balance verdict over the current lines.
func (d *JournalDraft) Totals() Totals {
	return ComputeTotals(d.Lines)
}

// SetRecurring marks the draft as a recurring template with the given plan.
// The plan is validated eagerly so the form can surface configuration
// problems before submission.
func (d *JournalDraft) SetRecurring(plan RecurrencePlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	d.Recurrence = &plan
	return nil
}

// ClearRecurring reverts the draft to a one-shot entry.
func (d *JournalDraft) ClearRecurring() {
	d.Recurrence = nil
}

// IsRecurring reports whether the draft expands into multiple postings.
func (d *JournalDraft) IsRecurring() bool {
	return d.Recurrence != nil
}

// CanSubmit reports whether the draft satisfies every submission
// precondition: balanced lines, a description, a reference, and at least two
// lines. It never mutates the draft.
func (d *JournalDraft) CanSubmit() bool {
	return d.submitBlocker() == nil
}

// submitBlocker returns the first precondition stopping submission, nil when
// the draft is submittable.
func (d *JournalDraft) submitBlocker() error {
	if d.Status != Editing {
		return ErrDraftAlreadySubmitted
	}
	if len(d.Lines) < minDraftLines {
		return ErrMinimumLines
	}
	if d.Description == "" {
		return fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}
	if d.Reference == "" {
		return fmt.Errorf("%w: reference is required", apperrors.ErrValidation)
	}
	if t := d.Totals(); !t.IsBalanced {
		return fmt.Errorf("%w: debits %s do not equal credits %s", apperrors.ErrInvariantViolation, t.TotalDebit, t.TotalCredit)
	}
	return nil
}

// Submit finalizes the draft. It requires CanSubmit and, for recurring
// drafts, an expandable recurrence plan. On success the draft transitions to
// Submitted (terminal) and the posting dates are returned for the
// persistence collaborator to act on. Submit performs no I/O.
func (d *JournalDraft) Submit() (*Submission, error) {
	if err := d.submitBlocker(); err != nil {
		return nil, err
	}

	postingDates := []time.Time{d.JournalDate}
	if d.Recurrence != nil {
		expanded, err := d.Recurrence.Expand()
		if err != nil {
			return nil, err
		}
		postingDates = expanded
	}

	d.Status = Submitted
	return &Submission{Draft: d, PostingDates: postingDates}, nil
}
