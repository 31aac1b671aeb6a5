package domain_test

import (
	"testing"
	"time"

	"github.com/ledgerbooks/ledgerbooks_app/internal/apperrors"
	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balancedDraft(t *testing.T) *domain.JournalDraft {
	t.Helper()
	d := domain.NewJournalDraft(day(2024, time.January, 15), "JE-1001", "Office supplies")
	line, err := d.Line(0)
	require.NoError(t, err)
	line.AccountID = "10001"
	line.SetDebit(dec("100.00"))

	line, err = d.Line(1)
	require.NoError(t, err)
	line.AccountID = "40001"
	line.SetCredit(dec("100.00"))
	return d
}

func TestNewJournalDraft(t *testing.T) {
	d := domain.NewJournalDraft(time.Time{}, "JE-1", "desc")

	assert.Len(t, d.Lines, 2)
	assert.Equal(t, domain.Editing, d.Status)
	assert.False(t, d.JournalDate.IsZero(), "zero date defaults to now")
	assert.False(t, d.IsRecurring())
}

func TestJournalDraft_AddRemoveLines(t *testing.T) {
	d := domain.NewJournalDraft(day(2024, time.March, 1), "JE-2", "desc")

	d.AddLine()
	assert.Len(t, d.Lines, 3)

	require.NoError(t, d.RemoveLine(2))
	assert.Len(t, d.Lines, 2)

	// Removing below the two-line floor is refused and leaves the draft intact.
	err := d.RemoveLine(0)
	assert.ErrorIs(t, err, domain.ErrMinimumLines)
	assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)
	assert.Len(t, d.Lines, 2)

	err = d.RemoveLine(7)
	assert.ErrorIs(t, err, domain.ErrLineIndex)
}

func TestJournalDraft_RemoveLinePreservesOrder(t *testing.T) {
	d := domain.NewJournalDraft(day(2024, time.March, 1), "JE-3", "desc")
	for i, acc := range []string{"A", "B", "C", "D"} {
		var line *domain.DraftLine
		if i < 2 {
			line, _ = d.Line(i)
		} else {
			line = d.AddLine()
		}
		line.AccountID = acc
	}

	require.NoError(t, d.RemoveLine(1))

	got := make([]string, len(d.Lines))
	for i := range d.Lines {
		got[i] = d.Lines[i].AccountID
	}
	assert.Equal(t, []string{"A", "C", "D"}, got)
}

func TestJournalDraft_CanSubmit(t *testing.T) {
	t.Run("balanced draft submits", func(t *testing.T) {
		d := balancedDraft(t)
		assert.True(t, d.CanSubmit())
	})

	t.Run("unbalanced draft does not", func(t *testing.T) {
		d := balancedDraft(t)
		line, _ := d.Line(1)
		line.SetCredit(dec("99.50"))

		totals := d.Totals()
		assert.False(t, totals.IsBalanced)
		assert.True(t, totals.Difference.Equal(dec("0.50")))
		assert.False(t, d.CanSubmit())
	})

	t.Run("missing description blocks submission", func(t *testing.T) {
		d := balancedDraft(t)
		d.Description = ""
		assert.False(t, d.CanSubmit())
	})

	t.Run("missing reference blocks submission", func(t *testing.T) {
		d := balancedDraft(t)
		d.Reference = ""
		assert.False(t, d.CanSubmit())
	})
}

func TestJournalDraft_SubmitOneShot(t *testing.T) {
	d := balancedDraft(t)

	sub, err := d.Submit()
	require.NoError(t, err)

	assert.Equal(t, domain.Submitted, d.Status)
	assert.Equal(t, []time.Time{day(2024, time.January, 15)}, sub.PostingDates)
}

func TestJournalDraft_SubmitRecurring(t *testing.T) {
	d := balancedDraft(t)
	require.NoError(t, d.SetRecurring(domain.RecurrencePlan{
		Frequency:   domain.Monthly,
		StartDate:   day(2024, time.January, 1),
		Occurrences: intPtr(3),
	}))

	sub, err := d.Submit()
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		day(2024, time.January, 1),
		day(2024, time.February, 1),
		day(2024, time.March, 1),
	}, sub.PostingDates)
}

func TestJournalDraft_SubmitUnbalancedFails(t *testing.T) {
	d := balancedDraft(t)
	line, _ := d.Line(0)
	line.SetDebit(dec("123.45"))

	_, err := d.Submit()
	assert.ErrorIs(t, err, apperrors.ErrInvariantViolation)
	assert.Equal(t, domain.Editing, d.Status, "failed submit leaves the draft editable")
}

func TestJournalDraft_SubmitUnboundedRecurrenceFails(t *testing.T) {
	d := balancedDraft(t)
	err := d.SetRecurring(domain.RecurrencePlan{Frequency: domain.Monthly, StartDate: day(2024, time.January, 1)})
	assert.ErrorIs(t, err, domain.ErrRecurrenceUnbounded)

	// Force the invalid plan past the eager validation to show Submit defends itself too.
	plan := domain.RecurrencePlan{Frequency: domain.Monthly, StartDate: day(2024, time.January, 1)}
	d.Recurrence = &plan
	_, err = d.Submit()
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	assert.Equal(t, domain.Editing, d.Status)
}

func TestJournalDraft_ResubmitFails(t *testing.T) {
	d := balancedDraft(t)
	_, err := d.Submit()
	require.NoError(t, err)

	_, err = d.Submit()
	assert.ErrorIs(t, err, domain.ErrDraftAlreadySubmitted)
}

func TestJournalDraft_ClearRecurring(t *testing.T) {
	d := balancedDraft(t)
	require.NoError(t, d.SetRecurring(domain.RecurrencePlan{
		Frequency:   domain.Weekly,
		StartDate:   day(2024, time.January, 1),
		Occurrences: intPtr(2),
	}))
	require.True(t, d.IsRecurring())

	d.ClearRecurring()
	assert.False(t, d.IsRecurring())

	sub, err := d.Submit()
	require.NoError(t, err)
	assert.Len(t, sub.PostingDates, 1)
}
