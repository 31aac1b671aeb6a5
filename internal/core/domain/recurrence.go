package domain

import (
	"fmt"
	"time"

	"github.com/ledgerbooks/ledgerbooks_app/internal/apperrors"
)

// RecurrenceFrequency is the cadence at which a recurring journal posts.
type RecurrenceFrequency string

const (
	Daily     RecurrenceFrequency = "DAILY"
	Weekly    RecurrenceFrequency = "WEEKLY"
	Monthly   RecurrenceFrequency = "MONTHLY"
	Quarterly RecurrenceFrequency = "QUARTERLY"
	Annually  RecurrenceFrequency = "ANNUALLY"
)

// IsValid reports whether the frequency is one of the known cadences.
func (f RecurrenceFrequency) IsValid() bool {
	switch f {
	case Daily, Weekly, Monthly, Quarterly, Annually:
		return true
	}
	return false
}

var (
	// ErrRecurrenceUnbounded rejects plans with neither an end date nor an
	// occurrence count. An unbounded plan would schedule postings forever.
	ErrRecurrenceUnbounded = fmt.Errorf("%w: recurrence plan needs an end date or an occurrence count", apperrors.ErrConfiguration)

	// ErrRecurrenceEmpty rejects plans whose bounds produce no posting dates.
	ErrRecurrenceEmpty = fmt.Errorf("%w: recurrence plan bounds produce no posting dates", apperrors.ErrConfiguration)

	// ErrRecurrenceFrequency rejects plans with an unknown frequency.
	ErrRecurrenceFrequency = fmt.Errorf("%w: unknown recurrence frequency", apperrors.ErrConfiguration)
)

// RecurrencePlan describes how a recurring journal template repeats. The
// start date is occurrence #1. At least one of EndDate and Occurrences must
// bound the schedule; when both are set, Occurrences wins.
type RecurrencePlan struct {
	Frequency   RecurrenceFrequency `json:"frequency"`
	StartDate   time.Time           `json:"startDate"`
	EndDate     *time.Time          `json:"endDate,omitempty"`
	Occurrences *int                `json:"occurrences,omitempty"`
}

// Validate checks the plan's structure without expanding it.
func (p RecurrencePlan) Validate() error {
	if !p.Frequency.IsValid() {
		return fmt.Errorf("%w: %q", ErrRecurrenceFrequency, p.Frequency)
	}
	if p.EndDate == nil && p.Occurrences == nil {
		return ErrRecurrenceUnbounded
	}
	if p.Occurrences != nil {
		if *p.Occurrences <= 0 {
			return ErrRecurrenceEmpty
		}
		return nil
	}
	if p.EndDate.Before(p.StartDate) {
		return ErrRecurrenceEmpty
	}
	return nil
}

// Expand derives the finite, strictly ascending sequence of posting dates.
//
// Occurrence n is the start date advanced by n periods, with the day of month
// clamped to the target month's last day when the anchor day does not exist
// there (Jan 31 monthly posts on Feb 28/29, then Mar 31 again). Anchoring on
// the start date keeps month-end schedules from drifting to the 28th forever
// after the first February.
func (p RecurrencePlan) Expand() ([]time.Time, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if p.Occurrences != nil {
		dates := make([]time.Time, 0, *p.Occurrences)
		for n := 0; n < *p.Occurrences; n++ {
			dates = append(dates, p.nthOccurrence(n))
		}
		return dates, nil
	}

	// EndDate bound, inclusive: a date equal to the end date is emitted.
	var dates []time.Time
	for n := 0; ; n++ {
		d := p.nthOccurrence(n)
		if d.After(*p.EndDate) {
			break
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return nil, ErrRecurrenceEmpty
	}
	return dates, nil
}

// nthOccurrence computes occurrence n (0-based) from the start date.
func (p RecurrencePlan) nthOccurrence(n int) time.Time {
	switch p.Frequency {
	case Daily:
		return p.StartDate.AddDate(0, 0, n)
	case Weekly:
		return p.StartDate.AddDate(0, 0, 7*n)
	case Monthly:
		return addMonthsClamped(p.StartDate, n)
	case Quarterly:
		return addMonthsClamped(p.StartDate, 3*n)
	case Annually:
		return addMonthsClamped(p.StartDate, 12*n)
	}
	// Validate rejects unknown frequencies before we get here.
	return p.StartDate
}

// addMonthsClamped advances t by the given number of calendar months,
// clamping the day of month to the last day of the target month. Plain
// time.AddDate would normalize Jan 31 + 1 month into March.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, months, 0)
	if last := lastDayOfMonth(firstOfTarget.Year(), firstOfTarget.Month()); d > last {
		d = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
