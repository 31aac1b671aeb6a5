package domain_test

import (
	"testing"
	"time"

	"github.com/ledgerbooks/ledgerbooks_app/internal/apperrors"
	"github.com/ledgerbooks/ledgerbooks_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func TestRecurrencePlan_Expand(t *testing.T) {
	tests := []struct {
		name string
		plan domain.RecurrencePlan
		want []time.Time
	}{
		{
			name: "daily with occurrence count",
			plan: domain.RecurrencePlan{Frequency: domain.Daily, StartDate: day(2024, time.March, 30), Occurrences: intPtr(3)},
			want: []time.Time{day(2024, time.March, 30), day(2024, time.March, 31), day(2024, time.April, 1)},
		},
		{
			name: "weekly with occurrence count",
			plan: domain.RecurrencePlan{Frequency: domain.Weekly, StartDate: day(2024, time.January, 1), Occurrences: intPtr(3)},
			want: []time.Time{day(2024, time.January, 1), day(2024, time.January, 8), day(2024, time.January, 15)},
		},
		{
			name: "monthly clamps Jan 31 to leap-year Feb 29",
			plan: domain.RecurrencePlan{Frequency: domain.Monthly, StartDate: day(2024, time.January, 31), Occurrences: intPtr(2)},
			want: []time.Time{day(2024, time.January, 31), day(2024, time.February, 29)},
		},
		{
			name: "monthly returns to anchor day after short month",
			plan: domain.RecurrencePlan{Frequency: domain.Monthly, StartDate: day(2024, time.January, 31), Occurrences: intPtr(4)},
			want: []time.Time{
				day(2024, time.January, 31),
				day(2024, time.February, 29),
				day(2024, time.March, 31),
				day(2024, time.April, 30),
			},
		},
		{
			name: "monthly bounded by inclusive end date",
			plan: domain.RecurrencePlan{Frequency: domain.Monthly, StartDate: day(2024, time.January, 1), EndDate: timePtr(day(2024, time.March, 1))},
			want: []time.Time{day(2024, time.January, 1), day(2024, time.February, 1), day(2024, time.March, 1)},
		},
		{
			name: "quarterly clamps across quarter ends",
			plan: domain.RecurrencePlan{Frequency: domain.Quarterly, StartDate: day(2024, time.August, 31), Occurrences: intPtr(3)},
			want: []time.Time{day(2024, time.August, 31), day(2024, time.November, 30), day(2025, time.February, 28)},
		},
		{
			name: "annually clamps Feb 29 in non-leap years",
			plan: domain.RecurrencePlan{Frequency: domain.Annually, StartDate: day(2024, time.February, 29), Occurrences: intPtr(3)},
			want: []time.Time{day(2024, time.February, 29), day(2025, time.February, 28), day(2026, time.February, 28)},
		},
		{
			name: "end date equal to start yields one date",
			plan: domain.RecurrencePlan{Frequency: domain.Daily, StartDate: day(2024, time.June, 1), EndDate: timePtr(day(2024, time.June, 1))},
			want: []time.Time{day(2024, time.June, 1)},
		},
		{
			name: "occurrences win when both bounds are set",
			plan: domain.RecurrencePlan{
				Frequency:   domain.Daily,
				StartDate:   day(2024, time.June, 1),
				EndDate:     timePtr(day(2024, time.June, 30)),
				Occurrences: intPtr(2),
			},
			want: []time.Time{day(2024, time.June, 1), day(2024, time.June, 2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.plan.Expand()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecurrencePlan_ExpandAscending(t *testing.T) {
	plan := domain.RecurrencePlan{Frequency: domain.Monthly, StartDate: day(2023, time.October, 31), Occurrences: intPtr(12)}

	dates, err := plan.Expand()
	require.NoError(t, err)
	require.Len(t, dates, 12)
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].After(dates[i-1]), "dates must be strictly ascending: %s vs %s", dates[i-1], dates[i])
	}
}

func TestRecurrencePlan_ExpandErrors(t *testing.T) {
	tests := []struct {
		name    string
		plan    domain.RecurrencePlan
		wantErr error
	}{
		{
			name:    "no bound at all",
			plan:    domain.RecurrencePlan{Frequency: domain.Monthly, StartDate: day(2024, time.January, 1)},
			wantErr: domain.ErrRecurrenceUnbounded,
		},
		{
			name:    "zero occurrences",
			plan:    domain.RecurrencePlan{Frequency: domain.Weekly, StartDate: day(2024, time.January, 1), Occurrences: intPtr(0)},
			wantErr: domain.ErrRecurrenceEmpty,
		},
		{
			name:    "end date before start",
			plan:    domain.RecurrencePlan{Frequency: domain.Daily, StartDate: day(2024, time.June, 2), EndDate: timePtr(day(2024, time.June, 1))},
			wantErr: domain.ErrRecurrenceEmpty,
		},
		{
			name:    "unknown frequency",
			plan:    domain.RecurrencePlan{Frequency: "FORTNIGHTLY", StartDate: day(2024, time.June, 1), Occurrences: intPtr(1)},
			wantErr: domain.ErrRecurrenceFrequency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.plan.Expand()
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrConfiguration)
		})
	}
}
