package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, time.UTC)
	if err != nil {
		panic(err)
	}

	return t
}

func TestJourney_RecordSession(t *testing.T) {
	tests := []struct {
		name  string
		start Journey
		at    string
		mins  int
		want  Journey
	}{
		{
			name: "first session",
			at:   "2024-05-10 07:00",
			mins: 10,
			want: Journey{ConsecutiveDays: 1, MonthCount: 1, YearCount: 1, TotalCount: 1, TotalMinutes: 10, LastSessionDate: "2024-05-10"},
		},
		{
			name:  "same day keeps the streak",
			start: Journey{ConsecutiveDays: 4, MonthCount: 5, YearCount: 9, TotalCount: 20, TotalMinutes: 200, LastSessionDate: "2024-05-10"},
			at:    "2024-05-10 21:00",
			mins:  5,
			want:  Journey{ConsecutiveDays: 4, MonthCount: 6, YearCount: 10, TotalCount: 21, TotalMinutes: 205, LastSessionDate: "2024-05-10"},
		},
		{
			name:  "next day extends the streak",
			start: Journey{ConsecutiveDays: 4, MonthCount: 5, YearCount: 9, TotalCount: 20, TotalMinutes: 200, LastSessionDate: "2024-05-10"},
			at:    "2024-05-11 06:00",
			mins:  15,
			want:  Journey{ConsecutiveDays: 5, MonthCount: 6, YearCount: 10, TotalCount: 21, TotalMinutes: 215, LastSessionDate: "2024-05-11"},
		},
		{
			name:  "gap restarts the streak",
			start: Journey{ConsecutiveDays: 4, MonthCount: 5, YearCount: 9, TotalCount: 20, TotalMinutes: 200, LastSessionDate: "2024-05-10"},
			at:    "2024-05-13 06:00",
			mins:  15,
			want:  Journey{ConsecutiveDays: 1, MonthCount: 6, YearCount: 10, TotalCount: 21, TotalMinutes: 215, LastSessionDate: "2024-05-13"},
		},
		{
			name:  "new month restarts the month counter",
			start: Journey{ConsecutiveDays: 2, MonthCount: 12, YearCount: 40, TotalCount: 40, TotalMinutes: 400, LastSessionDate: "2024-05-31"},
			at:    "2024-06-01 08:00",
			mins:  10,
			want:  Journey{ConsecutiveDays: 3, MonthCount: 1, YearCount: 41, TotalCount: 41, TotalMinutes: 410, LastSessionDate: "2024-06-01"},
		},
		{
			name:  "new year restarts month and year counters",
			start: Journey{ConsecutiveDays: 7, MonthCount: 12, YearCount: 150, TotalCount: 150, TotalMinutes: 1500, LastSessionDate: "2024-12-31"},
			at:    "2025-01-01 08:00",
			mins:  10,
			want:  Journey{ConsecutiveDays: 8, MonthCount: 1, YearCount: 1, TotalCount: 151, TotalMinutes: 1510, LastSessionDate: "2025-01-01"},
		},
		{
			name:  "late report for an earlier day leaves the streak alone",
			start: Journey{ConsecutiveDays: 3, MonthCount: 3, YearCount: 3, TotalCount: 3, TotalMinutes: 30, LastSessionDate: "2024-05-10"},
			at:    "2024-05-09 23:50",
			mins:  10,
			want:  Journey{ConsecutiveDays: 3, MonthCount: 4, YearCount: 4, TotalCount: 4, TotalMinutes: 40, LastSessionDate: "2024-05-10"},
		},
		{
			name:  "stored counters without a last session date are kept",
			start: Journey{ConsecutiveDays: 4, MonthCount: 6, YearCount: 40, TotalCount: 90, TotalMinutes: 900},
			at:    "2025-03-10 08:00",
			mins:  10,
			want:  Journey{ConsecutiveDays: 4, MonthCount: 7, YearCount: 41, TotalCount: 91, TotalMinutes: 910, LastSessionDate: "2025-03-10"},
		},
		{
			name:  "unreadable last session date keeps counters",
			start: Journey{MonthCount: 2, YearCount: 3, TotalCount: 3, TotalMinutes: 30, LastSessionDate: "10/03/2025"},
			at:    "2025-03-10 08:00",
			mins:  5,
			want:  Journey{ConsecutiveDays: 1, MonthCount: 3, YearCount: 4, TotalCount: 4, TotalMinutes: 35, LastSessionDate: "2025-03-10"},
		},
		{
			name:  "negative minutes count as zero",
			start: Journey{ConsecutiveDays: 1, MonthCount: 1, YearCount: 1, TotalCount: 1, TotalMinutes: 10, LastSessionDate: "2024-05-10"},
			at:    "2024-05-10 09:00",
			mins:  -5,
			want:  Journey{ConsecutiveDays: 1, MonthCount: 2, YearCount: 2, TotalCount: 2, TotalMinutes: 10, LastSessionDate: "2024-05-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := tt.start
			j.RecordSession(day(tt.at), tt.mins)
			assert.Equal(t, tt.want, j)
		})
	}
}

func TestJourney_PracticedOn(t *testing.T) {
	j := Journey{LastSessionDate: "2024-05-10"}

	assert.True(t, j.PracticedOn(day("2024-05-10 22:00")))
	assert.False(t, j.PracticedOn(day("2024-05-11 00:01")))
	assert.False(t, Journey{}.PracticedOn(day("2024-05-10 22:00")))
}

func TestJourney_CurrentStreak(t *testing.T) {
	tests := []struct {
		name string
		last string
		now  string
		want int
	}{
		{name: "practiced today", last: "2025-03-20", now: "2025-03-20 21:00", want: 5},
		{name: "practiced yesterday", last: "2025-03-19", now: "2025-03-20 06:00", want: 5},
		{name: "missed one day", last: "2025-03-18", now: "2025-03-20 06:00", want: 0},
		{name: "long gap", last: "2025-03-10", now: "2025-03-20 06:00", want: 0},
		{name: "across a year boundary", last: "2024-12-31", now: "2025-01-01 00:10", want: 5},
		{name: "no session recorded", now: "2025-03-20 06:00", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := Journey{ConsecutiveDays: 5, LastSessionDate: tt.last}
			assert.Equal(t, tt.want, j.CurrentStreak(day(tt.now)))
		})
	}
}

func TestJourney_AsOf(t *testing.T) {
	j := Journey{ConsecutiveDays: 5, MonthCount: 8, YearCount: 30, TotalCount: 60, TotalMinutes: 600, LastSessionDate: "2025-03-10"}

	assert.Equal(t, j, j.AsOf(day("2025-03-11 08:00")))
	assert.Equal(t,
		Journey{MonthCount: 8, YearCount: 30, TotalCount: 60, TotalMinutes: 600, LastSessionDate: "2025-03-10"},
		j.AsOf(day("2025-03-20 08:00")))
	assert.Equal(t,
		Journey{YearCount: 30, TotalCount: 60, TotalMinutes: 600, LastSessionDate: "2025-03-10"},
		j.AsOf(day("2025-04-02 08:00")))
	assert.Equal(t,
		Journey{TotalCount: 60, TotalMinutes: 600, LastSessionDate: "2025-03-10"},
		j.AsOf(day("2026-01-05 08:00")))
}
