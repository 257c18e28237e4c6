package entity

import "time"

// Journey holds the practice counters of a user.
type Journey struct {
	ConsecutiveDays int
	MonthCount      int
	YearCount       int
	TotalCount      int
	TotalMinutes    int
	// LastSessionDate is the YYYY-MM-DD day of the latest recorded session, empty when none.
	LastSessionDate string
}

// RecordSession counts one finished meditation of the given length at the given local time.
// The streak grows on consecutive days, is unchanged for more sessions on the same day and
// restarts at 1 after a gap. Month and year counters restart when the calendar changes.
// Journeys without a readable last session date keep their stored counters and build on them.
func (j *Journey) RecordSession(at time.Time, minutes int) {
	if minutes < 0 {
		minutes = 0
	}

	j.TotalCount++
	j.TotalMinutes += minutes

	today := at.Format(DateLayout)
	last, err := time.ParseInLocation(DateLayout, j.LastSessionDate, at.Location())
	if j.LastSessionDate == "" || err != nil {
		j.ConsecutiveDays = max(j.ConsecutiveDays, 1)
		j.MonthCount++
		j.YearCount++
		j.LastSessionDate = today

		return
	}

	if today < j.LastSessionDate {
		// a late report for an earlier day only feeds the counters of that period
		if last.Year() == at.Year() {
			j.YearCount++
			if last.Month() == at.Month() {
				j.MonthCount++
			}
		}

		return
	}

	switch {
	case today == j.LastSessionDate:
		if j.ConsecutiveDays == 0 {
			j.ConsecutiveDays = 1
		}
	case last.AddDate(0, 0, 1).Format(DateLayout) == today:
		j.ConsecutiveDays++
	default:
		j.ConsecutiveDays = 1
	}

	if last.Year() != at.Year() {
		j.YearCount = 0
		j.MonthCount = 0
	} else if last.Month() != at.Month() {
		j.MonthCount = 0
	}
	j.MonthCount++
	j.YearCount++
	j.LastSessionDate = today
}

// CurrentStreak returns the streak as seen at now. A streak whose last session is
// older than yesterday is over and counts as zero.
func (j Journey) CurrentStreak(now time.Time) int {
	if j.LastSessionDate == "" {
		return 0
	}

	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
	if j.LastSessionDate < yesterday {
		return 0
	}

	return j.ConsecutiveDays
}

// AsOf returns the counters as they read at now: the streak is over after a missed day
// and month or year counters from an earlier period read as zero.
func (j Journey) AsOf(now time.Time) Journey {
	current := j
	current.ConsecutiveDays = j.CurrentStreak(now)

	last, err := time.ParseInLocation(DateLayout, j.LastSessionDate, now.Location())
	if err != nil {
		return current
	}
	if last.Year() != now.Year() {
		current.YearCount = 0
		current.MonthCount = 0
	} else if last.Month() != now.Month() {
		current.MonthCount = 0
	}

	return current
}

// PracticedOn reports whether a session was recorded on the day of t.
func (j Journey) PracticedOn(t time.Time) bool {
	return j.LastSessionDate != "" && j.LastSessionDate == t.Format(DateLayout)
}
