package entity

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the calendar day format used for manna dates and journey days.
const DateLayout = "2006-01-02"

// trailing "- Book 1:2-3a" at the end of a scripture text
var trailingReference = regexp.MustCompile(`-\s*([A-Za-zÀ-ÖØ-öø-ÿ\s]+[0-9]+[:0-9,-]+[a-z]?)$`)

// DailyManna is the devotional published for one calendar day.
type DailyManna struct {
	ID                 string
	Date               string
	ScriptureText      string
	ScriptureReference string
	Commentary         string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsValidDate reports whether s is a real calendar day in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	d, err := time.Parse(DateLayout, s)

	return err == nil && d.Format(DateLayout) == s
}

// Passage returns the scripture text and its reference for display.
// A reference written at the end of the text is split off. The explicit
// reference field wins over the one found in the text.
func (m *DailyManna) Passage() (text, reference string) {
	text, found := SplitReference(m.ScriptureText)
	if ref := strings.TrimSpace(m.ScriptureReference); ref != "" {
		return text, ref
	}

	return text, found
}

// SplitReference separates a trailing "- Reference" from a scripture text.
func SplitReference(full string) (text, reference string) {
	full = strings.TrimSpace(full)

	match := trailingReference.FindStringSubmatchIndex(full)
	if match == nil {
		return full, ""
	}

	reference = strings.TrimSpace(full[match[2]:match[3]])
	text = strings.TrimSpace(full[:match[0]] + full[match[1]:])

	return text, reference
}
