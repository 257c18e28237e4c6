package entity

import (
	"net/url"
	"strings"
	"time"
)

// Meditation is a guided audio session.
type Meditation struct {
	ID        string
	Title     string
	Category  Category
	AudioURL  string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAudioURL reports whether raw is an absolute http(s) URL.
func IsAudioURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
