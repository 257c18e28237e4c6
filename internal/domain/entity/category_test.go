package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   Category
		wantOK bool
	}{
		{in: "paz", want: CategoryPeace, wantOK: true},
		{in: "Gratidão", want: CategoryGratitude, wantOK: true},
		{in: " AGRADECER ", want: CategoryGratitude, wantOK: true},
		{in: "sono", want: CategorySleep, wantOK: true},
		{in: "Sabedoria", want: CategoryWisdom, wantOK: true},
		{in: "alegria", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCategory(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_LabelsCoverEveryCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.IsValid())
		assert.NotEmpty(t, c.Label(), c.Slug())
	}
	assert.False(t, Category("alegria").IsValid())
}

func TestIsAudioURL(t *testing.T) {
	assert.True(t, IsAudioURL("https://cdn.example.com/paz.mp3"))
	assert.True(t, IsAudioURL("http://localhost:9000/a.mp3"))
	assert.False(t, IsAudioURL("/audio/paz.mp3"))
	assert.False(t, IsAudioURL("ftp://example.com/a.mp3"))
	assert.False(t, IsAudioURL("https://"))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleAdmin, ParseRole(" Admin "))
	assert.Equal(t, RoleUser, ParseRole("user"))
	assert.Equal(t, RoleUser, ParseRole(""))
	assert.Equal(t, RoleUser, ParseRole("superuser"))
}
