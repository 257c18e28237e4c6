package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitReference(t *testing.T) {
	tests := []struct {
		name     string
		full     string
		wantText string
		wantRef  string
	}{
		{
			name:     "reference at the end",
			full:     "Porque Deus amou o mundo de tal maneira. - João 3:16",
			wantText: "Porque Deus amou o mundo de tal maneira.",
			wantRef:  "João 3:16",
		},
		{
			name:     "verse range with suffix",
			full:     "O Senhor é o meu pastor, nada me faltará. -Salmos 23:1-3a",
			wantText: "O Senhor é o meu pastor, nada me faltará.",
			wantRef:  "Salmos 23:1-3a",
		},
		{
			name:     "hyphen inside the text is kept",
			full:     "Amor - e paz. - Gálatas 5:22",
			wantText: "Amor - e paz.",
			wantRef:  "Gálatas 5:22",
		},
		{
			name:     "no reference",
			full:     "  Aquietai-vos e sabei.  ",
			wantText: "Aquietai-vos e sabei.",
			wantRef:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ref := SplitReference(tt.full)
			assert.Equal(t, tt.wantText, text)
			assert.Equal(t, tt.wantRef, ref)
		})
	}
}

func TestDailyManna_Passage_ExplicitReferenceWins(t *testing.T) {
	m := &DailyManna{
		ScriptureText:      "Tudo posso naquele que me fortalece. - Fp 4:13",
		ScriptureReference: "Filipenses 4:13",
	}

	text, ref := m.Passage()

	assert.Equal(t, "Tudo posso naquele que me fortalece.", text)
	assert.Equal(t, "Filipenses 4:13", ref)
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-02-29"))
	assert.False(t, IsValidDate("2023-02-29"))
	assert.False(t, IsValidDate("2024-2-1"))
	assert.False(t, IsValidDate("01/02/2024"))
	assert.False(t, IsValidDate(""))
}
