package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "zero", duration: 0, expected: "0s"},
		{name: "negative", duration: -time.Minute, expected: "0s"},
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1min"},
		{name: "minutes drop seconds", duration: 2*time.Minute + 30*time.Second, expected: "2min"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30min"},
		{name: "whole hours", duration: 20 * time.Hour, expected: "20h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
