package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase exe suffix", "chrome.exe", "Chrome"},
		{"uppercase exe suffix", "FIREFOX.EXE", "FIREFOX"},
		{"mixed case suffix", "MsEdge.eXe", "MsEdge"},
		{"no suffix", "spotify", "Spotify"},
		{"empty string", "", ""},
		{"suffix only", ".exe", ""},
		{"already capitalized", "Code.exe", "Code"},
		{"single char", "x", "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayName(tt.input))
		})
	}
}

func TestDayBucketTotal(t *testing.T) {
	bucket := DayBucket{"chrome.exe": 120.5, "code.exe": 79.5}
	assert.InDelta(t, 200.0, bucket.Total(), 1e-9)

	assert.Zero(t, DayBucket{}.Total())
}

func TestUsageStoreClone(t *testing.T) {
	store := UsageStore{
		"2024-03-15": {"chrome.exe": 100},
	}

	clone := store.Clone()
	clone["2024-03-15"]["chrome.exe"] = 999
	clone["2024-03-16"] = DayBucket{"code.exe": 1}

	assert.InDelta(t, 100.0, store["2024-03-15"]["chrome.exe"], 1e-9)
	assert.NotContains(t, store, "2024-03-16")
}

func TestWeekday(t *testing.T) {
	// 2024-03-11 is a Monday.
	monday := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, Weekday(monday.AddDate(0, 0, i)))
	}
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-02-29", DateKey(time.Date(2024, 2, 29, 13, 45, 0, 0, time.Local)))
}
