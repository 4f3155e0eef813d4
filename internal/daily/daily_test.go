package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"utc", time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC), "2024-03-09"},
		{"offset rolls back", time.Date(2024, 3, 9, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600)), "2024-03-08"},
		{"offset rolls forward", time.Date(2024, 12, 31, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)), "2025-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateKey(tt.in))
		})
	}
}

func TestWordIndex(t *testing.T) {
	salt := []byte("salt")
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	t.Run("stable within a day", func(t *testing.T) {
		assert.Equal(t, WordIndex(day, salt, 100), WordIndex(day.Add(23*time.Hour), salt, 100))
	})

	t.Run("in range", func(t *testing.T) {
		for i := 0; i < 365; i++ {
			idx := WordIndex(day.AddDate(0, 0, i), salt, 7)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 7)
		}
	})

	t.Run("varies across days", func(t *testing.T) {
		seen := map[int]bool{}
		for i := 0; i < 30; i++ {
			seen[WordIndex(day.AddDate(0, 0, i), salt, 1000)] = true
		}
		assert.Greater(t, len(seen), 1)
	})

	t.Run("salt matters", func(t *testing.T) {
		differs := false
		for i := 0; i < 30 && !differs; i++ {
			d := day.AddDate(0, 0, i)
			differs = WordIndex(d, salt, 1000) != WordIndex(d, []byte("other"), 1000)
		}
		assert.True(t, differs)
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, 0, WordIndex(day, salt, 0))
	})
}
