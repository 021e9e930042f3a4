package tracker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/cycletrack/internal/model"
)

func dates(ss ...string) []model.Date {
	out := make([]model.Date, len(ss))
	for i, s := range ss {
		out[i] = model.MustParseDate(s)
	}
	return out
}

func TestCycleHistory_Empty(t *testing.T) {
	h := NewCycleHistory()
	all := h.All()
	assert.NotNil(t, all)
	assert.Empty(t, all)
	assert.Equal(t, 0, h.Len())
}

func TestCycleHistory_AddKeepsOrder(t *testing.T) {
	h := NewCycleHistory()
	assert.True(t, h.Add(model.MustParseDate("2026-02-26")))
	assert.True(t, h.Add(model.MustParseDate("2026-01-01")))
	assert.True(t, h.Add(model.MustParseDate("2026-01-29")))

	assert.Equal(t, dates("2026-01-01", "2026-01-29", "2026-02-26"), h.All())
}

func TestCycleHistory_DuplicateIsNoop(t *testing.T) {
	h := NewCycleHistory(dates("2026-01-01", "2026-01-29")...)
	assert.False(t, h.Add(model.MustParseDate("2026-01-01")))
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, dates("2026-01-01", "2026-01-29"), h.All())
}

func TestCycleHistory_AllReturnsCopy(t *testing.T) {
	h := NewCycleHistory(dates("2026-01-01")...)
	all := h.All()
	all[0] = model.MustParseDate("1999-01-01")
	assert.Equal(t, dates("2026-01-01"), h.All())
}

func TestCycleHistory_AnyInsertionOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	base := model.MustParseDate("2024-01-01")

	for round := 0; round < 50; round++ {
		h := NewCycleHistory()
		n := rng.Intn(40)
		for i := 0; i < n; i++ {
			// Small offset range forces plenty of duplicates.
			h.Add(base.AddDays(rng.Intn(60)))
		}

		all := h.All()
		for i := 1; i < len(all); i++ {
			require.True(t, all[i-1].Before(all[i]),
				"round %d: %s not strictly before %s", round, all[i-1], all[i])
		}
	}
}
