// Package tracker holds the in-memory cycle model: the ordered history of
// cycle starts, the per-day symptom log, and the predictions derived from them.
package tracker

import (
	"slices"

	"github.com/rcliao/cycletrack/internal/model"
)

// CycleHistory is an ascending, duplicate-free sequence of cycle start dates.
type CycleHistory struct {
	starts []model.Date
}

// NewCycleHistory builds a history from dates in any order; duplicates are dropped.
func NewCycleHistory(dates ...model.Date) *CycleHistory {
	h := &CycleHistory{}
	for _, d := range dates {
		h.Add(d)
	}
	return h
}

// Add inserts d in order. Adding a date that is already present is a no-op
// and returns false.
func (h *CycleHistory) Add(d model.Date) bool {
	i, found := slices.BinarySearchFunc(h.starts, d, model.Date.Compare)
	if found {
		return false
	}
	h.starts = slices.Insert(h.starts, i, d)
	return true
}

// All returns a copy of the start dates, oldest first. Never nil.
func (h *CycleHistory) All() []model.Date {
	out := make([]model.Date, len(h.starts))
	copy(out, h.starts)
	return out
}

func (h *CycleHistory) Len() int { return len(h.starts) }
