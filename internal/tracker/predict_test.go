package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageCycleLength(t *testing.T) {
	tests := []struct {
		name   string
		starts []string
		want   int
	}{
		{"none", nil, 28},
		{"single", []string{"2026-03-10"}, 28},
		{"steady", []string{"2026-01-01", "2026-01-29", "2026-02-26"}, 28},
		{"one gap", []string{"2026-01-01", "2026-01-31"}, 30},
		// 28 and 23 -> 25.5, half to even gives 26.
		{"half rounds to even up", []string{"2026-01-01", "2026-01-29", "2026-02-21"}, 26},
		// 26 and 27 -> 26.5, half to even gives 26.
		{"half rounds to even down", []string{"2026-01-01", "2026-01-27", "2026-02-23"}, 26},
		// 27 and 28 -> 27.5 -> 28.
		{"half rounds to even 27.5", []string{"2026-01-01", "2026-01-28", "2026-02-25"}, 28},
		// 30, 31, 30 -> 30.33 -> 30.
		{"below half", []string{"2025-11-01", "2025-12-01", "2026-01-01", "2026-01-31"}, 30},
		{"across leap day", []string{"2024-02-15", "2024-03-14"}, 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageCycleLength(dates(tt.starts...)))
		})
	}
}

func TestCycleLengths(t *testing.T) {
	assert.Nil(t, CycleLengths(dates("2026-01-01")))
	assert.Equal(t, []int{28, 23}, CycleLengths(dates("2026-01-01", "2026-01-29", "2026-02-21")))
}

func TestPredictNextPeriod(t *testing.T) {
	_, ok := PredictNextPeriod(nil, 28)
	assert.False(t, ok)

	next, ok := PredictNextPeriod(dates("2026-01-01"), 28)
	require.True(t, ok)
	assert.Equal(t, "2026-01-29", next.String())

	next, ok = PredictNextPeriod(dates("2025-12-01", "2025-12-20"), 19)
	require.True(t, ok)
	assert.Equal(t, "2026-01-08", next.String())
}

func TestPredictOvulation(t *testing.T) {
	_, ok := PredictOvulation(nil, 28)
	assert.False(t, ok)

	ov, ok := PredictOvulation(dates("2026-01-01"), 28)
	require.True(t, ok)
	assert.Equal(t, "2026-01-15", ov.String())
}

func TestPredictOvulation_ShortCycleFallsBeforeLastStart(t *testing.T) {
	starts := dates("2026-01-01", "2026-01-11")
	avg := AverageCycleLength(starts)
	require.Equal(t, 10, avg)

	ov, ok := PredictOvulation(starts, avg)
	require.True(t, ok)
	assert.Equal(t, "2026-01-07", ov.String())
	assert.True(t, ov.Before(starts[len(starts)-1]))
}

func TestPredict(t *testing.T) {
	p := Predict(nil)
	assert.False(t, p.OK)
	assert.Equal(t, DefaultCycleLength, p.AverageLength)
	assert.True(t, p.NextPeriod.IsZero())

	p = Predict(dates("2026-01-01", "2026-01-29", "2026-02-21"))
	assert.True(t, p.OK)
	assert.Equal(t, 26, p.AverageLength)
	assert.Equal(t, "2026-03-19", p.NextPeriod.String())
	assert.Equal(t, "2026-03-05", p.Ovulation.String())
}
