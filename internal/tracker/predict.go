package tracker

import (
	"math"

	"github.com/rcliao/cycletrack/internal/model"
)

const (
	// DefaultCycleLength is assumed until two cycle starts are known.
	DefaultCycleLength = 28

	// LutealPhaseDays is the fixed offset from the next period back to
	// ovulation. It is not scaled by cycle length, so with short averages the
	// ovulation date can land before the last recorded start.
	LutealPhaseDays = 14
)

// Prediction bundles the values derived from a history.
type Prediction struct {
	AverageLength int
	NextPeriod    model.Date
	Ovulation     model.Date
	OK            bool // false when no cycle start is recorded
}

// CycleLengths returns the day gaps between adjacent starts.
// starts must be ascending.
func CycleLengths(starts []model.Date) []int {
	if len(starts) < 2 {
		return nil
	}
	gaps := make([]int, 0, len(starts)-1)
	for i := 1; i < len(starts); i++ {
		gaps = append(gaps, starts[i-1].DaysUntil(starts[i]))
	}
	return gaps
}

// AverageCycleLength is the mean of the adjacent gaps rounded half to even
// (25.5 -> 26, 26.5 -> 26), or DefaultCycleLength with fewer than two starts.
func AverageCycleLength(starts []model.Date) int {
	gaps := CycleLengths(starts)
	if len(gaps) == 0 {
		return DefaultCycleLength
	}
	sum := 0
	for _, g := range gaps {
		sum += g
	}
	return int(math.RoundToEven(float64(sum) / float64(len(gaps))))
}

// PredictNextPeriod returns the last start plus avgLength days, or false
// when there is no start to project from.
func PredictNextPeriod(starts []model.Date, avgLength int) (model.Date, bool) {
	if len(starts) == 0 {
		return model.Date{}, false
	}
	return starts[len(starts)-1].AddDays(avgLength), true
}

// PredictOvulation returns the predicted next period minus LutealPhaseDays.
func PredictOvulation(starts []model.Date, avgLength int) (model.Date, bool) {
	next, ok := PredictNextPeriod(starts, avgLength)
	if !ok {
		return model.Date{}, false
	}
	return next.AddDays(-LutealPhaseDays), true
}

// Predict computes the average length and both predictions for starts.
func Predict(starts []model.Date) Prediction {
	p := Prediction{AverageLength: AverageCycleLength(starts)}
	p.NextPeriod, p.OK = PredictNextPeriod(starts, p.AverageLength)
	p.Ovulation, _ = PredictOvulation(starts, p.AverageLength)
	return p
}
