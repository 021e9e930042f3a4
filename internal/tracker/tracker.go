package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rcliao/cycletrack/internal/model"
	"github.com/rcliao/cycletrack/internal/store"
)

// Tracker is the root state object: the cycle history, the symptom log and
// the cached average cycle length derived from the history.
type Tracker struct {
	history *CycleHistory
	log     *SymptomLog
	avg     int
}

// New returns an empty tracker.
func New() *Tracker {
	t := &Tracker{history: NewCycleHistory(), log: NewSymptomLog()}
	t.recompute()
	return t
}

// FromSnapshot builds a tracker from persisted state.
func FromSnapshot(snap *store.Snapshot) *Tracker {
	t := New()
	if snap == nil {
		return t
	}
	t.history = NewCycleHistory(snap.Cycles...)
	for d, rec := range snap.Symptoms {
		t.log.Log(d, rec)
	}
	t.recompute()
	return t
}

// Open loads the tracker from st. A missing file and an unreadable file both
// yield an empty tracker and no error; they are logged at different levels.
// Only unexpected failures are returned.
func Open(ctx context.Context, st store.Store, logger *zap.Logger) (*Tracker, error) {
	start := time.Now()
	snap, err := st.Load(ctx)

	var readErr *store.ReadError
	switch {
	case errors.Is(err, store.ErrNoData):
		logger.Info("no data file yet, starting fresh", zap.String("path", st.Path()))
		return New(), nil
	case errors.As(err, &readErr):
		logger.Warn("could not load data, starting fresh",
			zap.String("path", readErr.Path), zap.Error(readErr.Err))
		return New(), nil
	case err != nil:
		return nil, fmt.Errorf("load: %w", err)
	}

	t := FromSnapshot(snap)
	logger.Debug("loaded data",
		zap.String("path", st.Path()),
		zap.Int("cycles", t.history.Len()),
		zap.Int("symptom_days", t.log.Len()),
		zap.Duration("took", time.Since(start)))
	return t, nil
}

// Save writes the full state to st.
func (t *Tracker) Save(ctx context.Context, st store.Store, logger *zap.Logger) error {
	start := time.Now()
	if err := st.Save(ctx, t.Snapshot()); err != nil {
		return err
	}
	logger.Debug("saved data",
		zap.String("path", st.Path()),
		zap.Int("cycles", t.history.Len()),
		zap.Int("symptom_days", t.log.Len()),
		zap.Duration("took", time.Since(start)))
	return nil
}

// Snapshot returns a copy of the state for persistence.
func (t *Tracker) Snapshot() *store.Snapshot {
	return &store.Snapshot{
		Cycles:   t.history.All(),
		Symptoms: t.log.All(),
	}
}

// Merge folds snap into the tracker: cycle starts are unioned and symptom
// records replace any existing record for the same date. It returns the
// number of new cycle starts and the number of records written.
func (t *Tracker) Merge(snap *store.Snapshot) (cycles, records int) {
	if snap == nil {
		return 0, 0
	}
	for _, d := range snap.Cycles {
		if t.history.Add(d) {
			cycles++
		}
	}
	for d, rec := range snap.Symptoms {
		t.log.Log(d, rec)
		records++
	}
	t.recompute()
	return cycles, records
}

// AddCycleStart records d as a cycle start. Returns false if it was already recorded.
func (t *Tracker) AddCycleStart(d model.Date) bool {
	if !t.history.Add(d) {
		return false
	}
	t.recompute()
	return true
}

// Cycles returns all cycle starts, oldest first.
func (t *Tracker) Cycles() []model.Date { return t.history.All() }

// CycleLengths returns the gaps between adjacent cycle starts.
func (t *Tracker) CycleLengths() []int { return CycleLengths(t.history.starts) }

// AverageCycleLength returns the current rounded average cycle length.
func (t *Tracker) AverageCycleLength() int { return t.avg }

// NextPeriod predicts the next cycle start.
func (t *Tracker) NextPeriod() (model.Date, bool) {
	return PredictNextPeriod(t.history.starts, t.avg)
}

// Ovulation predicts the ovulation date.
func (t *Tracker) Ovulation() (model.Date, bool) {
	return PredictOvulation(t.history.starts, t.avg)
}

// Prediction returns the average and both predictions together.
func (t *Tracker) Prediction() Prediction {
	return Predict(t.history.starts)
}

// LogSymptoms stores the record for d, overwriting any earlier one.
func (t *Tracker) LogSymptoms(d model.Date, flow, mood string, symptoms []string, notes string) {
	t.log.Log(d, model.SymptomRecord{
		Flow:     flow,
		Mood:     mood,
		Symptoms: symptoms,
		Notes:    notes,
	})
}

// Symptoms returns the record logged for d.
func (t *Tracker) Symptoms(d model.Date) (model.SymptomRecord, bool) {
	return t.log.Get(d)
}

// RecordsForMonth returns the records dated in year/month, in no particular order.
func (t *Tracker) RecordsForMonth(year int, month time.Month) []model.DatedRecord {
	return t.log.ForMonth(year, month)
}

// SymptomDays returns how many days have a record.
func (t *Tracker) SymptomDays() int { return t.log.Len() }

func (t *Tracker) recompute() {
	t.avg = AverageCycleLength(t.history.starts)
}
