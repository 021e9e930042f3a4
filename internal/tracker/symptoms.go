package tracker

import (
	"time"

	"github.com/rcliao/cycletrack/internal/model"
)

// SymptomLog maps a calendar date to the record logged for it.
type SymptomLog struct {
	records map[model.Date]model.SymptomRecord
}

// NewSymptomLog returns an empty log.
func NewSymptomLog() *SymptomLog {
	return &SymptomLog{records: make(map[model.Date]model.SymptomRecord)}
}

// Log stores rec for d, replacing whatever was there. Values are not validated.
func (l *SymptomLog) Log(d model.Date, rec model.SymptomRecord) {
	l.records[d] = cloneRecord(rec)
}

// Get returns the record for d.
func (l *SymptomLog) Get(d model.Date) (model.SymptomRecord, bool) {
	rec, ok := l.records[d]
	if !ok {
		return rec, false
	}
	return cloneRecord(rec), true
}

// ForMonth returns every record dated in year/month, each exactly once.
// The order is unspecified.
func (l *SymptomLog) ForMonth(year int, month time.Month) []model.DatedRecord {
	var out []model.DatedRecord
	for d, rec := range l.records {
		if d.InMonth(year, month) {
			out = append(out, model.DatedRecord{Date: d, Record: cloneRecord(rec)})
		}
	}
	return out
}

// All returns a copy of the underlying map and its records.
func (l *SymptomLog) All() map[model.Date]model.SymptomRecord {
	out := make(map[model.Date]model.SymptomRecord, len(l.records))
	for d, rec := range l.records {
		out[d] = cloneRecord(rec)
	}
	return out
}

func (l *SymptomLog) Len() int { return len(l.records) }

// cloneRecord copies the Symptoms slice so stored records never share backing arrays with callers.
func cloneRecord(rec model.SymptomRecord) model.SymptomRecord {
	rec.Symptoms = append([]string{}, rec.Symptoms...)
	return rec
}
