package store

import (
	"os"

	"github.com/dustin/go-humanize"
)

// Stats holds data file statistics.
type Stats struct {
	Path        string `json:"path"`
	Backend     string `json:"backend"`
	SizeBytes   int64  `json:"size_bytes"`
	Size        string `json:"size"`
	Cycles      int    `json:"cycles"`
	SymptomDays int    `json:"symptom_days"`
	FirstCycle  string `json:"first_cycle,omitempty"`
	LastCycle   string `json:"last_cycle,omitempty"`
	FormatVer   int    `json:"format_version"`
}

// CollectStats describes the store's file and the given state.
func CollectStats(s Store, snap *Snapshot) *Stats {
	st := &Stats{
		Path:      s.Path(),
		Backend:   BackendJSON,
		FormatVer: FormatVersion,
	}
	if _, ok := s.(*SQLiteStore); ok {
		st.Backend = BackendSQLite
	}

	if info, err := os.Stat(s.Path()); err == nil {
		st.SizeBytes = info.Size()
	}
	st.Size = humanize.Bytes(uint64(st.SizeBytes))

	if snap != nil {
		st.Cycles = len(snap.Cycles)
		st.SymptomDays = len(snap.Symptoms)
		if n := len(snap.Cycles); n > 0 {
			st.FirstCycle = snap.Cycles[0].String()
			st.LastCycle = snap.Cycles[n-1].String()
		}
	}
	return st
}
