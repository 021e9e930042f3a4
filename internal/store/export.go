package store

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/rcliao/cycletrack/internal/model"
)

// FormatVersion is written to every JSON document. Documents without a
// version field are treated as version 1.
const FormatVersion = 1

type document struct {
	Version  int                                `json:"version,omitempty"`
	Cycles   []model.Date                       `json:"cycles"`
	Symptoms map[model.Date]model.SymptomRecord `json:"symptoms"`
}

// Encode writes snap as an indented JSON document.
func Encode(w io.Writer, snap *Snapshot) error {
	doc := document{
		Version:  FormatVersion,
		Cycles:   []model.Date{},
		Symptoms: map[model.Date]model.SymptomRecord{},
	}
	if snap != nil {
		doc.Cycles = append(doc.Cycles, snap.Cycles...)
		for d, rec := range snap.Symptoms {
			if rec.Symptoms == nil {
				rec.Symptoms = []string{}
			}
			doc.Symptoms[d] = rec
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(doc)
}

// Decode reads a JSON document. Cycles come back ascending and de-duplicated
// whatever their order in the input.
func Decode(r io.Reader) (*Snapshot, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("decode json: unexpected data after document")
	}
	if doc.Version > FormatVersion {
		return nil, fmt.Errorf("unsupported format version %d (max %d)", doc.Version, FormatVersion)
	}

	snap := &Snapshot{
		Cycles:   slices.Clone(doc.Cycles),
		Symptoms: doc.Symptoms,
	}
	if snap.Cycles == nil {
		snap.Cycles = []model.Date{}
	}
	// A JSON null decodes to the zero Date without calling UnmarshalText.
	if slices.ContainsFunc(snap.Cycles, model.Date.IsZero) {
		return nil, fmt.Errorf("decode json: null cycle start")
	}
	slices.SortFunc(snap.Cycles, model.Date.Compare)
	snap.Cycles = slices.Compact(snap.Cycles)
	if snap.Symptoms == nil {
		snap.Symptoms = map[model.Date]model.SymptomRecord{}
	}
	for d, rec := range snap.Symptoms {
		if rec.Symptoms == nil {
			rec.Symptoms = []string{}
			snap.Symptoms[d] = rec
		}
	}
	return snap, nil
}
