package model

import (
	"slices"
	"strings"
)

// SymptomRecord is one day's log entry. Flow and Mood are free text; the
// known values below are hints for prompts and are never enforced.
type SymptomRecord struct {
	Flow     string   `json:"flow"`
	Mood     string   `json:"mood"`
	Symptoms []string `json:"symptoms"`
	Notes    string   `json:"notes"`
}

// DatedRecord pairs a SymptomRecord with the date it was logged for.
type DatedRecord struct {
	Date   Date          `json:"date"`
	Record SymptomRecord `json:"record"`
}

// FlowLevels are the recognized flow intensities, lightest first.
var FlowLevels = []string{"none", "light", "medium", "heavy"}

// Moods are the recognized mood values.
var Moods = []string{"happy", "calm", "anxious", "irritable", "sad"}

// IsKnownFlow reports whether flow is one of FlowLevels.
func IsKnownFlow(flow string) bool { return slices.Contains(FlowLevels, flow) }

// IsKnownMood reports whether mood is one of Moods.
func IsKnownMood(mood string) bool { return slices.Contains(Moods, mood) }

// FlowHint returns the recognized flow values as "a/b/c".
func FlowHint() string { return strings.Join(FlowLevels, "/") }

// MoodHint returns the recognized mood values as "a/b/c".
func MoodHint() string { return strings.Join(Moods, "/") }
