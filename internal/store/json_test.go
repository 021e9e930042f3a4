package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/cycletrack/internal/model"
)

func TestJSONLoadMissing(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "wellness_data.json"))
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "wellness_data.json")
	s := NewJSONStore(path)

	want := sampleSnapshot()
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.Cycles, got.Cycles)
	assert.Equal(t, want.Symptoms, got.Symptoms)

	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	assert.Empty(t, matches, "temp files should be cleaned up")
}

func TestJSONLoadLegacyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellness_data.json")
	legacy := `{
    "cycles": ["2026-02-26", "2026-01-01", "2026-01-29", "2026-01-01"],
    "symptoms": {
        "2026-01-05": {
            "flow": "heavy",
            "mood": "irritable",
            "symptoms": ["cramps"],
            "notes": ""
        }
    }
}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	snap, err := NewJSONStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Date{
		model.MustParseDate("2026-01-01"),
		model.MustParseDate("2026-01-29"),
		model.MustParseDate("2026-02-26"),
	}, snap.Cycles)

	rec, ok := snap.Symptoms[model.MustParseDate("2026-01-05")]
	require.True(t, ok)
	assert.Equal(t, "heavy", rec.Flow)
	assert.Equal(t, []string{"cramps"}, rec.Symptoms)
}

func TestJSONLoadMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"truncated":   `{"cycles": ["2026-01-01"`,
		"bad date":    `{"cycles": ["01/05/2026"], "symptoms": {}}`,
		"bad key":     `{"cycles": [], "symptoms": {"yesterday": {"flow": "light"}}}`,
		"future":      `{"version": 99, "cycles": [], "symptoms": {}}`,
		"wrong shape": `["2026-01-01"]`,
		"null cycle":  `{"cycles": [null, "2026-01-01"], "symptoms": {}}`,
		"trailing":    `{"cycles": ["2026-01-01"], "symptoms": {}} trailing junk`,
		"two docs":    `{"cycles": [], "symptoms": {}}{"cycles": [], "symptoms": {}}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "wellness_data.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			_, err := NewJSONStore(path).Load(context.Background())
			var re *ReadError
			assert.True(t, errors.As(err, &re), "expected ReadError, got %v", err)
			assert.False(t, errors.Is(err, ErrNoData))
		})
	}
}

func TestJSONSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	// A regular file where a directory is needed makes MkdirAll fail.
	err := NewJSONStore(filepath.Join(blocker, "data.json")).Save(context.Background(), sampleSnapshot())
	var we *WriteError
	assert.True(t, errors.As(err, &we), "expected WriteError, got %v", err)
}

func TestEncodeShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, &Snapshot{
		Cycles: []model.Date{model.MustParseDate("2026-01-01")},
		Symptoms: map[model.Date]model.SymptomRecord{
			model.MustParseDate("2026-01-02"): {Flow: "light"},
		},
	}))
	assert.JSONEq(t, `{
		"version": 1,
		"cycles": ["2026-01-01"],
		"symptoms": {"2026-01-02": {"flow": "light", "mood": "", "symptoms": [], "notes": ""}}
	}`, buf.String())
	assert.True(t, strings.Contains(buf.String(), "\n    \"cycles\""), "expected 4-space indent")
}

func TestEncodeNil(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.JSONEq(t, `{"version": 1, "cycles": [], "symptoms": {}}`, buf.String())
}
