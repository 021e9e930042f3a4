package model

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, "2026-01-05", d.String())
}

func TestParseDate_Rejects(t *testing.T) {
	bad := []string{
		"",
		"2026-1-05",
		"2026-01-5",
		"26-01-05",
		"2026/01/05",
		"2026-13-01",
		"2026-02-30",
		"2025-02-29",
		"2026-01-05x",
		" 2026-01-05",
		"2026-01-05T00:00:00",
	}
	for _, in := range bad {
		_, err := ParseDate(in)
		var fe *FormatError
		if assert.Error(t, err, in) {
			assert.True(t, errors.As(err, &fe), "expected FormatError for %q", in)
			assert.Equal(t, in, fe.Input)
		}
	}
}

func TestParseDate_LeapDay(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())
}

func TestLong(t *testing.T) {
	assert.Equal(t, "January 05, 2026", MustParseDate("2026-01-05").Long())
	assert.Equal(t, "December 31, 2025", MustParseDate("2025-12-31").Long())
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2026-01-01", 28, "2026-01-29"},
		{"2026-01-29", -14, "2026-01-15"},
		{"2025-12-20", 28, "2026-01-17"},
		{"2024-02-20", 10, "2024-03-01"},
		{"2023-02-20", 10, "2023-03-02"},
		{"2026-03-01", -1, "2026-02-28"},
		{"2024-03-01", -1, "2024-02-29"},
	}
	for _, tt := range tests {
		got := MustParseDate(tt.from).AddDays(tt.n)
		assert.Equal(t, tt.want, got.String(), "%s %+d", tt.from, tt.n)
	}
}

func TestDaysUntil(t *testing.T) {
	a := MustParseDate("2026-01-01")
	assert.Equal(t, 28, a.DaysUntil(MustParseDate("2026-01-29")))
	assert.Equal(t, -28, MustParseDate("2026-01-29").DaysUntil(a))
	assert.Equal(t, 0, a.DaysUntil(a))
	assert.Equal(t, 366, MustParseDate("2024-01-01").DaysUntil(MustParseDate("2025-01-01")))
	assert.Equal(t, 365, MustParseDate("2025-01-01").DaysUntil(MustParseDate("2026-01-01")))
}

func TestCompare(t *testing.T) {
	a := MustParseDate("2026-01-31")
	b := MustParseDate("2026-02-01")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(MustParseDate("2026-01-31")))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, MustParseDate("2025-12-31").Before(a))
}

func TestDateJSON(t *testing.T) {
	type doc struct {
		Dates []Date          `json:"dates"`
		ByDay map[Date]string `json:"by_day"`
	}
	in := doc{
		Dates: []Date{MustParseDate("2026-01-01")},
		ByDay: map[Date]string{MustParseDate("2026-01-02"): "x"},
	}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"dates":["2026-01-01"],"by_day":{"2026-01-02":"x"}}`, string(b))

	var out doc
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	err = json.Unmarshal([]byte(`{"dates":["2026-1-1"]}`), &out)
	assert.Error(t, err)
}
