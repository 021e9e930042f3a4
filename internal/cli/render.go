package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/rcliao/cycletrack/internal/model"
	"github.com/rcliao/cycletrack/internal/tracker"
)

type historyOutput struct {
	Cycles        []model.Date `json:"cycles"`
	CycleLengths  []int        `json:"cycle_lengths,omitempty"`
	AverageLength int          `json:"average_cycle_length"`
}

type predictionOutput struct {
	AverageLength int         `json:"average_cycle_length"`
	NextPeriod    *model.Date `json:"next_period,omitempty"`
	Ovulation     *model.Date `json:"ovulation,omitempty"`
}

type summaryOutput struct {
	Year    int                 `json:"year"`
	Month   int                 `json:"month"`
	Records []model.DatedRecord `json:"records"`
}

func newHistoryOutput(tr *tracker.Tracker) historyOutput {
	return historyOutput{
		Cycles:        tr.Cycles(),
		CycleLengths:  tr.CycleLengths(),
		AverageLength: tr.AverageCycleLength(),
	}
}

func newPredictionOutput(tr *tracker.Tracker) predictionOutput {
	p := tr.Prediction()
	out := predictionOutput{AverageLength: p.AverageLength}
	if p.OK {
		out.NextPeriod = &p.NextPeriod
		out.Ovulation = &p.Ovulation
	}
	return out
}

// newSummaryOutput sorts the month's records by day for display.
func newSummaryOutput(tr *tracker.Tracker, year int, month time.Month) summaryOutput {
	records := tr.RecordsForMonth(year, month)
	slices.SortFunc(records, func(a, b model.DatedRecord) int { return a.Date.Compare(b.Date) })
	if records == nil {
		records = []model.DatedRecord{}
	}
	return summaryOutput{Year: year, Month: int(month), Records: records}
}

func printHistory(w io.Writer, h historyOutput) {
	if len(h.Cycles) == 0 {
		fmt.Fprintln(w, "No cycles recorded yet.")
	} else {
		fmt.Fprintln(w, "Cycle Start Dates:")
		for _, d := range h.Cycles {
			fmt.Fprintf(w, "• %s\n", d.Long())
		}
	}
	fmt.Fprintf(w, "\nAverage cycle length: %d days\n", h.AverageLength)
}

func printPredictions(w io.Writer, p predictionOutput) {
	if p.NextPeriod == nil {
		fmt.Fprintln(w, "Add at least one cycle to see predictions.")
		return
	}
	fmt.Fprintf(w, "Predicted next period: %s\n", p.NextPeriod.Long())
	fmt.Fprintf(w, "Predicted ovulation window: around %s\n", p.Ovulation.Long())
}

func printSummary(w io.Writer, s summaryOutput) {
	title := time.Date(s.Year, time.Month(s.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	fmt.Fprintf(w, "Summary for %s\n", title)
	if len(s.Records) == 0 {
		fmt.Fprintln(w, "No symptoms logged.")
		return
	}
	for _, r := range s.Records {
		line := fmt.Sprintf("%02d: Mood: %s, Flow: %s, Symptoms: %s",
			r.Date.Day(), r.Record.Mood, r.Record.Flow, strings.Join(r.Record.Symptoms, ", "))
		if r.Record.Notes != "" {
			line += ", Notes: " + r.Record.Notes
		}
		fmt.Fprintln(w, line)
	}
}
