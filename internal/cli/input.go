package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rcliao/cycletrack/internal/model"
)

var validate = validator.New()

type monthInput struct {
	Year  int `validate:"min=1,max=9999"`
	Month int `validate:"min=1,max=12"`
}

func parseDate(s string) (model.Date, error) {
	return model.ParseDate(strings.TrimSpace(s))
}

// parseYear checks a user-typed year on its own, before a month is asked for.
func parseYear(yearStr string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil {
		return 0, &model.FormatError{Input: yearStr, Reason: "year must be a whole number"}
	}
	if err := validate.Var(year, "min=1,max=9999"); err != nil {
		return 0, &model.FormatError{Input: yearStr, Reason: "year must be 1-9999"}
	}
	return year, nil
}

// parseYearMonth turns user-typed year and month into values for a monthly summary.
func parseYearMonth(yearStr, monthStr string) (int, time.Month, error) {
	year, err := parseYear(yearStr)
	if err != nil {
		return 0, 0, err
	}
	month, err := strconv.Atoi(strings.TrimSpace(monthStr))
	if err != nil {
		return 0, 0, &model.FormatError{Input: monthStr, Reason: "month must be a whole number"}
	}
	if err := validate.Struct(monthInput{Year: year, Month: month}); err != nil {
		return 0, 0, &model.FormatError{
			Input:  fmt.Sprintf("%s/%s", strings.TrimSpace(yearStr), strings.TrimSpace(monthStr)),
			Reason: "month must be 1-12 and year 1-9999",
		}
	}
	return year, time.Month(month), nil
}

// splitTags splits a comma-separated list, dropping blanks. Duplicates are kept.
func splitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// adviseValues notes unrecognized flow or mood values. They are stored as typed either way.
func adviseValues(w io.Writer, flow, mood string) {
	if flow != "" && !model.IsKnownFlow(flow) {
		fmt.Fprintf(w, "Note: flow %q is not one of %s; saved as entered.\n", flow, model.FlowHint())
	}
	if mood != "" && !model.IsKnownMood(mood) {
		fmt.Fprintf(w, "Note: mood %q is not one of %s; saved as entered.\n", mood, model.MoodHint())
	}
}
