package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rcliao/cycletrack/internal/model"
	"github.com/rcliao/cycletrack/internal/tracker"
)

const rule = "----------------------------------------"

// Shell is the numbered-menu front end. It mutates the tracker in memory and
// only persists, through save, when the user exits or input ends.
type Shell struct {
	tr   *tracker.Tracker
	in   *bufio.Scanner
	out  io.Writer
	save func() error
}

// NewShell returns a shell reading commands from in and writing to out.
func NewShell(tr *tracker.Tracker, in io.Reader, out io.Writer, save func() error) *Shell {
	return &Shell{tr: tr, in: bufio.NewScanner(in), out: out, save: save}
}

// Run loops until option 6 or end of input, then saves. A save failure is
// returned; nothing else ends the loop with an error.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome to your private wellness tracker.")
	for {
		s.menu()
		choice, err := s.prompt("Choose an option (1-6): ")
		if err != nil {
			return s.exit()
		}

		switch choice {
		case "1":
			err = s.addCycle()
		case "2":
			err = s.logSymptoms()
		case "3":
			s.viewHistory()
		case "4":
			s.viewPredictions()
		case "5":
			err = s.viewSummary()
		case "6":
			return s.exit()
		default:
			fmt.Fprintln(s.out, "Please choose a valid option.")
		}
		if errors.Is(err, io.EOF) {
			return s.exit()
		}
	}
}

func (s *Shell) menu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "    PERSONAL PERIOD & WELLNESS TRACKER")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "1. Add New Cycle Start")
	fmt.Fprintln(s.out, "2. Log Daily Symptoms")
	fmt.Fprintln(s.out, "3. View Cycle History")
	fmt.Fprintln(s.out, "4. View Predictions")
	fmt.Fprintln(s.out, "5. View Monthly Summary")
	fmt.Fprintln(s.out, "6. Exit")
	fmt.Fprintln(s.out, rule)
}

// prompt prints label and returns the next trimmed line, or io.EOF.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) addCycle() error {
	raw, err := s.prompt("\nEnter cycle start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	d, err := parseDate(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid date format. Please use YYYY-MM-DD.")
		return nil
	}
	if s.tr.AddCycleStart(d) {
		fmt.Fprintf(s.out, "New cycle started on %s recorded.\n", d.Long())
	} else {
		fmt.Fprintf(s.out, "A cycle start on %s is already recorded.\n", d.Long())
	}
	return nil
}

func (s *Shell) logSymptoms() error {
	raw, err := s.prompt("\nEnter date to log (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	d, err := parseDate(raw)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid date format. Please use YYYY-MM-DD.")
		return nil
	}

	flow, err := s.prompt(fmt.Sprintf("Flow (%s): ", model.FlowHint()))
	if err != nil {
		return err
	}
	mood, err := s.prompt(fmt.Sprintf("Mood (%s): ", model.MoodHint()))
	if err != nil {
		return err
	}
	tags, err := s.prompt("Symptoms (comma-separated, e.g. cramps, bloating): ")
	if err != nil {
		return err
	}
	notes, err := s.prompt("Additional notes (optional): ")
	if err != nil {
		return err
	}

	flow, mood = strings.ToLower(flow), strings.ToLower(mood)
	s.tr.LogSymptoms(d, flow, mood, splitTags(tags), notes)
	adviseValues(s.out, flow, mood)
	fmt.Fprintf(s.out, "Symptoms logged for %s.\n", d.Long())
	return nil
}

func (s *Shell) viewHistory() {
	fmt.Fprintln(s.out)
	printHistory(s.out, newHistoryOutput(s.tr))
}

func (s *Shell) viewPredictions() {
	fmt.Fprintln(s.out)
	printPredictions(s.out, newPredictionOutput(s.tr))
}

func (s *Shell) viewSummary() error {
	yearStr, err := s.prompt("\nEnter year (e.g., 2026): ")
	if err != nil {
		return err
	}
	if _, err := parseYear(yearStr); err != nil {
		fmt.Fprintln(s.out, "Invalid input.")
		return nil
	}
	monthStr, err := s.prompt("Enter month (1-12): ")
	if err != nil {
		return err
	}
	year, month, err := parseYearMonth(yearStr, monthStr)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input.")
		return nil
	}
	fmt.Fprintln(s.out)
	printSummary(s.out, newSummaryOutput(s.tr, year, month))
	return nil
}

func (s *Shell) exit() error {
	if err := s.save(); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	fmt.Fprintln(s.out, "Your data has been saved.")
	fmt.Fprintln(s.out, "\nTake care of yourself! See you soon.")
	return nil
}
