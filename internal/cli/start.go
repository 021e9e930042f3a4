package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/cycletrack/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "start DATE [DATE...]",
		Short: "Record cycle start dates (YYYY-MM-DD)",
		Long:  "Record one or more cycle start dates. Dates already recorded are left as they are.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runStart,
	}

	RootCmd.AddCommand(cmd)
}

func runStart(cmd *cobra.Command, args []string) {
	var starts []model.Date
	for _, a := range args {
		d, err := parseDate(a)
		if err != nil {
			exitErr("start", err)
		}
		starts = append(starts, d)
	}

	s, err := openSession(cmd)
	if err != nil {
		exitErr("open data", err)
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	for _, d := range starts {
		if s.tr.AddCycleStart(d) {
			fmt.Fprintf(out, "New cycle started on %s recorded.\n", d.Long())
		} else {
			fmt.Fprintf(out, "A cycle start on %s is already recorded.\n", d.Long())
		}
	}

	if err := s.save(cmd.Context()); err != nil {
		exitErr("save", err)
	}
	fmt.Fprintf(out, "Average cycle length: %d days\n", s.tr.AverageCycleLength())
}
