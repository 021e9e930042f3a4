package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "summary YEAR MONTH",
		Short: "Show the symptoms logged in a month",
		Args:  cobra.ExactArgs(2),
		Run:   runSummary,
	}

	RootCmd.AddCommand(cmd)
}

func runSummary(cmd *cobra.Command, args []string) {
	year, month, err := parseYearMonth(args[0], args[1])
	if err != nil {
		exitErr("summary", err)
	}

	s, err := openSession(cmd)
	if err != nil {
		exitErr("open data", err)
	}
	defer s.Close()

	sum := newSummaryOutput(s.tr, year, month)
	if jsonOutput() {
		b, _ := json.MarshalIndent(sum, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}
	printSummary(cmd.OutOrStdout(), sum)
}
