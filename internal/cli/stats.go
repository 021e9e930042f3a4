package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/cycletrack/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show data file statistics",
		Args:  cobra.NoArgs,
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openSession(cmd)
	if err != nil {
		exitErr("open data", err)
	}
	defer s.Close()

	st := store.CollectStats(s.store, s.tr.Snapshot())
	out := cmd.OutOrStdout()
	if jsonOutput() {
		b, _ := json.MarshalIndent(st, "", "  ")
		fmt.Fprintln(out, string(b))
		return
	}

	fmt.Fprintf(out, "Data file:      %s (%s, %s)\n", st.Path, st.Backend, st.Size)
	fmt.Fprintf(out, "Cycle starts:   %d\n", st.Cycles)
	if st.Cycles > 0 {
		fmt.Fprintf(out, "First / last:   %s / %s\n", st.FirstCycle, st.LastCycle)
	}
	fmt.Fprintf(out, "Days logged:    %d\n", st.SymptomDays)
	fmt.Fprintf(out, "Average length: %d days\n", s.tr.AverageCycleLength())
}
