package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded cycle starts and the average cycle length",
		Args:  cobra.NoArgs,
		Run:   runHistory,
	}

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	s, err := openSession(cmd)
	if err != nil {
		exitErr("open data", err)
	}
	defer s.Close()

	h := newHistoryOutput(s.tr)
	if jsonOutput() {
		b, _ := json.MarshalIndent(h, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}
	printHistory(cmd.OutOrStdout(), h)
}
