package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the next period and ovulation date",
		Long: "Predict the next period as the last cycle start plus the average cycle length, " +
			"and ovulation as 14 days before that.",
		Args: cobra.NoArgs,
		Run:  runPredict,
	}

	RootCmd.AddCommand(cmd)
}

func runPredict(cmd *cobra.Command, args []string) {
	s, err := openSession(cmd)
	if err != nil {
		exitErr("open data", err)
	}
	defer s.Close()

	p := newPredictionOutput(s.tr)
	if jsonOutput() {
		b, _ := json.MarshalIndent(p, "", "  ")
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return
	}
	printPredictions(cmd.OutOrStdout(), p)
}
