package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/cycletrack/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as JSON",
		Long:  "Write all cycle starts and symptom logs to stdout in the JSON data file format.",
		Args:  cobra.NoArgs,
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openSession(cmd)
	if err != nil {
		exitErr("open data", err)
	}
	defer s.Close()

	if err := store.Encode(cmd.OutOrStdout(), s.tr.Snapshot()); err != nil {
		exitErr("export", err)
	}
}
