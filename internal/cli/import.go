package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/cycletrack/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import data from JSON",
		Long: "Merge a JSON document (stdin or --file) in the format produced by export. " +
			"Cycle starts are added; symptom logs replace existing entries for the same day.",
		Args: cobra.NoArgs,
		Run:  runImport,
	}

	cmd.Flags().String("file", "", "Read from this file instead of stdin")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	file, _ := cmd.Flags().GetString("file")

	var in io.Reader = cmd.InOrStdin()
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			exitErr("open import file", err)
		}
		defer f.Close()
		in = f
	}

	snap, err := store.Decode(in)
	if err != nil {
		exitErr("parse import", err)
	}

	s, err := openSession(cmd)
	if err != nil {
		exitErr("open data", err)
	}
	defer s.Close()

	cycles, records := s.tr.Merge(snap)
	if err := s.save(cmd.Context()); err != nil {
		exitErr("save", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"cycles_added":%d,"records":%d}`+"\n", cycles, records)
}
