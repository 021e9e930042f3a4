package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/cycletrack/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "log DATE",
		Short: "Log symptoms for a day",
		Long: "Log flow, mood, symptoms and notes for DATE (YYYY-MM-DD). " +
			"Logging the same day again replaces the earlier entry.",
		Args: cobra.ExactArgs(1),
		Run:  runLog,
	}

	cmd.Flags().String("flow", "", "Flow: "+model.FlowHint())
	cmd.Flags().String("mood", "", "Mood: "+model.MoodHint())
	cmd.Flags().StringP("symptoms", "s", "", "Comma-separated symptoms, e.g. cramps,bloating")
	cmd.Flags().String("notes", "", "Free-text notes")

	RootCmd.AddCommand(cmd)
}

func runLog(cmd *cobra.Command, args []string) {
	flow, _ := cmd.Flags().GetString("flow")
	mood, _ := cmd.Flags().GetString("mood")
	symptoms, _ := cmd.Flags().GetString("symptoms")
	notes, _ := cmd.Flags().GetString("notes")

	d, err := parseDate(args[0])
	if err != nil {
		exitErr("log", err)
	}

	s, err := openSession(cmd)
	if err != nil {
		exitErr("open data", err)
	}
	defer s.Close()

	flow = strings.ToLower(strings.TrimSpace(flow))
	mood = strings.ToLower(strings.TrimSpace(mood))
	s.tr.LogSymptoms(d, flow, mood, splitTags(symptoms), strings.TrimSpace(notes))

	if err := s.save(cmd.Context()); err != nil {
		exitErr("save", err)
	}
	adviseValues(cmd.OutOrStdout(), flow, mood)
	fmt.Fprintf(cmd.OutOrStdout(), "Symptoms logged for %s.\n", d.Long())
}
