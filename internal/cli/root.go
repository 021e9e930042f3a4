// Package cli implements the cycletrack commands and the interactive menu.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/cycletrack/internal/config"
	"github.com/rcliao/cycletrack/internal/logging"
	"github.com/rcliao/cycletrack/internal/store"
	"github.com/rcliao/cycletrack/internal/tracker"
)

var (
	dataPath   string
	configPath string
	formatFlag string
)

// RootCmd is the top-level command. Without a subcommand it starts the menu.
var RootCmd = &cobra.Command{
	Use:   "cycletrack",
	Short: "Private period and wellness tracker",
	Long: "Record cycle start dates and daily symptoms, and predict the next period and ovulation.\n" +
		"Data stays in a single local file. Run without a subcommand for the interactive menu.",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Data file (default: $CYCLETRACK_DATA, config data_path, or ~/.cycletrack/wellness_data.json)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $CYCLETRACK_CONFIG or ~/.cycletrack/config.yaml)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
}

// session is one process's view of the data: loaded at start, saved on exit.
type session struct {
	logger *zap.Logger
	store  store.Store
	tr     *tracker.Tracker
}

func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(config.Path(configPath))
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(cfg.ResolveDataPath(dataPath), cfg.Backend)
	if err != nil {
		return nil, err
	}
	tr, err := tracker.Open(cmd.Context(), st, logger)
	if err != nil {
		st.Close()
		return nil, err
	}
	return &session{logger: logger, store: st, tr: tr}, nil
}

func (s *session) save(ctx context.Context) error {
	return s.tr.Save(ctx, s.store, s.logger)
}

func (s *session) Close() {
	s.store.Close()
	s.logger.Sync()
}

func jsonOutput() bool {
	return formatFlag == "json"
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
