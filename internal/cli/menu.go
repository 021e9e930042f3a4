package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu (default when no subcommand is given)",
		Args:  cobra.NoArgs,
		Run:   runMenu,
	}

	RootCmd.Run = runMenu
	RootCmd.AddCommand(cmd)
}

func runMenu(cmd *cobra.Command, args []string) {
	s, err := openSession(cmd)
	if err != nil {
		exitErr("open data", err)
	}
	defer s.Close()

	sh := NewShell(s.tr, cmd.InOrStdin(), cmd.OutOrStdout(), func() error {
		return s.save(cmd.Context())
	})
	if err := sh.Run(); err != nil {
		exitErr("menu", err)
	}
}
