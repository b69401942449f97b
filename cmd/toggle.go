package cmd

import (
	"github.com/spf13/cobra"
)

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Toggle play/pause on the active player",
		Long: `Send PlayPause to the most plausible active player: the first one
found playing, or the first player discovered at all. If that player
rejects the command, the remaining players are tried in turn.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			newController().SendPlayPause(cmd.Context())
			return nil
		},
	}
}
