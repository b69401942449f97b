package cmd

import (
	"github.com/spf13/cobra"
)

func newPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause every player that is currently playing",
		Long: `Pause every media player that is currently playing. Players that are
stopped or already paused are left alone. Failures against individual
players are logged and never abort the rest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			newController().SendPause(cmd.Context())
			return nil
		},
	}
}
