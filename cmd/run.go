package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run -- command [args...]",
		Short: "Pause playing media, run a command, resume afterwards",
		Long: `Pause every playing player, run the given command with stdio
attached, then resume exactly the players that were paused. Media is
resumed even when the command fails or is interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl := newController()

			ctrl.SendPause(ctx)
			// Resume must still run after Ctrl-C has canceled ctx.
			defer ctrl.SendPlay(context.WithoutCancel(ctx))

			child := exec.CommandContext(ctx, args[0], args[1:]...)
			child.Stdin = os.Stdin
			child.Stdout = os.Stdout
			child.Stderr = os.Stderr

			if err := child.Run(); err != nil {
				return fmt.Errorf("command failed: %w", err)
			}
			return nil
		},
	}

	// Flags after the command name belong to the child command.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
