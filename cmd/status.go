package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/connorhough/hush/internal/mpris"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List media players and their playback status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl := newController()

			players := ctrl.DiscoverPlayers(ctx)
			if len(players) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No media players found")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PLAYER\tSTATUS")
			for _, player := range players {
				short := strings.TrimPrefix(player, mpris.PlayerPrefix)
				fmt.Fprintf(w, "%s\t%s\n", short, ctrl.PlayerStatus(ctx, player))
			}
			return w.Flush()
		},
	}
}
