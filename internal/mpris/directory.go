package mpris

import (
	"context"
	"log/slog"
	"strings"
)

// DiscoverPlayers lists the MPRIS players currently registered on the
// bus, in bus-reported order, minus any the user configured as
// ignored. Enumeration failures are logged and yield an empty result;
// zero matches is not an error.
func (c *Controller) DiscoverPlayers(ctx context.Context) []string {
	names, err := c.bus.ListNames(ctx)
	if err != nil {
		slog.Warn("failed to enumerate bus names", "error", err)
		return nil
	}

	var players []string
	for _, name := range names {
		if !strings.HasPrefix(name, PlayerPrefix) {
			continue
		}
		if c.isIgnored(name) {
			slog.Debug("skipping ignored player", "player", name)
			continue
		}
		players = append(players, name)
	}
	return players
}

// isIgnored reports whether the player's name (the part after the MPRIS
// prefix) matches a configured ignore entry, either exactly or as the
// base of an instance-suffixed name such as "vlc.instance1234".
func (c *Controller) isIgnored(name string) bool {
	short := strings.TrimPrefix(name, PlayerPrefix)
	for _, entry := range c.ignore {
		if short == entry || strings.HasPrefix(short, entry+".") {
			return true
		}
	}
	return false
}
