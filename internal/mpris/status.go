package mpris

import (
	"context"
	"log/slog"

	"github.com/godbus/dbus/v5"
)

// PlaybackStatus is the value of the MPRIS PlaybackStatus property.
type PlaybackStatus string

const (
	StatusPlaying PlaybackStatus = "Playing"
	StatusPaused  PlaybackStatus = "Paused"
	StatusStopped PlaybackStatus = "Stopped"
	StatusUnknown PlaybackStatus = "Unknown"
)

// statusFromValue decodes a PlaybackStatus property reply. Players
// differ in how the value arrives: some peers (and some bus libraries)
// hand back the bare string, others a variant wrapping it. Try the
// direct shape first, then unwrap a variant whose inner value is a
// string. Anything else folds to StatusUnknown.
func statusFromValue(v interface{}) PlaybackStatus {
	switch val := v.(type) {
	case string:
		return PlaybackStatus(val)
	case dbus.Variant:
		if s, ok := val.Value().(string); ok {
			return PlaybackStatus(s)
		}
	}
	return StatusUnknown
}

// PlayerStatus probes a player's playback status. Failures fold to
// StatusUnknown so callers can proceed with the remaining players.
func (c *Controller) PlayerStatus(ctx context.Context, player string) PlaybackStatus {
	v, err := c.bus.GetProperty(ctx, player, PlayerPath, PlayerInterface, playbackStatusProperty)
	if err != nil {
		slog.Debug("could not read playback status", "player", player, "error", err)
		return StatusUnknown
	}
	return statusFromValue(v)
}
