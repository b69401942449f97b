package mpris

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// Controller pauses playing media and resumes exactly the players it
// paused. The paused players are tracked in memory only, for the life
// of the process; after a restart there is nothing to resume.
//
// A repeated pause without an intervening resume replaces the tracked
// set rather than merging into it. None of the Send methods return an
// error: every failure is absorbed and logged so one unreachable
// player never blocks the user-facing action.
type Controller struct {
	bus    Bus
	ignore []string

	// mu guards paused. It is held only to read or replace the slice,
	// never across a bus call.
	mu     sync.Mutex
	paused []string
}

// New returns a Controller using bus, skipping players whose name
// matches an entry in ignore during discovery.
func New(bus Bus, ignore []string) *Controller {
	return &Controller{bus: bus, ignore: ignore}
}

// Paused returns a copy of the players paused by this controller that
// have not yet been resumed.
func (c *Controller) Paused() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.paused)
}

// SendPause pauses every player that is currently playing and records
// it for a later SendPlay. Players that are stopped or already paused
// are left alone so they are not erroneously resumed later. A player is
// recorded only after its Pause dispatch succeeds.
func (c *Controller) SendPause(ctx context.Context) {
	players := c.DiscoverPlayers(ctx)
	if len(players) == 0 {
		slog.Debug("no media players found")
		return
	}

	slog.Debug("checking which players are playing", "count", len(players))

	var paused []string
	for _, player := range players {
		if c.PlayerStatus(ctx, player) != StatusPlaying {
			slog.Debug("player is not playing, skipping", "player", player)
			continue
		}
		if err := c.dispatch(ctx, CommandPause, player); err != nil {
			slog.Warn("failed to pause player", "player", player, "error", err)
			continue
		}
		slog.Debug("paused player", "player", player)
		paused = append(paused, player)
	}

	if len(paused) == 0 {
		slog.Debug("no playing players found to pause")
		return
	}

	slog.Debug("storing paused players for resume", "players", paused)
	c.mu.Lock()
	c.paused = paused
	c.mu.Unlock()
}

// SendPlay resumes every player recorded by the last SendPause and
// forgets them all, whether or not each Play dispatch succeeded. A
// player that fails to resume is not retried on a later call.
func (c *Controller) SendPlay(ctx context.Context) {
	c.mu.Lock()
	paused := slices.Clone(c.paused)
	c.mu.Unlock()

	if len(paused) == 0 {
		slog.Debug("no media was paused by us, skipping play command")
		return
	}

	slog.Debug("resuming previously paused players", "count", len(paused))

	resumed := 0
	for _, player := range paused {
		if err := c.dispatch(ctx, CommandPlay, player); err != nil {
			slog.Warn("failed to resume player", "player", player, "error", err)
			continue
		}
		slog.Debug("resumed player", "player", player)
		resumed++
	}

	slog.Debug("resume complete", "resumed", resumed, "total", len(paused))

	c.mu.Lock()
	c.paused = nil
	c.mu.Unlock()
}

// SendPlayPause toggles the most plausible active player: the first one
// found playing, or failing that the first player discovered at all.
// If that player rejects the command, each remaining player is tried in
// turn until one accepts. Independent of the pause/resume tracking.
func (c *Controller) SendPlayPause(ctx context.Context) {
	players := c.DiscoverPlayers(ctx)
	if len(players) == 0 {
		slog.Debug("no media players found")
		return
	}

	target := players[0]
	for _, player := range players {
		if c.PlayerStatus(ctx, player) == StatusPlaying {
			target = player
			break
		}
	}

	err := c.dispatch(ctx, CommandPlayPause, target)
	if err == nil {
		slog.Debug("sent play/pause", "player", target)
		return
	}
	slog.Debug("preferred player rejected play/pause, trying others", "player", target, "error", err)

	for _, player := range players {
		if player == target {
			continue
		}
		if err := c.dispatch(ctx, CommandPlayPause, player); err != nil {
			slog.Debug("fallback player rejected play/pause", "player", player, "error", err)
			continue
		}
		slog.Debug("sent play/pause", "player", player)
		return
	}

	slog.Warn("failed to send play/pause to any player")
}
