package mpris

import (
	"context"
	"fmt"
)

// Command is an MPRIS player method that takes no arguments.
type Command string

const (
	CommandPlay      Command = "Play"
	CommandPause     Command = "Pause"
	CommandPlayPause Command = "PlayPause"
)

// DispatchError reports a failed command dispatch to a single player.
type DispatchError struct {
	Command Command
	Player  string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("failed to send %s to %s: %v", e.Command, e.Player, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// dispatch sends a single command to a single player. It performs no
// retries; fallback across players belongs to the caller.
func (c *Controller) dispatch(ctx context.Context, cmd Command, player string) error {
	if err := c.bus.Call(ctx, player, PlayerPath, PlayerInterface+"."+string(cmd)); err != nil {
		return &DispatchError{Command: cmd, Player: player, Err: err}
	}
	return nil
}
