package mpris

import (
	"context"
	"fmt"
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestStatusFromValue(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  PlaybackStatus
	}{
		{"bare string playing", "Playing", StatusPlaying},
		{"bare string paused", "Paused", StatusPaused},
		{"bare string stopped", "Stopped", StatusStopped},
		{"variant-wrapped string", dbus.MakeVariant("Playing"), StatusPlaying},
		{"variant-wrapped paused", dbus.MakeVariant("Paused"), StatusPaused},
		{"variant with non-string inner", dbus.MakeVariant(int32(1)), StatusUnknown},
		{"unexpected type", int64(7), StatusUnknown},
		{"nil value", nil, StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFromValue(tt.value); got != tt.want {
				t.Errorf("statusFromValue(%v): got %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestPlayerStatus_ReadFailureFoldsToUnknown(t *testing.T) {
	bus := &MockBus{
		StatusErr: map[string]error{
			playerA: fmt.Errorf("mock: timeout"),
		},
	}
	c := New(bus, nil)

	if got := c.PlayerStatus(context.Background(), playerA); got != StatusUnknown {
		t.Errorf("got %q, want %q", got, StatusUnknown)
	}
}

func TestPlayerStatus_CaseSensitiveMatch(t *testing.T) {
	bus := &MockBus{
		Statuses: map[string]interface{}{playerA: "playing"},
	}
	c := New(bus, nil)

	// "playing" is not the MPRIS literal "Playing" and must not count
	// as playing.
	if got := c.PlayerStatus(context.Background(), playerA); got == StatusPlaying {
		t.Error("lowercase status wrongly classified as playing")
	}
}
