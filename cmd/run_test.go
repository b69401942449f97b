package cmd

import (
	"bytes"
	"slices"
	"testing"
)

func TestRunCmd_PausesAndResumesAroundChild(t *testing.T) {
	bus := &MockBus{
		Names: []string{"org.mpris.MediaPlayer2.spotify"},
		Statuses: map[string]interface{}{
			"org.mpris.MediaPlayer2.spotify": "Playing",
		},
	}
	withMockBus(t, bus)

	cmd := newRunCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"sh", "-c", "exit 0"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Command failed: %v", err)
	}

	want := []string{
		"org.mpris.MediaPlayer2.spotify org.mpris.MediaPlayer2.Player.Pause",
		"org.mpris.MediaPlayer2.spotify org.mpris.MediaPlayer2.Player.Play",
	}
	if !slices.Equal(bus.Calls, want) {
		t.Errorf("calls: got %v, want %v", bus.Calls, want)
	}
}

func TestRunCmd_ResumesWhenChildFails(t *testing.T) {
	bus := &MockBus{
		Names: []string{"org.mpris.MediaPlayer2.spotify"},
		Statuses: map[string]interface{}{
			"org.mpris.MediaPlayer2.spotify": "Playing",
		},
	}
	withMockBus(t, bus)

	cmd := newRunCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"sh", "-c", "exit 3"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error from failing child, got nil")
	}

	// The failing child must not leave media paused.
	want := []string{
		"org.mpris.MediaPlayer2.spotify org.mpris.MediaPlayer2.Player.Pause",
		"org.mpris.MediaPlayer2.spotify org.mpris.MediaPlayer2.Player.Play",
	}
	if !slices.Equal(bus.Calls, want) {
		t.Errorf("calls: got %v, want %v", bus.Calls, want)
	}
}

func TestRunCmd_RequiresCommand(t *testing.T) {
	cmd := newRunCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err == nil {
		t.Error("expected error when no command given, got nil")
	}
}
