// Package mpris pauses and resumes desktop media players over the
// session D-Bus using the MPRIS remote-control interface. It implements
// only the subset needed for play/pause/toggle: player discovery,
// playback-status probing, and command dispatch with a tracked set of
// players paused by this process.
package mpris

const (
	// PlayerPrefix is the well-known name prefix every MPRIS player
	// registers on the session bus.
	PlayerPrefix = "org.mpris.MediaPlayer2."

	// PlayerPath is the fixed object path, identical for every player.
	PlayerPath = "/org/mpris/MediaPlayer2"

	// PlayerInterface exposes the playback controls and the
	// PlaybackStatus property.
	PlayerInterface = "org.mpris.MediaPlayer2.Player"

	busName         = "org.freedesktop.DBus"
	busPath         = "/org/freedesktop/DBus"
	listNamesMethod = "org.freedesktop.DBus.ListNames"
	propertiesGet   = "org.freedesktop.DBus.Properties.Get"

	playbackStatusProperty = "PlaybackStatus"
)
