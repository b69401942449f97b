package config

const configTemplate = `# hush configuration file

# Players never touched by hush, named without the
# org.mpris.MediaPlayer2. prefix. playerctld is a proxy that mirrors
# other players and would otherwise be paused alongside the real one.
players:
  ignore:
    - playerctld

# Explicit session bus address (optional). When unset, hush uses
# DBUS_SESSION_BUS_ADDRESS from the environment.
#bus:
#  address: unix:path=/run/user/1000/bus

# Observability settings
log_level: info  # debug, info, warn, error
`
