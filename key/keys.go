// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Media Library - these keys locate and filter the locally mounted media collection.
const (
	LibraryRoot       = "library.root"
	LibraryExtensions = "library.extensions"
)

// Playback Engine - these keys configure the external mpv process and its control channel.
const (
	PlayerPath     = "player.path"
	PlayerArgs     = "player.args"
	PlayerSocket   = "player.socket"
	PlayerSeekStep = "player.seek_step"
)

// Display Power Signaling - commands fired best-effort around session start/stop.
const (
	DisplayPowerOn  = "display.power_on"
	DisplayPowerOff = "display.power_off"
)

// Recently Played Registry - these keys configure resume/recent tracking.
const (
	RecentSaveOnPlay = "recent.save_on_play"
	RecentSize       = "recent.size"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
