// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/couch-cli/couch/constant"
	"github.com/couch-cli/couch/filesystem"
	"github.com/couch-cli/couch/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "COUCH_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It prioritizes the XDG_CONFIG_HOME specification on Linux and equivalent user profile paths on Darwin and Windows.
// Direct override: The path resolution can be explicitly specified via the COUCH_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Couch))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Couch))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Bookmarks resolves the absolute path to the persistent bookmark record file.
func Bookmarks() string {
	return filepath.Join(Config(), "bookmarks")
}

// Recent resolves the absolute path to the recently-played registry.
func Recent() string {
	return filepath.Join(Cache(), "recent.json")
}

// Socket resolves the well-known control channel endpoint of the playback engine.
// The fixed address is what lets independent command invocations find the same
// engine instance; it can be overridden via the player.socket configuration key.
func Socket() string {
	if custom := viper.GetString(key.PlayerSocket); custom != "" {
		return custom
	}
	return filepath.Join(os.TempDir(), constant.Couch+".sock")
}

// Pid resolves the absolute path to the engine pidfile written at session start.
func Pid() string {
	return filepath.Join(os.TempDir(), constant.Couch+".pid")
}
