// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"strings"
	"text/template"

	"github.com/couch-cli/couch/color"
	"github.com/couch-cli/couch/constant"
	"github.com/couch-cli/couch/key"
	"github.com/couch-cli/couch/style"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Couch + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.LibraryRoot, "", "Root directory of the media library.\nUsed by \"play\", \"random\" and \"list\" to resolve queries into files")
	register(key.LibraryExtensions, []string{".mkv", ".mp4", ".avi", ".webm", ".m4v", ".mov"}, "File extensions considered playable when scanning the library")
	register(key.PlayerPath, "mpv", "Playback engine executable")
	register(key.PlayerArgs, []string{}, "Extra arguments passed to the engine at launch.\nThe control socket and media path are always appended by couch itself")
	register(key.PlayerSocket, "", "Override for the control channel socket path.\nLeave empty to use the well-known per-user default")
	register(key.PlayerSeekStep, 10, "Default amount of seconds for \"rewind\" and \"jump\" when no argument is given")
	register(key.DisplayPowerOn, []string{}, "Command executed best-effort before playback starts (e.g. CEC or DPMS power on).\nEmpty disables the signal")
	register(key.DisplayPowerOff, []string{}, "Command executed best-effort after playback stops.\nEmpty disables the signal")
	register(key.RecentSaveOnPlay, true, "Record played files in the recently-played registry")
	register(key.RecentSize, 50, "Maximum number of entries kept in the recently-played registry")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"value":  func(k string) any { return viper.Get(k) },
	"wrap":   func(s string) string { return wordwrap.String(s, 80) },
}).Parse(`{{ purple .Key }} {{ faint "=" }} {{ bold (printf "%v" (value .Key)) }}
{{ faint (wrap .Description) }}
{{ faint "default:" }} {{ blue (printf "%v" .Value) }} {{ faint "env:" }} {{ blue .Env }}`))
