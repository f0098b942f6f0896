package dispatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/couch-cli/couch/key"
	"github.com/couch-cli/couch/log"
	"github.com/couch-cli/couch/recent"
	"github.com/couch-cli/couch/timecode"
	"github.com/spf13/viper"
)

// play launches the engine on an already-resolved media path. Query
// resolution against the library belongs to the caller.
func (d *Dispatcher) play(args []string) Result {
	if len(args) == 0 || args[0] == "" {
		return Fail(ReasonInvalidArgument, "a media path is required")
	}

	if err := d.session.Start(args[0]); err != nil {
		return failFrom(err)
	}

	if err := recent.Touch(args[0], 0); err != nil {
		log.Warnf("record recent play: %v", err)
	}

	return Ok("playing %s", args[0]).With("path", args[0])
}

// stop ends the session. Idempotent: succeeds with no live engine too.
func (d *Dispatcher) stop(_ []string) Result {
	// Best effort: remember where playback stood so play can resume later.
	if d.session.IsLive() {
		if path, err := d.session.Client().GetString("path"); err == nil {
			if pos, err := d.session.Client().GetFloat("time-pos"); err == nil {
				if err := recent.Touch(path, int(pos)); err != nil {
					log.Warnf("record resume position: %v", err)
				}
			}
		}
	}

	if err := d.session.Stop(); err != nil {
		return failFrom(err)
	}
	return Ok("stopped")
}

func (d *Dispatcher) pause(_ []string) Result {
	if err := d.session.Client().SetProperty("pause", true); err != nil {
		return failFrom(err)
	}
	return Ok("paused")
}

func (d *Dispatcher) resume(_ []string) Result {
	if err := d.session.Client().SetProperty("pause", false); err != nil {
		return failFrom(err)
	}
	return Ok("resumed")
}

// timing queries position/duration without an argument, seeks absolutely with one.
func (d *Dispatcher) timing(args []string) Result {
	if len(args) == 0 {
		position, err := d.session.Client().GetFloat("time-pos")
		if err != nil {
			return failFrom(err)
		}

		message := timecode.Format(int(position))
		result := Ok("%s", message).With("position_seconds", int(position))

		if duration, err := d.session.Client().GetFloat("duration"); err == nil {
			result = Ok("%s / %s", message, timecode.Format(int(duration))).
				With("position_seconds", int(position)).
				With("duration_seconds", int(duration))
		}
		return result
	}

	seconds, err := timecode.Parse(args[0])
	if err != nil {
		return failFrom(err)
	}

	if err := d.session.Client().Command("seek", seconds, "absolute"); err != nil {
		return failFrom(err)
	}
	return Ok("seeked to %s", timecode.Format(seconds)).With("position_seconds", seconds)
}

func (d *Dispatcher) rewind(args []string) Result {
	return d.relativeSeek(args, -1, "rewound")
}

func (d *Dispatcher) jump(args []string) Result {
	return d.relativeSeek(args, 1, "jumped")
}

// relativeSeek applies a signed relative seek of the optional argument,
// falling back to the configured default step.
func (d *Dispatcher) relativeSeek(args []string, direction int, verb string) Result {
	step := viper.GetInt(key.PlayerSeekStep)
	if step <= 0 {
		step = 10
	}

	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			return Fail(ReasonInvalidArgument, "seek amount must be a positive integer, got %q", args[0])
		}
		step = parsed
	}

	if err := d.session.Client().Command("seek", direction*step, "relative"); err != nil {
		return failFrom(err)
	}
	return Ok("%s %d seconds", verb, step).With("offset_seconds", direction*step)
}

// volume queries with no argument, adjusts relatively with a signed one and
// sets absolutely with an unsigned one. The three operations are told apart
// by argument shape alone.
func (d *Dispatcher) volume(args []string) Result {
	client := d.session.Client()

	if len(args) == 0 {
		value, err := client.GetFloat("volume")
		if err != nil {
			return failFrom(err)
		}
		return Ok("volume %d%%", int(value)).With("volume", int(value))
	}

	arg := args[0]
	signed := strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-")

	delta, err := strconv.Atoi(arg)
	if err != nil {
		return Fail(ReasonInvalidArgument, "volume takes an integer, optionally signed, got %q", arg)
	}

	if signed {
		if err := client.Command("add", "volume", delta); err != nil {
			return failFrom(err)
		}
	} else {
		if delta < 0 {
			return Fail(ReasonInvalidArgument, "absolute volume cannot be negative")
		}
		if err := client.SetProperty("volume", delta); err != nil {
			return failFrom(err)
		}
	}

	// Report what the engine settled on, not what we asked for.
	if value, err := client.GetFloat("volume"); err == nil {
		return Ok("volume %d%%", int(value)).With("volume", int(value))
	}
	return Ok("volume adjusted")
}

// subs multiplexes three operations on argument shape: absent cycles the
// subtitle track, "on"/"off" toggles visibility, a number selects a track id.
func (d *Dispatcher) subs(args []string) Result {
	client := d.session.Client()

	if len(args) == 0 {
		if err := client.Command("cycle", "sub"); err != nil {
			return failFrom(err)
		}
		return Ok("subtitle track %s", d.trackLabel("sid")).With("subtitle_track", d.trackLabel("sid"))
	}

	switch args[0] {
	case "on", "off":
		visible := args[0] == "on"
		if err := client.SetProperty("sub-visibility", visible); err != nil {
			return failFrom(err)
		}
		return Ok("subtitles %s", args[0]).With("subtitles_visible", visible)
	default:
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return Fail(ReasonInvalidArgument, "subs takes a track id, \"on\" or \"off\", got %q", args[0])
		}
		if err := client.SetProperty("sid", id); err != nil {
			return failFrom(err)
		}
		return Ok("subtitle track %d", id).With("subtitle_track", strconv.Itoa(id))
	}
}

// audio cycles the audio track without an argument, selects an id with one.
func (d *Dispatcher) audio(args []string) Result {
	client := d.session.Client()

	if len(args) == 0 {
		if err := client.Command("cycle", "audio"); err != nil {
			return failFrom(err)
		}
		return Ok("audio track %s", d.trackLabel("aid")).With("audio_track", d.trackLabel("aid"))
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return Fail(ReasonInvalidArgument, "audio takes a numeric track id, got %q", args[0])
	}
	if err := client.SetProperty("aid", id); err != nil {
		return failFrom(err)
	}
	return Ok("audio track %d", id).With("audio_track", strconv.Itoa(id))
}

// loop toggles file-looping and reports the resulting state.
func (d *Dispatcher) loop(_ []string) Result {
	client := d.session.Client()

	if err := client.Command("cycle", "loop-file"); err != nil {
		return failFrom(err)
	}

	looping := false
	if data, err := client.GetProperty("loop-file"); err == nil {
		// The engine reports "inf" when looping and false when not.
		if value, ok := data.(bool); !ok || value {
			looping = true
		}
	}

	if looping {
		return Ok("looping enabled").With("looping", true)
	}
	return Ok("looping disabled").With("looping", false)
}

// trackLabel renders a track id property: a number, or "none" when the
// engine reports no active track.
func (d *Dispatcher) trackLabel(property string) string {
	data, err := d.session.Client().GetProperty(property)
	if err != nil {
		return "unavailable"
	}

	switch value := data.(type) {
	case float64:
		return strconv.Itoa(int(value))
	case bool:
		if !value {
			return "none"
		}
		return "on"
	case string:
		return value
	default:
		return fmt.Sprintf("%v", value)
	}
}
