package dispatch

import (
	"fmt"
	"strings"

	"github.com/couch-cli/couch/style"
	"github.com/couch-cli/couch/timecode"
)

// unavailableMarker is rendered for a sub-query the engine cannot answer yet.
const unavailableMarker = "unavailable"

// StatusReport is the machine-readable shape of the status command. Null
// fields mean the engine could not answer that sub-query.
type StatusReport struct {
	Filename      *string `json:"filename" jsonschema:"description=Base name of the currently playing file."`
	Paused        *bool   `json:"paused" jsonschema:"description=Whether playback is suspended."`
	Position      *int    `json:"position_seconds" jsonschema:"description=Current playback position in whole seconds."`
	Duration      *int    `json:"duration_seconds" jsonschema:"description=Total media duration in whole seconds."`
	AudioTrack    *string `json:"audio_track" jsonschema:"description=Active audio track id, or none."`
	SubtitleTrack *string `json:"subtitle_track" jsonschema:"description=Active subtitle track id, or none."`
}

// status aggregates independent sub-queries into one composite result.
// A missing property renders as an explicit marker instead of aborting
// the rest of the report.
func (d *Dispatcher) status(_ []string) Result {
	client := d.session.Client()
	var report StatusReport

	filename := unavailableMarker
	if value, err := client.GetString("filename"); err == nil {
		filename = value
		report.Filename = &value
	}

	paused := unavailableMarker
	if value, err := client.GetBool("pause"); err == nil {
		report.Paused = &value
		if value {
			paused = "yes"
		} else {
			paused = "no"
		}
	}

	position := unavailableMarker
	if value, err := client.GetFloat("time-pos"); err == nil {
		seconds := int(value)
		report.Position = &seconds
		position = timecode.Format(seconds)
	}

	duration := unavailableMarker
	if value, err := client.GetFloat("duration"); err == nil {
		seconds := int(value)
		report.Duration = &seconds
		duration = timecode.Format(seconds)
	}

	audio := d.trackLabel("aid")
	if audio != unavailableMarker {
		report.AudioTrack = &audio
	}

	subtitle := d.trackLabel("sid")
	if subtitle != unavailableMarker {
		report.SubtitleTrack = &subtitle
	}

	rows := []struct {
		label string
		value string
	}{
		{"File", filename},
		{"Paused", paused},
		{"Position", position},
		{"Duration", duration},
		{"Audio", audio},
		{"Subtitles", subtitle},
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s %s", style.Faint(fmt.Sprintf("%-10s", row.label)), row.value))
	}

	return Ok("%s", b.String()).WithReport(report)
}
