package dispatch

import (
	"strings"

	"github.com/couch-cli/couch/bookmark"
	"github.com/couch-cli/couch/timecode"
	"github.com/couch-cli/couch/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// mark saves the current position under a name. Without a name it hands
// control back to the caller instead of blocking on a prompt.
func (d *Dispatcher) mark(args []string) Result {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return NeedsInput("name", "a bookmark name is required")
	}
	name := args[0]

	path, err := d.session.Client().GetString("path")
	if err != nil {
		return failFrom(err)
	}

	position, err := d.session.Client().GetFloat("time-pos")
	if err != nil {
		return failFrom(err)
	}

	record := bookmark.Bookmark{
		MediaPath:     path,
		Name:          name,
		OffsetSeconds: int(position),
	}
	if err := d.store.Add(record); err != nil {
		return failFrom(err)
	}

	return Ok("marked %q at %s", name, timecode.Format(record.OffsetSeconds)).
		With("name", name).
		With("media_path", path).
		With("offset_seconds", record.OffsetSeconds)
}

// goTo seeks to a saved bookmark. A lookup miss never touches playback position.
func (d *Dispatcher) goTo(args []string) Result {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return Fail(ReasonInvalidArgument, "a bookmark name is required")
	}
	name := args[0]

	path, err := d.session.Client().GetString("path")
	if err != nil {
		return failFrom(err)
	}

	record, err := d.store.Find(path, name)
	if err != nil {
		return failFrom(err)
	}

	if err := d.session.Client().Command("seek", record.OffsetSeconds, "absolute"); err != nil {
		return failFrom(err)
	}

	return Ok("at %q (%s)", name, timecode.Format(record.OffsetSeconds)).
		With("name", name).
		With("offset_seconds", record.OffsetSeconds)
}

// MarksReport is the machine-readable shape of the marks command.
type MarksReport struct {
	MediaPath string              `json:"media_path" jsonschema:"description=Absolute path of the currently playing file."`
	Bookmarks []bookmark.Bookmark `json:"bookmarks" jsonschema:"description=Every stored bookmark for the file, in insertion order."`
}

// marks lists every bookmark of the current file. An empty list is a normal
// result, not a failure.
func (d *Dispatcher) marks(_ []string) Result {
	path, err := d.session.Client().GetString("path")
	if err != nil {
		return failFrom(err)
	}

	records, err := d.store.List(path)
	if err != nil {
		return failFrom(err)
	}

	report := MarksReport{MediaPath: path, Bookmarks: records}
	if len(records) == 0 {
		return Ok("no bookmarks for %s", path).WithReport(report)
	}

	lines := lo.Map(records, func(record bookmark.Bookmark, _ int) string {
		return timecode.Format(record.OffsetSeconds) + "  " + record.Name
	})
	return Ok("%s", strings.Join(lines, "\n")).WithReport(report)
}

// unmark deletes bookmarks of the current file: one name, or all of them
// when no name is given.
func (d *Dispatcher) unmark(args []string) Result {
	path, err := d.session.Client().GetString("path")
	if err != nil {
		return failFrom(err)
	}

	name := mo.None[string]()
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		name = mo.Some(args[0])
	}

	removed, err := d.store.Delete(path, name)
	if err != nil {
		return failFrom(err)
	}

	return Ok("removed %s", util.Quantify(removed, "bookmark", "bookmarks")).
		With("removed", removed)
}
