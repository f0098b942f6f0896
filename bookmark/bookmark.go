// Package bookmark implements the persistent per-file bookmark store.
//
// Records live in a flat file, one per line, tab-separated:
//
//	/full/media/path<TAB>name<TAB>offset_seconds
//
// The file is append-only on writes; deletes rewrite it through a temporary
// file and an atomic rename. Duplicate (path, name) keys are legal and the
// most recently appended record wins on lookup.
package bookmark

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Errors surfaced by the store.
var (
	ErrNotFound        = errors.New("bookmark not found")
	ErrInvalidArgument = errors.New("invalid bookmark argument")
)

// delimiter separates record fields. A path or name containing it is rejected
// on write rather than escaped, so the on-disk layout stays a plain line format.
const delimiter = "\t"

// Bookmark is a named, persisted time offset scoped to one full media path.
type Bookmark struct {
	MediaPath     string `json:"media_path" jsonschema:"description=Absolute resolved path of the media file the bookmark belongs to."`
	Name          string `json:"name" jsonschema:"description=User-chosen bookmark name."`
	OffsetSeconds int    `json:"offset_seconds" jsonschema:"description=Playback offset in whole seconds."`
}

// validate rejects field values that cannot be represented in the record format.
func (b Bookmark) validate() error {
	if b.MediaPath == "" {
		return fmt.Errorf("%w: empty media path", ErrInvalidArgument)
	}
	if b.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidArgument)
	}
	if b.OffsetSeconds < 0 {
		return fmt.Errorf("%w: negative offset", ErrInvalidArgument)
	}
	for _, field := range []string{b.MediaPath, b.Name} {
		if strings.ContainsAny(field, delimiter+"\n\r") {
			return fmt.Errorf("%w: %q contains a record delimiter", ErrInvalidArgument, field)
		}
	}
	return nil
}

// encode renders the bookmark as one record line, including the trailing newline.
func (b Bookmark) encode() string {
	return b.MediaPath + delimiter + b.Name + delimiter + strconv.Itoa(b.OffsetSeconds) + "\n"
}

// decodeRecord parses one record line. Malformed lines yield an error and are
// skipped by readers instead of corrupting the whole store.
func decodeRecord(line string) (Bookmark, error) {
	fields := strings.Split(line, delimiter)
	if len(fields) != 3 {
		return Bookmark{}, fmt.Errorf("%w: malformed record %q", ErrInvalidArgument, line)
	}

	offset, err := strconv.Atoi(fields[2])
	if err != nil || offset < 0 {
		return Bookmark{}, fmt.Errorf("%w: bad offset in record %q", ErrInvalidArgument, line)
	}

	return Bookmark{MediaPath: fields[0], Name: fields[1], OffsetSeconds: offset}, nil
}
