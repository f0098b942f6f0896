// Package dispatch maps named playback commands onto control channel
// operations, the bookmark store and the session manager. It is the public
// surface of the control core: every CLI subcommand funnels through Dispatch.
package dispatch

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/couch-cli/couch/bookmark"
	"github.com/couch-cli/couch/engine"
	"github.com/couch-cli/couch/timecode"
	"github.com/samber/lo"
)

// Outcome discriminates the three result shapes a command can produce.
type Outcome int

const (
	// OutcomeOk carries a human-readable message plus optional machine fields.
	OutcomeOk Outcome = iota
	// OutcomeFail carries a machine-distinguishable reason code and a message.
	OutcomeFail
	// OutcomeNeedsInput signals the caller must collect a named input and
	// dispatch again. The core never blocks on a prompt itself.
	OutcomeNeedsInput
)

// Reason is the machine-distinguishable failure code of a Result.
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonNoActiveSession     Reason = "no_active_session"
	ReasonEngineUnreachable   Reason = "engine_unreachable"
	ReasonPropertyUnavailable Reason = "property_unavailable"
	ReasonInvalidTimeFormat   Reason = "invalid_time_format"
	ReasonInvalidArgument     Reason = "invalid_argument"
	ReasonBookmarkNotFound    Reason = "bookmark_not_found"
	ReasonMediaNotFound       Reason = "media_not_found"
	ReasonUnknownCommand      Reason = "unknown_command"
	ReasonInternal            Reason = "internal_error"
)

// Result is the transient value every dispatched command returns. Never persisted.
type Result struct {
	Outcome Outcome        `json:"-"`
	Reason  Reason         `json:"reason,omitempty"`
	Message string         `json:"message"`
	Fields  map[string]any `json:"fields,omitempty"`

	// Missing names the input the caller must collect when Outcome is
	// OutcomeNeedsInput.
	Missing string `json:"-"`
}

// With returns a copy of the result with one machine field attached.
func (r Result) With(key string, value any) Result {
	fields := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		fields[k] = v
	}
	fields[key] = value
	r.Fields = fields
	return r
}

// WithReport attaches every field of a JSON-taggable report struct.
func (r Result) WithReport(report any) Result {
	var fields map[string]any
	lo.Must0(json.Unmarshal(lo.Must(json.Marshal(report)), &fields))
	r.Fields = fields
	return r
}

// Ok builds a success result.
func Ok(format string, args ...any) Result {
	return Result{Outcome: OutcomeOk, Message: fmt.Sprintf(format, args...)}
}

// Fail builds a failure result with its reason code.
func Fail(reason Reason, format string, args ...any) Result {
	return Result{Outcome: OutcomeFail, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// NeedsInput builds a result asking the caller to collect a named input.
func NeedsInput(field, message string) Result {
	return Result{Outcome: OutcomeNeedsInput, Missing: field, Message: message}
}

// failFrom maps a core error onto its reason code. Every failure stays local
// to the invocation; nothing here panics or retries.
func failFrom(err error) Result {
	switch {
	case errors.Is(err, engine.ErrEngineUnreachable):
		return Fail(ReasonEngineUnreachable, "playback engine is not reachable")
	case errors.Is(err, engine.ErrPropertyUnavailable):
		return Fail(ReasonPropertyUnavailable, "%s", err)
	case errors.Is(err, engine.ErrMediaNotFound):
		return Fail(ReasonMediaNotFound, "%s", err)
	case errors.Is(err, timecode.ErrInvalidTimeFormat):
		return Fail(ReasonInvalidTimeFormat, "%s", err)
	case errors.Is(err, bookmark.ErrNotFound):
		return Fail(ReasonBookmarkNotFound, "%s", err)
	case errors.Is(err, bookmark.ErrInvalidArgument):
		return Fail(ReasonInvalidArgument, "%s", err)
	default:
		return Fail(ReasonInternal, "%s", err)
	}
}
