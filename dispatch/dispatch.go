package dispatch

import (
	"sort"

	"github.com/couch-cli/couch/bookmark"
	"github.com/couch-cli/couch/engine"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// handler binds a command name to its implementation. Session-dependent
// commands are gated before any channel I/O happens.
type handler struct {
	run          func(d *Dispatcher, args []string) Result
	needsSession bool
}

var handlers = map[string]handler{
	"play":     {run: (*Dispatcher).play},
	"stop":     {run: (*Dispatcher).stop},
	"pause":    {run: (*Dispatcher).pause, needsSession: true},
	"continue": {run: (*Dispatcher).resume, needsSession: true},
	"timing":   {run: (*Dispatcher).timing, needsSession: true},
	"rewind":   {run: (*Dispatcher).rewind, needsSession: true},
	"jump":     {run: (*Dispatcher).jump, needsSession: true},
	"mark":     {run: (*Dispatcher).mark, needsSession: true},
	"goto":     {run: (*Dispatcher).goTo, needsSession: true},
	"marks":    {run: (*Dispatcher).marks, needsSession: true},
	"unmark":   {run: (*Dispatcher).unmark, needsSession: true},
	"subs":     {run: (*Dispatcher).subs, needsSession: true},
	"audio":    {run: (*Dispatcher).audio, needsSession: true},
	"volume":   {run: (*Dispatcher).volume, needsSession: true},
	"status":   {run: (*Dispatcher).status, needsSession: true},
	"loop":     {run: (*Dispatcher).loop, needsSession: true},
}

// Commands returns every dispatchable command name, sorted.
func Commands() []string {
	names := lo.Keys(handlers)
	sort.Strings(names)
	return names
}

// Dispatcher owns the explicit session handle and the bookmark store a
// command invocation works against.
type Dispatcher struct {
	session *engine.Session
	store   *bookmark.Store
}

// New creates a dispatcher over the given session handle and store.
func New(session *engine.Session, store *bookmark.Store) *Dispatcher {
	return &Dispatcher{session: session, store: store}
}

// NewDefault creates a dispatcher bound to the well-known endpoint and the
// localized bookmark file.
func NewDefault() *Dispatcher {
	return New(engine.NewSession(), bookmark.Default())
}

// Session exposes the underlying session handle.
func (d *Dispatcher) Session() *engine.Session {
	return d.session
}

// Store exposes the underlying bookmark store.
func (d *Dispatcher) Store() *bookmark.Store {
	return d.store
}

// Dispatch resolves a command name and runs it. Session-dependent commands
// fail with ReasonNoActiveSession while no engine is reachable, before any
// request is issued.
func (d *Dispatcher) Dispatch(name string, args []string) Result {
	h, ok := handlers[name]
	if !ok {
		closest := lo.MinBy(Commands(), func(a, b string) bool {
			return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
		})
		return Fail(ReasonUnknownCommand, "unknown command %q, did you mean %q?", name, closest)
	}

	if h.needsSession && !d.session.IsLive() {
		return Fail(ReasonNoActiveSession, "no active playback session")
	}

	return h.run(d, args)
}
