//go:build !windows

package engine

import (
	"bufio"
	"encoding/json"
	"errors"
	"net"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeEngine answers control channel requests the way mpv's JSON-IPC does,
// optionally emitting asynchronous event lines before the real reply.
type fakeEngine struct {
	listener net.Listener
	handle   func(command []any) (data any, errStr string)
	events   []string
}

func newFakeEngine(t *testing.T, handle func(command []any) (any, string)) *fakeEngine {
	t.Helper()

	socket := filepath.Join(t.TempDir(), "engine.sock")
	listener, err := net.Listen("unix", socket)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	e := &fakeEngine{listener: listener, handle: handle}
	go e.serve()
	t.Cleanup(func() { _ = listener.Close() })
	return e
}

func (e *fakeEngine) socket() string {
	return e.listener.Addr().String()
}

func (e *fakeEngine) serve() {
	for {
		conn, err := e.listener.Accept()
		if err != nil {
			return
		}

		go func(conn net.Conn) {
			defer conn.Close()

			reader := bufio.NewReader(conn)
			line, err := reader.ReadBytes('\n')
			if err != nil {
				return
			}

			var req struct {
				Command []any `json:"command"`
			}
			if err := json.Unmarshal(line, &req); err != nil {
				return
			}

			for _, event := range e.events {
				_, _ = conn.Write(append([]byte(event), '\n'))
			}

			data, errStr := e.handle(req.Command)
			reply, _ := json.Marshal(map[string]any{
				"data":       data,
				"request_id": 0,
				"error":      errStr,
			})
			_, _ = conn.Write(append(reply, '\n'))
		}(conn)
	}
}

func TestClientUnreachable(t *testing.T) {
	Convey("A dead endpoint surfaces ErrEngineUnreachable", t, func() {
		client := NewClient(filepath.Join(t.TempDir(), "nobody-home.sock"))

		So(client.Alive(), ShouldBeFalse)

		_, err := client.Request("get_property", "pause")
		So(errors.Is(err, ErrEngineUnreachable), ShouldBeTrue)
	})
}

func TestClientGetProperty(t *testing.T) {
	Convey("Given a live fake engine", t, func() {
		props := map[string]any{
			"path":     "/media/show.mkv",
			"time-pos": 42.7,
			"pause":    false,
		}
		e := newFakeEngine(t, func(command []any) (any, string) {
			if command[0] == "get_property" {
				if value, ok := props[command[1].(string)]; ok {
					return value, "success"
				}
				return nil, "property unavailable"
			}
			return nil, "success"
		})
		client := NewClient(e.socket())

		Convey("Alive reports connectability", func() {
			So(client.Alive(), ShouldBeTrue)
		})

		Convey("String, float and bool properties decode", func() {
			path, err := client.GetString("path")
			So(err, ShouldBeNil)
			So(path, ShouldEqual, "/media/show.mkv")

			pos, err := client.GetFloat("time-pos")
			So(err, ShouldBeNil)
			So(pos, ShouldAlmostEqual, 42.7)

			paused, err := client.GetBool("pause")
			So(err, ShouldBeNil)
			So(paused, ShouldBeFalse)
		})

		Convey("A property with no value surfaces ErrPropertyUnavailable", func() {
			_, err := client.GetProperty("duration")
			So(errors.Is(err, ErrPropertyUnavailable), ShouldBeTrue)
		})
	})
}

func TestClientReplyFiltering(t *testing.T) {
	Convey("Acknowledgements and events are told apart by envelope shape", t, func() {
		e := newFakeEngine(t, func(command []any) (any, string) {
			switch command[0] {
			case "get_property":
				// A property whose value renders like a bare success marker.
				return "success", "success"
			default:
				return nil, "success"
			}
		})
		e.events = []string{`{"event":"property-change","name":"time-pos","data":1.0}`}
		client := NewClient(e.socket())

		Convey("A data payload spelling \"success\" is still data", func() {
			value, err := client.GetString("weird")
			So(err, ShouldBeNil)
			So(value, ShouldEqual, "success")
		})

		Convey("Event lines preceding the reply are skipped", func() {
			err := client.SetProperty("pause", true)
			So(err, ShouldBeNil)
		})

		Convey("Actions discard the acknowledgement-only reply", func() {
			So(client.Command("seek", 30, "absolute"), ShouldBeNil)
		})
	})
}

func TestClientEngineError(t *testing.T) {
	Convey("A non-success, non-unavailable error string is a protocol error", t, func() {
		e := newFakeEngine(t, func(command []any) (any, string) {
			return nil, "invalid parameter"
		})
		client := NewClient(e.socket())

		_, err := client.Request("seek", "bogus")
		So(err, ShouldNotBeNil)
		So(errors.Is(err, ErrEngineUnreachable), ShouldBeFalse)
		So(errors.Is(err, ErrPropertyUnavailable), ShouldBeFalse)
	})
}
