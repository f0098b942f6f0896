// Package engine talks to the external playback process over its local
// JSON-IPC control channel and owns the lifecycle of the single session.
package engine

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

// Errors surfaced by the control channel.
var (
	// ErrEngineUnreachable means the control endpoint does not exist or refused
	// the connection. Callers must treat it as "no session", not a protocol error.
	ErrEngineUnreachable = errors.New("engine unreachable")

	// ErrPropertyUnavailable means the engine is alive but the requested
	// property carries no value in the current state.
	ErrPropertyUnavailable = errors.New("property unavailable")
)

// ipcRequest is the JSON envelope sent to the engine's control socket.
type ipcRequest struct {
	Command []any `json:"command"`
}

// ipcReply is the JSON envelope received from the control socket.
// An acknowledgement-only reply has Error "success" and a null Data field;
// the distinction is made on the decoded envelope, never on raw text.
type ipcReply struct {
	Data      any    `json:"data"`
	RequestID int    `json:"request_id"`
	Error     string `json:"error"`
	Event     string `json:"event"`
}

const (
	replyTimeout = 2 * time.Second
	replySuccess = "success"

	// The engine reports a not-ready property with this exact error string.
	replyPropertyUnavailable = "property unavailable"
)

// Client issues request/response exchanges against the engine's control socket.
// Each round trip owns its own connection, so concurrent invocations can never
// interleave one request's write with another's read.
type Client struct {
	socket string
	mu     sync.Mutex
}

// NewClient creates a client bound to the given control socket path.
func NewClient(socket string) *Client {
	return &Client{socket: socket}
}

// Socket returns the control channel endpoint address.
func (c *Client) Socket() string {
	return c.socket
}

// Alive reports whether the control endpoint currently accepts connections.
// Endpoint connectability is the sole liveness signal the engine exposes.
func (c *Client) Alive() bool {
	conn, err := net.DialTimeout("unix", c.socket, replyTimeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

// Request performs one command round trip and returns the reply's data payload.
//
// The exchange is open-send-receive-close with a bounded deadline. Timeouts and
// dial failures surface as ErrEngineUnreachable; they are never retried here,
// since re-firing a non-idempotent action (a relative seek, a cycle) would
// double-apply it.
func (c *Client) Request(command ...any) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	conn, err := net.DialTimeout("unix", c.socket, replyTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEngineUnreachable, c.socket)
	}
	defer conn.Close()

	payload, err := json.Marshal(ipcRequest{Command: command})
	if err != nil {
		return nil, fmt.Errorf("marshal command: %w", err)
	}

	if err := conn.SetDeadline(time.Now().Add(replyTimeout)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	// The engine requires newline-delimited JSON.
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("%w: write failed", ErrEngineUnreachable)
	}

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("%w: no reply within %s", ErrEngineUnreachable, replyTimeout)
		}

		var reply ipcReply
		if err := json.Unmarshal(line, &reply); err != nil {
			return nil, fmt.Errorf("unmarshal reply: %w", err)
		}

		// Asynchronous event notifications share the channel with replies;
		// only envelopes without an event tag answer our request.
		if reply.Event != "" {
			continue
		}

		switch reply.Error {
		case replySuccess:
			return reply.Data, nil
		case replyPropertyUnavailable:
			return nil, fmt.Errorf("%w", ErrPropertyUnavailable)
		default:
			return nil, fmt.Errorf("engine error: %s", reply.Error)
		}
	}
}

// GetProperty retrieves a property value, failing with ErrPropertyUnavailable
// when the reply carries no data field.
func (c *Client) GetProperty(name string) (any, error) {
	data, err := c.Request("get_property", name)
	if err != nil {
		return nil, err
	}
	// An acknowledgement-shaped reply to a property read means the property
	// holds no value right now (e.g. duration before a file is loaded).
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrPropertyUnavailable, name)
	}
	return data, nil
}

// SetProperty assigns a property value, discarding the acknowledgement-only reply.
func (c *Client) SetProperty(name string, value any) error {
	_, err := c.Request("set_property", name, value)
	return err
}

// Command fires an engine action, discarding the acknowledgement-only reply.
func (c *Client) Command(name string, args ...any) error {
	_, err := c.Request(append([]any{name}, args...)...)
	return err
}

// GetFloat retrieves a numeric property.
func (c *Client) GetFloat(name string) (float64, error) {
	data, err := c.GetProperty(name)
	if err != nil {
		return 0, err
	}
	value, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected number, got %T", name, data)
	}
	return value, nil
}

// GetString retrieves a string property.
func (c *Client) GetString(name string) (string, error) {
	data, err := c.GetProperty(name)
	if err != nil {
		return "", err
	}
	value, ok := data.(string)
	if !ok {
		return "", fmt.Errorf("property %s: expected string, got %T", name, data)
	}
	return value, nil
}

// GetBool retrieves a boolean property.
func (c *Client) GetBool(name string) (bool, error) {
	data, err := c.GetProperty(name)
	if err != nil {
		return false, err
	}
	value, ok := data.(bool)
	if !ok {
		return false, fmt.Errorf("property %s: expected bool, got %T", name, data)
	}
	return value, nil
}
