package engine

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/couch-cli/couch/display"
	"github.com/couch-cli/couch/filesystem"
	"github.com/couch-cli/couch/key"
	"github.com/couch-cli/couch/log"
	"github.com/couch-cli/couch/where"
	"github.com/spf13/viper"
)

// ErrMediaNotFound indicates the media path does not resolve to an existing
// regular file, detected before any launch is attempted.
var ErrMediaNotFound = errors.New("media not found")

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond

	// How long a stopping engine gets to exit gracefully before it is signaled.
	stopGracePeriod = 3 * time.Second
	stopPollDelay   = 100 * time.Millisecond
)

// Session is the explicit handle on the single playback engine instance.
// It exists as an object precisely so callers never reach for ambient global
// state; the "exactly one live engine" invariant is enforced by Start.
type Session struct {
	client *Client
}

// NewSession creates a session handle bound to the well-known control endpoint.
func NewSession() *Session {
	return &Session{client: NewClient(where.Socket())}
}

// Client exposes the session's control channel client.
func (s *Session) Client() *Client {
	return s.client
}

// IsLive reports whether an engine instance is currently reachable.
func (s *Session) IsLive() bool {
	return s.client.Alive()
}

// Start launches the playback engine on the given media file.
//
// Exclusivity: a live session is stopped first, so at most one engine instance
// ever owns the control endpoint. The fully resolved absolute path is handed to
// the engine, which echoes it back via the "path" property; bookmarks are keyed
// on that same string.
func (s *Session) Start(mediaPath string) error {
	resolved, err := resolveMedia(mediaPath)
	if err != nil {
		return err
	}

	if s.IsLive() {
		if err := s.Stop(); err != nil {
			return fmt.Errorf("stop previous session: %w", err)
		}
	}

	// Power signaling is a side effect, never a precondition.
	display.PowerOn()

	cmd := exec.Command(viper.GetString(key.PlayerPath), launchArgs(s.client.Socket(), resolved)...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start engine: %w", err)
	}

	writePidfile(cmd.Process.Pid)

	// Reap the process if it dies while we are still around.
	exited := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(exited)
	}()

	if err := s.waitForSocket(exited); err != nil {
		select {
		case <-exited:
		default:
			log.Warnf("killing engine: socket never became ready")
			_ = killProcess(cmd)
		}
		clearPidfile()
		return fmt.Errorf("engine socket not ready: %w", err)
	}

	log.Infof("session started: %s", resolved)
	return nil
}

// Stop terminates the engine: a graceful quit over the control channel first,
// then TERM and finally KILL against the recorded pid once the grace period
// elapses. It succeeds unconditionally when no session is live.
func (s *Session) Stop() error {
	if s.IsLive() {
		_, _ = s.client.Request("quit")

		deadline := time.Now().Add(stopGracePeriod)
		for s.IsLive() && time.Now().Before(deadline) {
			time.Sleep(stopPollDelay)
		}
	}

	if s.IsLive() {
		if pid, ok := readPidfile(); ok {
			log.Warnf("engine ignored quit, signaling pid %d", pid)
			terminatePid(pid, stopGracePeriod)
		}
	}

	clearPidfile()
	_ = os.Remove(s.client.Socket())

	display.PowerOff()
	return nil
}

// waitForSocket polls until the control endpoint accepts connections.
func (s *Session) waitForSocket(exited <-chan struct{}) error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-exited:
			return errors.New("engine exited before socket was ready")
		default:
		}

		if s.client.Alive() {
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", s.client.Socket(), socketWaitRetries)
}

// resolveMedia turns the user-supplied path into the absolute path used as the
// bookmark join key, verifying it names an existing regular file.
func resolveMedia(mediaPath string) (string, error) {
	resolved, err := filepath.Abs(mediaPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrMediaNotFound, mediaPath)
	}

	stat, err := filesystem.API().Stat(resolved)
	if err != nil || stat.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrMediaNotFound, resolved)
	}

	return resolved, nil
}

// launchArgs builds the engine argument vector: the fixed control socket, quiet
// flags, user-configured extras, then the media path.
func launchArgs(socket, mediaPath string) []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", socket),
		"--force-window=yes",
	}
	args = append(args, viper.GetStringSlice(key.PlayerArgs)...)
	return append(args, mediaPath)
}

// writePidfile records the engine pid so a later invocation can escalate stop.
func writePidfile(pid int) {
	if err := filesystem.API().WriteFile(where.Pid(), []byte(strconv.Itoa(pid)), 0644); err != nil {
		log.Warnf("write pidfile: %v", err)
	}
}

func readPidfile() (int, bool) {
	data, err := filesystem.API().ReadFile(where.Pid())
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

func clearPidfile() {
	_ = filesystem.API().Remove(where.Pid())
}
