//go:build !windows

package engine

import (
	"os/exec"
	"syscall"
	"time"
)

func sysProcAttr() *syscall.SysProcAttr {
	// New session: the engine must outlive the invoking command.
	return &syscall.SysProcAttr{
		Setsid: true,
	}
}

func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

// terminatePid escalates from TERM to KILL once the grace period elapses.
func terminatePid(pid int, grace time.Duration) {
	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		return
	}

	deadline := time.Now().Add(grace)
	for time.Now().Before(deadline) {
		// Signal 0 probes process existence.
		if err := syscall.Kill(pid, 0); err != nil {
			return
		}
		time.Sleep(stopPollDelay)
	}

	_ = syscall.Kill(pid, syscall.SIGKILL)
}
