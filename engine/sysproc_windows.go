//go:build windows

package engine

import (
	"os"
	"os/exec"
	"syscall"
	"time"
)

func sysProcAttr() *syscall.SysProcAttr {
	// Windows manages process groups differently; detaching is not required
	// for the engine to outlive the invoking command.
	return nil
}

func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

// terminatePid has no graceful signal on Windows; the process is killed after
// the grace period regardless.
func terminatePid(pid int, grace time.Duration) {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return
	}
	time.Sleep(grace)
	_ = proc.Kill()
}
