package finder

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/process"
)

// Process is a lazy handle to one running process. Attribute reads may
// fail for processes the caller lacks permission to inspect, or for
// processes that exited after the snapshot was taken; callers are expected
// to skip those.
type Process interface {
	PID() int32
	Name() (string, error)
	Cmdline() (string, error)
}

// Source lists the processes visible to the caller at one instant.
type Source interface {
	Snapshot(ctx context.Context) ([]Process, error)
}

// SystemSource reads the live process table through gopsutil. The zero
// value is ready to use.
type SystemSource struct{}

// Snapshot returns lazy handles for every PID currently visible. Only the
// PID is populated up front; name and command line are fetched on demand,
// so a snapshot of thousands of processes stays cheap until a handle is
// actually inspected.
func (SystemSource) Snapshot(ctx context.Context) ([]Process, error) {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	procs := make([]Process, len(pids))
	for i, pid := range pids {
		procs[i] = systemProcess{proc: &process.Process{Pid: pid}}
	}
	return procs, nil
}

type systemProcess struct {
	proc *process.Process
}

func (s systemProcess) PID() int32 {
	return s.proc.Pid
}

func (s systemProcess) Name() (string, error) {
	return execName(s.proc)
}

func (s systemProcess) Cmdline() (string, error) {
	return s.proc.Cmdline()
}

// IsRunning reports whether a process with the given PID currently exists.
// Non-positive PIDs are never running. Uses gopsutil, which checks via
// platform APIs rather than os.FindProcess, so stale PIDs on Windows are
// reported correctly.
func IsRunning(pid int32) bool {
	if pid <= 0 {
		return false
	}
	ok, err := process.PidExists(pid)
	return err == nil && ok
}
