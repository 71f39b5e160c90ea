//go:build !windows
// +build !windows

package finder

import (
	"path/filepath"

	"github.com/shirou/gopsutil/v4/process"
)

// execName returns the base name of the process executable, giving the
// same semantics as the Windows variant. Exe needs permission to read the
// target's /proc entry on Linux; when that fails, fall back to the kernel
// short name, which is world-readable.
func execName(p *process.Process) (string, error) {
	exe, err := p.Exe()
	if err == nil {
		return filepath.Base(exe), nil
	}
	return p.Name()
}
