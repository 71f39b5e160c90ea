//go:build windows
// +build windows

package finder

import (
	"github.com/shirou/gopsutil/v4/process"
)

// execName returns the process image name (e.g. "python.exe"), giving the
// same semantics as the non-Windows variant.
func execName(p *process.Process) (string, error) {
	return p.Name()
}
