package finder

import (
	"context"

	"github.com/psfind/psfind/logutil"
)

// Finder runs snapshot queries against a process Source.
type Finder struct {
	source Source
}

// New returns a Finder that queries the given source.
func New(source Source) *Finder {
	return &Finder{source: source}
}

// NewSystem returns a Finder over the live OS process table.
func NewSystem() *Finder {
	return New(SystemSource{})
}

// Find returns a record for every process whose executable name matches
// nameGlob and whose command line matches cmdlinePattern. Both patterns
// are compiled before the snapshot is taken, so a malformed pattern never
// touches the OS.
//
// The result carries whatever order the snapshot yielded; callers must not
// rely on it. Zero matches is an empty slice, not an error. Processes
// whose name or command line cannot be read (permission denied, exited
// mid-snapshot) are skipped, so the result may be partial.
func (f *Finder) Find(ctx context.Context, nameGlob, cmdlinePattern string) ([]Record, error) {
	matchName, err := NewNameMatcher(nameGlob)
	if err != nil {
		return nil, err
	}
	matchCmdline, err := NewCmdlineMatcher(cmdlinePattern)
	if err != nil {
		return nil, err
	}

	procs, err := f.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	records := []Record{}
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			logutil.Debug("skipping unreadable process", "pid", p.PID(), "error", err)
			continue
		}
		if !matchName(name) {
			continue
		}

		// Command line is only fetched for name matches; it is the more
		// expensive read on every platform.
		cmdline, err := p.Cmdline()
		if err != nil {
			logutil.Debug("skipping unreadable process", "pid", p.PID(), "error", err)
			continue
		}
		if !matchCmdline(cmdline) {
			continue
		}

		records = append(records, Record{
			PID:     p.PID(),
			Name:    name,
			Cmdline: cmdline,
		})
	}

	logutil.Debug("find completed",
		"nameGlob", nameGlob,
		"cmdlinePattern", cmdlinePattern,
		"scanned", len(procs),
		"matched", len(records))

	return records, nil
}
