// Package finder locates running operating-system processes by executable
// name and command line.
//
// A query is a single point-in-time snapshot of the process table filtered
// by two predicates: a case-insensitive glob matched against the executable
// base name, and a regular expression matched against the full command
// line. Matches are projected to (processId, name, commandLine) records in
// whatever order the snapshot yields them.
//
// # Key Features
//
//   - Cross-platform process enumeration via github.com/shirou/gopsutil
//   - Glob matching on executable names ('*' and '?' wildcards)
//   - Regular-expression matching on command lines
//   - Partial results: processes the caller cannot inspect are skipped
//   - Pluggable Source, so filtering is testable without touching the OS
//
// # Example Usage
//
//	f := finder.NewSystem()
//	records, err := f.Find(ctx, "python*", `aldale_yt_app\.py`)
//	if err != nil {
//	    // finder.ErrInvalidPattern: a predicate failed to compile
//	    // finder.ErrUnavailable: the process table could not be read
//	}
//	for _, r := range records {
//	    fmt.Println(r.PID, r.Name, r.Cmdline)
//	}
//
// A zero-match query returns an empty slice and a nil error. Process IDs
// are only meaningful within the snapshot that produced them; the OS may
// reuse a PID after the process exits.
package finder
