package finder

// Record is the projection of one matched process. Field values reflect
// what the OS reported at snapshot time; they are never refreshed.
type Record struct {
	// PID is the process ID, unique among processes running at snapshot
	// time. PIDs are recycled by the OS, so records must not be compared
	// across snapshots.
	PID int32 `json:"processId" yaml:"processId"`

	// Name is the executable's base name as reported by the OS.
	Name string `json:"name" yaml:"name"`

	// Cmdline is the full invocation including arguments. May be empty
	// for processes that expose no command line (e.g. kernel threads).
	Cmdline string `json:"commandLine" yaml:"commandLine"`
}
