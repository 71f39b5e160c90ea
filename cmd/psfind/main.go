package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/psfind/psfind/finder"
	"github.com/psfind/psfind/version"
)

// Exit codes. Zero matches is still success; only a failed enumeration or
// a bad invocation is an error.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// Set via ldflags at build time:
//
//	-X main.buildVersion=... -X main.buildDate=... -X main.gitCommit=...
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := version.New("psfind")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	cmd := newRootCmd(info)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "psfind:", err)
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps a command error to the process exit code: bad invocation
// and malformed patterns are 2, everything else is 1.
func exitCode(err error) int {
	if errors.Is(err, errUsage) || errors.Is(err, finder.ErrInvalidPattern) {
		return exitUsage
	}
	return exitError
}
