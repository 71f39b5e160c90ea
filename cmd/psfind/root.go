package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/psfind/psfind/cliout"
	"github.com/psfind/psfind/finder"
	"github.com/psfind/psfind/logutil"
	"github.com/psfind/psfind/mcptool"
	"github.com/psfind/psfind/version"
)

// errUsage marks errors caused by bad invocation rather than a failed
// query; main maps it to exit code 2.
var errUsage = errors.New("invalid arguments")

type rootOptions struct {
	nameGlob       string
	cmdlinePattern string
	outputFormat   string
	countOnly      bool
	noColor        bool
	debug          bool
}

func newRootCmd(info *version.Info) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "psfind",
		Short: "Find running processes by executable name and command line",
		Long: `psfind lists operating-system processes whose executable name matches a
glob pattern and whose command line matches a regular expression, then
prints the process ID, name and command line of each match.

Examples:
  psfind --name 'python*'
  psfind --name 'python*' --cmdline 'aldale_yt_app\.py'
  psfind -n 'nginx*' -o json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Positional arguments are rejected in RunE so the error carries
		// the usage exit code.
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(opts.debug, opts.outputFormat == "json")
			if opts.noColor {
				cliout.NoColor()
			}
			if err := cliout.SetFormat(opts.outputFormat); err != nil {
				return fmt.Errorf("%w: %v", errUsage, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q", errUsage, args[0])
			}
			return runFind(cmd, opts)
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.outputFormat, "output", "o", "default", "Output format: default, json or yaml")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.Flags().StringVarP(&opts.nameGlob, "name", "n", "*", "Case-insensitive glob matched against executable names")
	cmd.Flags().StringVarP(&opts.cmdlinePattern, "cmdline", "c", "", "Regular expression matched against full command lines")
	cmd.Flags().BoolVar(&opts.countOnly, "count", false, "Print only the number of matches")

	cmd.AddCommand(version.NewCommand(info))
	cmd.AddCommand(newMCPCmd(info))

	return cmd
}

func runFind(cmd *cobra.Command, opts *rootOptions) error {
	records, err := finder.NewSystem().Find(cmd.Context(), opts.nameGlob, opts.cmdlinePattern)
	if err != nil {
		return err
	}

	if opts.countOnly {
		cliout.Plain("%d", len(records))
		return nil
	}

	return cliout.Print(records, func() {
		if len(records) == 0 {
			cliout.Hint("No matching processes")
			return
		}
		printRecordTable(records)
	})
}

func printRecordTable(records []finder.Record) {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{strconv.Itoa(int(r.PID)), r.Name, r.Cmdline}
	}
	cliout.Table([]string{"PID", "NAME", "COMMAND"}, rows)
}

func newMCPCmd(info *version.Info) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve process search as MCP tools over stdio",
		Long: `Starts a Model Context Protocol server on stdin/stdout exposing the
find_processes and check_process tools, for use by MCP-capable clients.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := mcptool.New(info.Name, info.Version, finder.NewSystem())
			return srv.ServeStdio()
		},
	}
}
