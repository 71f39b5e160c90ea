// Package cliout provides structured output formatting for CLI commands.
// It supports human-readable tables plus JSON and YAML projections, with
// consistent styling using ANSI colors. Diagnostic styling is suppressed
// automatically when stdout is not a terminal or when the machine-readable
// formats are selected.
package cliout
