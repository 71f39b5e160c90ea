package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Cyan    = "\033[36m"
	Gray    = "\033[90m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
)

// defaultTermWidth is assumed when the real width cannot be determined.
const defaultTermWidth = 80

var (
	mu           sync.RWMutex
	globalFormat Format = FormatDefault
	noColor             = false
)

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()

	switch format {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	case "yaml":
		globalFormat = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	noColor = false
	mu.Unlock()
}

func colorEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// colorize wraps s in the given ANSI code when color output is enabled.
func colorize(code, s string) string {
	if !colorEnabled() {
		return s
	}
	return code + s + Reset
}

// TermWidth returns the width of the attached terminal. The COLUMNS
// environment variable wins when set; otherwise the terminal is queried
// directly. Falls back to 80 columns when stdout is not a terminal.
func TermWidth() int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		var w int
		if _, err := fmt.Sscanf(cols, "%d", &w); err == nil && w > 0 {
			return w
		}
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultTermWidth
}

// PrintJSON prints data as indented JSON to stdout.
func PrintJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML prints data as YAML to stdout.
func PrintYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer encoder.Close()
	return encoder.Encode(data)
}

// Print outputs data in the configured format. For the default format the
// formatter function renders it; for JSON and YAML the data object is
// marshaled directly.
func Print(data interface{}, formatter func()) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	default:
		formatter()
		return nil
	}
}

// Success prints a success message in green.
func Success(format string, args ...interface{}) {
	fmt.Println(colorize(BrightGreen, fmt.Sprintf(format, args...)))
}

// Error prints an error message in red.
func Error(format string, args ...interface{}) {
	fmt.Println(colorize(BrightRed, fmt.Sprintf(format, args...)))
}

// Warning prints a warning message in yellow.
func Warning(format string, args ...interface{}) {
	fmt.Println(colorize(BrightYellow, fmt.Sprintf(format, args...)))
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Hint prints dim, secondary text.
func Hint(format string, args ...interface{}) {
	fmt.Println(colorize(Dim, fmt.Sprintf(format, args...)))
}

// Header prints a bold header with a divider.
func Header(text string) {
	fmt.Printf("\n%s\n", colorize(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Label prints a label and value pair.
func Label(label, value string) {
	fmt.Printf("   %s %s\n", colorize(Dim, fmt.Sprintf("%-12s", label+":")), value)
}
