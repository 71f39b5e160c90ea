// Package logutil provides a structured logging abstraction built on top of slog.
//
// All diagnostics go to stderr so they never mix with query output on
// stdout. Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set PSFIND_DEBUG=true in the environment
//
// When structured=true is passed to SetupLogger, logs are output as JSON;
// otherwise they use slog's human-readable text format.
package logutil
