// Package mcptool exposes process search over the Model Context Protocol.
//
// It serves two tools on stdio:
//
//   - find_processes: run a snapshot query with a name glob and a
//     command-line regular expression, returning matched records as JSON
//   - check_process: report whether a PID currently exists
//
// Tool calls share a token-bucket rate limit so a misbehaving client
// cannot hammer the process table.
package mcptool
