package mcptool

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/psfind/psfind/finder"
	"github.com/psfind/psfind/logutil"
)

// Rate limit shared by all tool calls: sustained calls per second and the
// allowed burst.
const (
	callsPerSecond = 5
	callBurst      = 10
)

// Server wires the finder into an MCP stdio server.
type Server struct {
	mcpServer *server.MCPServer
	find      *finder.Finder
	limiter   *rate.Limiter
	log       *logutil.ComponentLogger
}

// New creates an MCP server exposing the given finder. name and version
// identify the server to clients during initialization.
func New(name, ver string, f *finder.Finder) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(name, ver),
		find:      f,
		limiter:   rate.NewLimiter(rate.Limit(callsPerSecond), callBurst),
		log:       logutil.NewLogger("mcptool"),
	}

	findTool := mcp.NewTool("find_processes",
		mcp.WithDescription("List running processes whose executable name matches a glob pattern and whose command line matches a regular expression. Returns a JSON array of {processId, name, commandLine} records."),
		mcp.WithString("name",
			mcp.Description("Case-insensitive glob for the executable name, e.g. 'python*'. Defaults to '*' (any name)."),
		),
		mcp.WithString("cmdline",
			mcp.Description("Regular expression matched against the full command line. Defaults to matching everything."),
		),
	)
	s.mcpServer.AddTool(findTool, s.handleFindProcesses)

	checkTool := mcp.NewTool("check_process",
		mcp.WithDescription("Report whether a process with the given PID currently exists."),
		mcp.WithNumber("pid",
			mcp.Description("Process ID to check."),
			mcp.Required(),
		),
	)
	s.mcpServer.AddTool(checkTool, s.handleCheckProcess)

	return s
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// checkRateLimit consumes one token and returns an error result when the
// shared limit is exceeded.
func (s *Server) checkRateLimit(toolName string) error {
	if !s.limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for tool %q, please wait before retrying", toolName)
	}
	return nil
}

func (s *Server) handleFindProcesses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.checkRateLimit("find_processes"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := GetArgsMap(request)
	nameGlob, _ := GetStringParam(args, "name")
	cmdlinePattern, _ := GetStringParam(args, "cmdline")

	s.log.Debug("find_processes called", "name", nameGlob, "cmdline", cmdlinePattern)

	records, err := s.find.Find(ctx, nameGlob, cmdlinePattern)
	if err != nil {
		if errors.Is(err, finder.ErrInvalidPattern) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, err
	}

	return MarshalToolResult(records)
}

func (s *Server) handleCheckProcess(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.checkRateLimit("check_process"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := GetArgsMap(request)
	pid, ok := GetIntParam(args, "pid")
	if !ok {
		return mcp.NewToolResultError("missing or invalid required parameter: pid"), nil
	}

	result := struct {
		PID     int  `json:"pid"`
		Running bool `json:"running"`
	}{
		PID:     pid,
		Running: finder.IsRunning(int32(pid)),
	}
	return MarshalToolResult(result)
}
