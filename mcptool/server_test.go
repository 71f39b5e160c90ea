package mcptool

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/time/rate"

	"github.com/psfind/psfind/finder"
)

type fakeProcess struct {
	pid     int32
	name    string
	cmdline string
}

func (p fakeProcess) PID() int32               { return p.pid }
func (p fakeProcess) Name() (string, error)    { return p.name, nil }
func (p fakeProcess) Cmdline() (string, error) { return p.cmdline, nil }

type fakeSource struct {
	procs []finder.Process
}

func (s fakeSource) Snapshot(ctx context.Context) ([]finder.Process, error) {
	return s.procs, nil
}

func testServer() *Server {
	src := fakeSource{procs: []finder.Process{
		fakeProcess{pid: 100, name: "python.exe", cmdline: "python.exe aldale_yt_app.py"},
		fakeProcess{pid: 200, name: "notepad.exe", cmdline: "notepad.exe"},
	}}
	return New("psfind-test", "0.0.0", finder.New(src))
}

func findRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func TestHandleFindProcesses(t *testing.T) {
	s := testServer()

	result, err := s.handleFindProcesses(context.Background(), findRequest(map[string]interface{}{
		"name":    "python*",
		"cmdline": "aldale",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	var records []finder.Record
	if err := json.Unmarshal([]byte(resultText(t, result)), &records); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if len(records) != 1 || records[0].PID != 100 {
		t.Errorf("unexpected records: %v", records)
	}
}

func TestHandleFindProcessesNoMatch(t *testing.T) {
	s := testServer()

	result, err := s.handleFindProcesses(context.Background(), findRequest(map[string]interface{}{
		"name": "doesnotexist*",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}
	if got := strings.TrimSpace(resultText(t, result)); got != "[]" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}

func TestHandleFindProcessesBadPattern(t *testing.T) {
	s := testServer()

	result, err := s.handleFindProcesses(context.Background(), findRequest(map[string]interface{}{
		"cmdline": "[unclosed",
	}))
	if err != nil {
		t.Fatalf("pattern errors should be tool errors, not handler errors: %v", err)
	}
	if !result.IsError {
		t.Error("expected error tool result for bad pattern")
	}
}

func TestHandleCheckProcess(t *testing.T) {
	s := testServer()

	result, err := s.handleCheckProcess(context.Background(), findRequest(map[string]interface{}{
		"pid": float64(os.Getpid()),
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var status struct {
		PID     int  `json:"pid"`
		Running bool `json:"running"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &status); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if status.PID != os.Getpid() || !status.Running {
		t.Errorf("expected current process to be running, got %+v", status)
	}
}

func TestHandleCheckProcessMissingPID(t *testing.T) {
	s := testServer()

	result, err := s.handleCheckProcess(context.Background(), findRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error tool result for missing pid")
	}
}

func TestRateLimitDenies(t *testing.T) {
	s := testServer()
	s.limiter = rate.NewLimiter(rate.Limit(0), 0)

	result, err := s.handleFindProcesses(context.Background(), findRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected rate limit error result")
	}
	if !strings.Contains(resultText(t, result), "rate limit") {
		t.Errorf("expected rate limit message, got %q", resultText(t, result))
	}
}

func TestRateLimitAllowsBurst(t *testing.T) {
	s := testServer()

	for i := 0; i < callBurst; i++ {
		if err := s.checkRateLimit("find_processes"); err != nil {
			t.Fatalf("call %d should be within burst: %v", i, err)
		}
	}
	if err := s.checkRateLimit("find_processes"); err == nil {
		t.Error("expected denial after burst exhausted")
	}
}
