package mcptool

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetArgsMapNilArgs(t *testing.T) {
	req := mcp.CallToolRequest{}
	assert.Empty(t, GetArgsMap(req))
}

func TestGetArgsMapNonMapArgs(t *testing.T) {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = "not-a-map"
	assert.Empty(t, GetArgsMap(req))
}

func TestGetArgsMapWithArgs(t *testing.T) {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}{
		"name":    "python*",
		"cmdline": "app.py",
	}
	args := GetArgsMap(req)
	require.Len(t, args, 2)
	assert.Equal(t, "python*", args["name"])
}

func TestGetStringParam(t *testing.T) {
	args := map[string]interface{}{"key": "value", "num": 42}

	val, ok := GetStringParam(args, "key")
	require.True(t, ok)
	assert.Equal(t, "value", val)

	_, ok = GetStringParam(args, "num")
	assert.False(t, ok, "non-string value should not be returned")

	_, ok = GetStringParam(args, "missing")
	assert.False(t, ok)
}

func TestGetIntParam(t *testing.T) {
	args := map[string]interface{}{
		"pid":        float64(1234),
		"fractional": 12.5,
		"text":       "99",
	}

	pid, ok := GetIntParam(args, "pid")
	require.True(t, ok)
	assert.Equal(t, 1234, pid)

	_, ok = GetIntParam(args, "fractional")
	assert.False(t, ok, "fractional value should be rejected")

	_, ok = GetIntParam(args, "text")
	assert.False(t, ok)

	_, ok = GetIntParam(args, "missing")
	assert.False(t, ok)
}

func TestMarshalToolResult(t *testing.T) {
	result, err := MarshalToolResult(map[string]string{"status": "ok"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
}

func TestMarshalToolResultUnmarshalableValue(t *testing.T) {
	// Channels cannot be marshaled to JSON; the failure becomes an error
	// tool result rather than a Go error.
	result, err := MarshalToolResult(make(chan int))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
