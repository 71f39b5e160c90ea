package version

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/psfind/psfind/cliout"
	"github.com/psfind/psfind/testutil"
)

func TestNewDefaults(t *testing.T) {
	info := New("psfind")
	if info.Name != "psfind" {
		t.Errorf("Name = %q", info.Name)
	}
	if info.Version != "0.0.0-dev" || info.BuildDate != "unknown" || info.GitCommit != "unknown" {
		t.Errorf("unexpected defaults: %+v", info)
	}
}

func TestString(t *testing.T) {
	info := &Info{Name: "psfind", Version: "1.2.3", GitCommit: "abc1234", BuildDate: "2026-08-30"}
	s := info.String()
	for _, want := range []string{"psfind", "1.2.3", "abc1234", "2026-08-30"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestCommandQuiet(t *testing.T) {
	info := New("psfind")
	info.Version = "1.2.3"

	cmd := NewCommand(info)
	cmd.SetArgs([]string{"--quiet"})

	output := testutil.CaptureOutput(t, cmd.Execute)

	if strings.TrimSpace(output) != "1.2.3" {
		t.Errorf("expected bare version, got %q", output)
	}
}

func TestCommandJSON(t *testing.T) {
	if err := cliout.SetFormat("json"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = cliout.SetFormat("default") })

	info := New("psfind")
	info.Version = "1.2.3"

	cmd := NewCommand(info)
	output := testutil.CaptureOutput(t, cmd.Execute)

	var decoded Info
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, output)
	}
	if decoded.Version != "1.2.3" || decoded.Name != "psfind" {
		t.Errorf("unexpected JSON payload: %+v", decoded)
	}
}
