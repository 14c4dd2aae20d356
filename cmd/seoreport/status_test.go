package main

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/nao1215/seoreport/internal/exporter"
)

// TestRunStatusCmd tests the status command execution.
func TestRunStatusCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints text status", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		out, err := runCLI(t, "", "status", "-c", env.configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, want := range []string{
			"Config file:      " + env.configPath,
			"Reports dir:      " + env.reportsDir,
			"  exists:         no",
			"Go version:",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, out)
			}
		}
	})

	t.Run("prints JSON status", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		if err := os.MkdirAll(env.reportsDir, 0750); err != nil {
			t.Fatalf("failed to create reports dir: %v", err)
		}

		out, err := runCLI(t, "", "status", "-c", env.configPath, "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var status exporter.SystemStatus
		if err := json.Unmarshal([]byte(out), &status); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if status.ReportsDir != env.reportsDir || !status.DirExists || !status.DirWritable {
			t.Errorf("unexpected status %+v", status)
		}
	})

	t.Run("rejects arguments", func(t *testing.T) {
		t.Parallel()

		if _, err := runCLI(t, "", "status", "extra"); err == nil {
			t.Error("expected error for unexpected argument")
		}
	})
}

func TestYesNo(t *testing.T) {
	t.Parallel()

	if yesNo(true) != "yes" || yesNo(false) != "no" {
		t.Error("unexpected yesNo output")
	}
}
