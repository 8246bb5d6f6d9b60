// ABOUTME: Tests for the index command
// ABOUTME: Flag wiring and the existing-index guard

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewIndexCmd(t *testing.T) {
	cmd := NewIndexCmd()

	if cmd.Use != "index" {
		t.Errorf("Use = %q, want %q", cmd.Use, "index")
	}

	for _, name := range []string{"docs", "out", "force"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
}

func TestIndexCmd_RefusesToOverwrite(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "index.json")
	if err := os.WriteFile(existing, []byte("{}"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	defer func() {
		indexDocsDir = ""
		indexOutPath = ""
		indexForce = false
	}()

	cmd := NewRootCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"index", "--out", existing})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("index over an existing file without --force should fail")
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("error = %v, should mention --force", err)
	}
}
