package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	cmd := newConfigInitCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--path", target})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	for _, want := range []string{"[paths]", "[whisper]", "[output]"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("sample missing %q:\n%s", want, data)
		}
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newConfigInitCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--path", target})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error without --overwrite")
	}

	cmd = newConfigInitCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--path", target, "--overwrite"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}
