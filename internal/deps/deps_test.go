package deps

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckBinariesFindsStubbedCommand(t *testing.T) {
	binDir := t.TempDir()
	stub := filepath.Join(binDir, "ffmpeg")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	results := CheckBinaries([]Requirement{Encoder("ffmpeg")})
	if len(results) != 1 {
		t.Fatalf("expected one status, got %d", len(results))
	}
	if !results[0].Available {
		t.Fatalf("expected ffmpeg to be available: %+v", results[0])
	}
	if results[0].Command != stub {
		t.Fatalf("expected resolved path %q, got %q", stub, results[0].Command)
	}
}

func TestCheckBinariesReportsMissingCommand(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	results := CheckBinaries([]Requirement{Encoder("ffmpeg")})
	if results[0].Available {
		t.Fatal("expected ffmpeg to be reported missing")
	}
	if results[0].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
}

func TestCheckBinariesEmptyCommand(t *testing.T) {
	results := CheckBinaries([]Requirement{{Name: "Encoder"}})
	if results[0].Available || results[0].Detail != "command not configured" {
		t.Fatalf("unexpected status: %+v", results[0])
	}
}
