package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1broseidon/glwaffle/internal/config"
)

func TestFormatSource(t *testing.T) {
	tests := []struct {
		src  config.Source
		want string
	}{
		{config.Source{Kind: config.SourceDefault}, "default"},
		{config.Source{Kind: config.SourceFile}, "file"},
		{config.Source{Kind: config.SourceFile, File: "/a.yaml"}, "file:/a.yaml"},
		{config.Source{Kind: config.SourceFile, File: "/a.yaml", Line: 3, Column: 5}, "file:/a.yaml:3:5"},
	}
	for _, tt := range tests {
		if got := formatSource(tt.src); got != tt.want {
			t.Errorf("formatSource(%+v) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if w := terminalWidth(f); w != 0 {
		t.Fatalf("terminalWidth on a file = %d, want 0", w)
	}
}

func TestLoadConfig_Path(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("platform: surfaceless_egl\napi: gles2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if res.Config.Platform != "surfaceless_egl" || res.Config.API != "gles2" {
		t.Fatalf("unexpected config: %+v", res.Config)
	}
}

func TestRunProbe_BadFlags(t *testing.T) {
	if code := runProbe([]string{"--no-such-flag"}); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
	if code := runProbe([]string{"extra"}); code != 2 {
		t.Fatalf("exit code = %d, want 2", code)
	}
}

func TestStyleReport_KeepsText(t *testing.T) {
	in := "OpenGL vendor string: Acme\nOpenGL extensions: GL_A\n    GL_B\n"
	out := styleReport(in)
	for _, want := range []string{"OpenGL vendor string:", "Acme", "GL_A", "    GL_B"} {
		if !strings.Contains(out, want) {
			t.Errorf("styled output lost %q: %q", want, out)
		}
	}
}
