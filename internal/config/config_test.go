package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/1broseidon/glwaffle/internal/enum"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.PlatformTag() != enum.PlatformX11EGL {
		t.Fatalf("expected default platform x11_egl, got %s", enum.Describe(cfg.PlatformTag()))
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(res.Config, DefaultConfig()) {
		t.Fatalf("expected defaults, got %#v", res.Config)
	}
	if len(res.Files) != 0 {
		t.Fatalf("expected no files, got %v", res.Files)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "# empty\n")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.Platform != "x11_egl" || res.Config.API != "gl" {
		t.Fatalf("expected defaults, got %#v", res.Config)
	}
}

func TestLoadFromPath_FieldsAndExplain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, strings.Join([]string{
		"platform: surfaceless_egl",
		"api: gles3",
		"version: \"3.1\"",
		"display: \":1\"",
		"libraries:",
		"  egl: /opt/mesa/lib/libEGL.so.1",
		"log_level: debug",
		"format: json",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.PlatformTag() != enum.PlatformSurfacelessEGL {
		t.Fatalf("expected surfaceless platform, got %q", cfg.Platform)
	}
	if cfg.Libraries["egl"] != "/opt/mesa/lib/libEGL.so.1" {
		t.Fatalf("expected egl override, got %v", cfg.Libraries)
	}

	val, src, err := Explain(res, "display")
	if err != nil {
		t.Fatalf("explain display: %v", err)
	}
	if val != ":1" {
		t.Fatalf("expected explain display :1, got %#v", val)
	}
	if src.Kind != SourceFile || src.Line != 4 {
		t.Fatalf("expected display source at line 4, got %#v", src)
	}

	val, src, err = Explain(res, "libraries.egl")
	if err != nil {
		t.Fatalf("explain libraries.egl: %v", err)
	}
	if val != "/opt/mesa/lib/libEGL.so.1" || src.Line != 6 {
		t.Fatalf("unexpected explain result %#v %#v", val, src)
	}

	_, src, err = Explain(res, "profile")
	if err != nil {
		t.Fatalf("explain profile: %v", err)
	}
	if src.Kind != SourceDefault {
		t.Fatalf("expected default source for profile, got %#v", src)
	}

	if _, _, err := Explain(res, "layouts.grid"); err == nil {
		t.Fatalf("expected unknown path error")
	}
}

func TestLoadFromPath_StrictUnknownKeyErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "unknown_key: 1\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown_key") && !strings.Contains(err.Error(), "field") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to include file path, got %v", err)
	}
}

func TestLoadFromPath_ValidationErrorHasSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "api: gl\nplatform: amiga\n")

	_, err := LoadFromPath(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Path != "platform" {
		t.Fatalf("expected path platform, got %q", verr.Path)
	}
	if verr.Source.Kind != SourceFile || verr.Source.Line != 2 {
		t.Fatalf("expected source at line 2, got %#v", verr.Source)
	}
	if !strings.Contains(err.Error(), ":2:") {
		t.Fatalf("expected file:line prefix, got %v", err)
	}
}

func TestLoadFromPath_IncludeDirectoryOrderAndMainOverrides(t *testing.T) {
	dir := t.TempDir()

	configD := filepath.Join(dir, "config.d")
	if err := os.MkdirAll(configD, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(configD, "10-base.yaml"), "api: gles1\nlibraries:\n  gl: /a/libGL.so\n")
	writeFile(t, filepath.Join(configD, "20-override.yaml"), "api: gles2\nlibraries:\n  egl: /a/libEGL.so\n")

	path := filepath.Join(dir, "config.yaml")
	writeFile(t, path, strings.Join([]string{
		"include:",
		"  - config.d",
		"api: gles3",
		"",
	}, "\n"))

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.API != "gles3" {
		t.Fatalf("expected api gles3, got %q", res.Config.API)
	}
	want := map[string]string{"gl": "/a/libGL.so", "egl": "/a/libEGL.so"}
	if !reflect.DeepEqual(res.Config.Libraries, want) {
		t.Fatalf("expected merged libraries %v, got %v", want, res.Config.Libraries)
	}
	if len(res.Files) != 3 {
		t.Fatalf("expected 3 loaded files, got %v", res.Files)
	}
}

func TestLoadFromPath_IncludeMissingPathHasContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "include:\n  - missing.yaml\n")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "include") || !strings.Contains(err.Error(), "missing.yaml") {
		t.Fatalf("expected include error, got %v", err)
	}
}

func TestLoadFromPath_IncludeCycleDetection(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	writeFile(t, a, "include: b.yaml\n")
	writeFile(t, b, "include: a.yaml\n")

	_, err := LoadFromPath(a)
	if err == nil {
		t.Fatalf("expected cycle error")
	}
	if !strings.Contains(err.Error(), "include cycle") {
		t.Fatalf("expected cycle error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		path   string
	}{
		{"bad api", func(c *Config) { c.API = "vulkan" }, "api"},
		{"bad version", func(c *Config) { c.Version = "three" }, "version"},
		{"bad profile", func(c *Config) { c.Profile = "legacy" }, "profile"},
		{"unknown library", func(c *Config) { c.Libraries["vk"] = "/x" }, "libraries.vk"},
		{"empty library", func(c *Config) { c.Libraries["egl"] = " " }, "libraries.egl"},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }, "log_level"},
		{"bad format", func(c *Config) { c.Format = "xml" }, "format"},
		{"null libraries", func(c *Config) { c.Libraries = nil }, "libraries"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Path != tt.path {
				t.Fatalf("expected path %q, got %q", tt.path, verr.Path)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in           string
		major, minor int32
		ok           bool
	}{
		{"3.2", 3, 2, true},
		{"2", 2, 0, true},
		{" 4.6 ", 4, 6, true},
		{"0.1", 0, 0, false},
		{"3.x", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		major, minor, err := ParseVersion(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("ParseVersion(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
		}
		if major != tt.major || minor != tt.minor {
			t.Fatalf("ParseVersion(%q) = %d.%d, want %d.%d", tt.in, major, minor, tt.major, tt.minor)
		}
	}
}

func TestAttribLists(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Platform = "sl"
	cfg.API = "gl"
	cfg.Version = "4.5"
	cfg.Profile = "compat"
	cfg.Debug = true

	wantInit := []int32{enum.Platform, enum.PlatformSurfacelessEGL, 0}
	if got := cfg.InitAttribs(); !reflect.DeepEqual(got, wantInit) {
		t.Fatalf("InitAttribs() = %v, want %v", got, wantInit)
	}

	wantConfig := []int32{
		enum.ContextAPI, enum.ContextOpenGL,
		enum.ContextMajorVersion, 4,
		enum.ContextMinorVersion, 5,
		enum.ContextProfile, enum.ContextCompatProfile,
		enum.ContextDebug, 1,
		0,
	}
	if got := cfg.ConfigAttribs(); !reflect.DeepEqual(got, wantConfig) {
		t.Fatalf("ConfigAttribs() = %v, want %v", got, wantConfig)
	}

	cfg.Profile = "none"
	cfg.Version = ""
	cfg.Debug = false
	want := []int32{enum.ContextAPI, enum.ContextOpenGL, 0}
	if got := cfg.ConfigAttribs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ConfigAttribs() = %v, want %v", got, want)
	}
}

func TestPlatformName(t *testing.T) {
	if got := PlatformName(enum.PlatformSurfacelessEGL); got != "surfaceless_egl" {
		t.Fatalf("PlatformName() = %q", got)
	}
	if got := PlatformName(enum.PlatformX11EGL); got != "x11_egl" {
		t.Fatalf("PlatformName() = %q", got)
	}
}
