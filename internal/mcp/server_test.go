package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/1broseidon/glwaffle/internal/config"
	"github.com/1broseidon/glwaffle/internal/probe"
)

func testServer(run func(probe.Request) (*probe.Report, error)) *Server {
	cfg := config.DefaultConfig()
	cfg.Version = "4.5"
	cfg.Profile = "core"
	cfg.Libraries["egl"] = "/opt/egl/libEGL.so.1"
	s := NewServer(cfg, nil)
	s.runFn = run
	s.platformsFn = func() []probe.PlatformInfo {
		return []probe.PlatformInfo{
			{Name: "glx", Enum: "WAFFLE_PLATFORM_GLX"},
			{Name: "x11_egl", Enum: "WAFFLE_PLATFORM_X11_EGL", Available: true},
		}
	}
	return s
}

func TestRequestConfig(t *testing.T) {
	s := testServer(nil)

	tests := []struct {
		name        string
		in          ProbePlatformInput
		wantAPI     string
		wantVersion string
		wantProfile string
	}{
		{"empty keeps config", ProbePlatformInput{}, "gl", "4.5", "core"},
		{"api resets version", ProbePlatformInput{API: "gles2"}, "gles2", "", ""},
		{"api with version", ProbePlatformInput{API: "gles3", Version: "3.1"}, "gles3", "3.1", ""},
		{"api with profile", ProbePlatformInput{API: "gl", Version: "3.3", Profile: "compat"}, "gl", "3.3", "compat"},
		{"version only", ProbePlatformInput{Version: "3.3"}, "gl", "3.3", "core"},
		{"profile override", ProbePlatformInput{Profile: "compat"}, "gl", "4.5", "compat"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := s.requestConfig(tt.in)
			if cfg.API != tt.wantAPI || cfg.Version != tt.wantVersion || cfg.Profile != tt.wantProfile {
				t.Fatalf("got api=%q version=%q profile=%q, want %q %q %q",
					cfg.API, cfg.Version, cfg.Profile, tt.wantAPI, tt.wantVersion, tt.wantProfile)
			}
		})
	}
}

func TestRequestConfig_DoesNotAliasLibraries(t *testing.T) {
	s := testServer(nil)
	cfg := s.requestConfig(ProbePlatformInput{})
	cfg.Libraries["egl"] = "/elsewhere"
	if s.config.Libraries["egl"] != "/opt/egl/libEGL.so.1" {
		t.Fatalf("server libraries modified: %v", s.config.Libraries)
	}
}

func TestHandleProbePlatform(t *testing.T) {
	var got probe.Request
	s := testServer(func(req probe.Request) (*probe.Report, error) {
		got = req
		return &probe.Report{Platform: req.Config.Platform, API: req.Config.API, Vendor: "Acme"}, nil
	})

	_, out, err := s.handleProbePlatform(context.Background(), nil, ProbePlatformInput{Platform: "surfaceless_egl", API: "gles2", Verbose: true})
	if err != nil {
		t.Fatalf("handleProbePlatform: %v", err)
	}
	if out.Report.Vendor != "Acme" || out.Report.Platform != "surfaceless_egl" {
		t.Fatalf("unexpected report: %+v", out.Report)
	}
	if !got.Verbose {
		t.Fatalf("verbose not forwarded")
	}
}

func TestHandleProbePlatform_Invalid(t *testing.T) {
	called := false
	s := testServer(func(probe.Request) (*probe.Report, error) {
		called = true
		return nil, nil
	})

	_, _, err := s.handleProbePlatform(context.Background(), nil, ProbePlatformInput{API: "vulkan"})
	var verr *config.ValidationError
	if !errors.As(err, &verr) || verr.Path != "api" {
		t.Fatalf("expected api validation error, got %v", err)
	}
	if called {
		t.Fatalf("probe ran with invalid config")
	}
}

func TestHandleProbePlatform_Failure(t *testing.T) {
	cause := errors.New("no display")
	s := testServer(func(probe.Request) (*probe.Report, error) { return nil, cause })

	_, _, err := s.handleProbePlatform(context.Background(), nil, ProbePlatformInput{})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
}

func TestHandleListPlatforms(t *testing.T) {
	s := testServer(nil)

	_, all, err := s.handleListPlatforms(context.Background(), nil, ListPlatformsInput{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all.Platforms) != 2 {
		t.Fatalf("expected 2 platforms, got %d", len(all.Platforms))
	}

	_, avail, _ := s.handleListPlatforms(context.Background(), nil, ListPlatformsInput{AvailableOnly: true})
	if len(avail.Platforms) != 1 || avail.Platforms[0].Name != "x11_egl" {
		t.Fatalf("unexpected available platforms: %+v", avail.Platforms)
	}
}
