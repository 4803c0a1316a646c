// Package config loads the YAML configuration of the glwaffle tools.
package config

import (
	"fmt"
	"strings"

	"github.com/1broseidon/glwaffle/internal/attrib"
	"github.com/1broseidon/glwaffle/internal/dl"
	"github.com/1broseidon/glwaffle/internal/enum"
)

// Config is the effective configuration.
type Config struct {
	// Platform is a key of Platforms.
	Platform string `yaml:"platform"`
	// API is a key of APIs.
	API string `yaml:"api"`
	// Version is "MAJOR.MINOR", or empty for the API default.
	Version string `yaml:"version"`
	// Profile is a key of Profiles, or empty for the API default.
	Profile           string `yaml:"profile"`
	ForwardCompatible bool   `yaml:"forward_compatible"`
	Debug             bool   `yaml:"debug"`
	// Display is the native display name. Empty uses the platform default.
	Display string `yaml:"display"`
	// Libraries overrides the shared library path per key (gl, gles1,
	// gles2, gles3, egl, x11).
	Libraries map[string]string `yaml:"libraries"`
	LogLevel  string            `yaml:"log_level"`
	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Platform:  "x11_egl",
		API:       "gl",
		Libraries: map[string]string{},
		LogLevel:  "warning",
		Format:    "text",
	}
}

var libraryKeys = []string{dl.KeyGL, dl.KeyGLES1, dl.KeyGLES2, dl.KeyGLES3, dl.KeyEGL, dl.KeyX11}

// Validate checks every field and returns the first problem as a
// *ValidationError.
func (c *Config) Validate() error {
	if _, ok := Platforms[c.Platform]; !ok {
		return &ValidationError{Path: "platform", Err: fmt.Errorf("platform must be one of: %s", strings.Join(PlatformNames(), ", "))}
	}
	if _, ok := APIs[c.API]; !ok {
		return &ValidationError{Path: "api", Err: fmt.Errorf("api must be one of: %s", strings.Join(APINames(), ", "))}
	}
	if c.Version != "" {
		if _, _, err := ParseVersion(c.Version); err != nil {
			return &ValidationError{Path: "version", Err: err}
		}
	}
	if c.Profile != "" {
		if _, ok := Profiles[c.Profile]; !ok {
			return &ValidationError{Path: "profile", Err: fmt.Errorf("profile must be one of: core, compat, none")}
		}
	}
	if c.Libraries == nil {
		return &ValidationError{Path: "libraries", Err: fmt.Errorf("libraries must not be null")}
	}
	for key, path := range c.Libraries {
		known := false
		for _, k := range libraryKeys {
			known = known || k == key
		}
		if !known {
			return &ValidationError{Path: "libraries." + key, Err: fmt.Errorf("library key must be one of: %s", strings.Join(libraryKeys, ", "))}
		}
		if strings.TrimSpace(path) == "" {
			return &ValidationError{Path: "libraries." + key, Err: fmt.Errorf("library path must not be empty")}
		}
	}
	if c.LogLevel != "debug" && c.LogLevel != "info" && c.LogLevel != "warning" && c.LogLevel != "error" {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	switch c.Format {
	case "text", "json":
	default:
		return &ValidationError{Path: "format", Err: fmt.Errorf("format must be one of: text, json")}
	}
	return nil
}

// PlatformTag returns the WAFFLE_PLATFORM_* value of c.Platform.
func (c *Config) PlatformTag() enum.Enum {
	return Platforms[c.Platform]
}

// InitAttribs returns the waffle init list for c.
func (c *Config) InitAttribs() []int32 {
	var b attrib.Builder[int32]
	return b.Append(enum.Platform, c.PlatformTag()).List()
}

// ConfigAttribs returns the choose-config list for c. c must be valid.
func (c *Config) ConfigAttribs() []int32 {
	var b attrib.Builder[int32]
	b.Append(enum.ContextAPI, APIs[c.API])
	if c.Version != "" {
		major, minor, _ := ParseVersion(c.Version)
		b.Append(enum.ContextMajorVersion, major).Append(enum.ContextMinorVersion, minor)
	}
	if c.Profile != "" && c.Profile != "none" {
		b.Append(enum.ContextProfile, Profiles[c.Profile])
	}
	if c.ForwardCompatible {
		b.Append(enum.ContextForwardCompatible, 1)
	}
	if c.Debug {
		b.Append(enum.ContextDebug, 1)
	}
	return b.List()
}
