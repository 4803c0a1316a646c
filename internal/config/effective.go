package config

import "fmt"

// ValidationError is a problem with one configuration value.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// BuildEffectiveConfig applies raw on top of the defaults.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if raw.Platform != nil {
		cfg.Platform = *raw.Platform
	}
	if raw.API != nil {
		cfg.API = *raw.API
	}
	if raw.Version != nil {
		cfg.Version = *raw.Version
	}
	if raw.Profile != nil {
		cfg.Profile = *raw.Profile
	}
	if raw.ForwardCompatible != nil {
		cfg.ForwardCompatible = *raw.ForwardCompatible
	}
	if raw.Debug != nil {
		cfg.Debug = *raw.Debug
	}
	if raw.Display != nil {
		cfg.Display = *raw.Display
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.Format != nil {
		cfg.Format = *raw.Format
	}
	for k, v := range raw.Libraries {
		cfg.Libraries[k] = v
	}
	return cfg
}
