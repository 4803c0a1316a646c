package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

// RawConfig is one file as written. Nil fields were not set.
type RawConfig struct {
	Include IncludeList `yaml:"include"`

	Platform          *string           `yaml:"platform"`
	API               *string           `yaml:"api"`
	Version           *string           `yaml:"version"`
	Profile           *string           `yaml:"profile"`
	ForwardCompatible *bool             `yaml:"forward_compatible"`
	Debug             *bool             `yaml:"debug"`
	Display           *string           `yaml:"display"`
	Libraries         map[string]string `yaml:"libraries"`
	LogLevel          *string           `yaml:"log_level"`
	Format            *string           `yaml:"format"`
}

// merge overlays o on r. Library maps merge per key.
func (r RawConfig) merge(o RawConfig) RawConfig {
	out := r
	if o.Platform != nil {
		out.Platform = o.Platform
	}
	if o.API != nil {
		out.API = o.API
	}
	if o.Version != nil {
		out.Version = o.Version
	}
	if o.Profile != nil {
		out.Profile = o.Profile
	}
	if o.ForwardCompatible != nil {
		out.ForwardCompatible = o.ForwardCompatible
	}
	if o.Debug != nil {
		out.Debug = o.Debug
	}
	if o.Display != nil {
		out.Display = o.Display
	}
	if o.LogLevel != nil {
		out.LogLevel = o.LogLevel
	}
	if o.Format != nil {
		out.Format = o.Format
	}
	if len(o.Libraries) > 0 {
		libs := make(map[string]string, len(r.Libraries)+len(o.Libraries))
		for k, v := range r.Libraries {
			libs[k] = v
		}
		for k, v := range o.Libraries {
			libs[k] = v
		}
		out.Libraries = libs
	}
	out.Include = nil
	return out
}
