package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value at the given YAML-like path and its source.
//
// Supported paths:
//
//	platform
//	api
//	version
//	profile
//	forward_compatible
//	debug
//	display
//	log_level
//	format
//	libraries
//	libraries.<key>
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	parts := strings.Split(path, ".")
	if parts[0] == "libraries" {
		switch len(parts) {
		case 1:
			return cfg.Libraries, nil
		case 2:
			p, ok := cfg.Libraries[parts[1]]
			if !ok {
				return nil, fmt.Errorf("unknown libraries entry %q", parts[1])
			}
			return p, nil
		}
		return nil, fmt.Errorf("unknown path: %s", path)
	}
	if len(parts) != 1 {
		return nil, fmt.Errorf("unknown path: %s", path)
	}

	switch path {
	case "platform":
		return cfg.Platform, nil
	case "api":
		return cfg.API, nil
	case "version":
		return cfg.Version, nil
	case "profile":
		return cfg.Profile, nil
	case "forward_compatible":
		return cfg.ForwardCompatible, nil
	case "debug":
		return cfg.Debug, nil
	case "display":
		return cfg.Display, nil
	case "log_level":
		return cfg.LogLevel, nil
	case "format":
		return cfg.Format, nil
	default:
		return nil, fmt.Errorf("unknown path: %s", path)
	}
}
