package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/glwaffle/internal/runtimepath"
)

// SourceKind says where a value came from.
type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
)

// Source locates a value. Line and Column are set for file values.
type Source struct {
	Kind   SourceKind
	File   string
	Line   int
	Column int
}

// LoadResult is a loaded configuration and where each value came from.
type LoadResult struct {
	Config *Config
	// Sources maps a dotted YAML path to the file position that last set it.
	Sources map[string]Source
	// Files lists every loaded file, includes first.
	Files []string
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (*LoadResult, error) {
	path, err := runtimepath.ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads path and the files it includes. A missing file yields
// the defaults.
func LoadFromPath(path string) (*LoadResult, error) {
	l := &loader{seen: make(map[string]bool), sources: make(map[string]Source)}

	var raw RawConfig
	if _, err := os.Stat(path); err == nil {
		if raw, err = l.load(path); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := BuildEffectiveConfig(raw)
	if err := cfg.Validate(); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			if src, ok := l.sources[verr.Path]; ok {
				verr.Source = src
			}
		}
		return nil, err
	}
	return &LoadResult{Config: cfg, Sources: l.sources, Files: l.files}, nil
}

// loader merges a file tree. Includes are applied before the including file,
// so the including file wins. A file reached twice is merged once.
type loader struct {
	seen    map[string]bool
	stack   []string
	files   []string
	sources map[string]Source
}

func (l *loader) load(path string) (RawConfig, error) {
	file := canonicalPath(path)
	for _, open := range l.stack {
		if open == file {
			return RawConfig{}, fmt.Errorf("include cycle detected: %s -> %s", strings.Join(l.stack, " -> "), file)
		}
	}
	if l.seen[file] {
		return RawConfig{}, nil
	}
	l.seen[file] = true

	data, err := os.ReadFile(file)
	if err != nil {
		return RawConfig{}, fmt.Errorf("%s: failed to read: %w", file, err)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return RawConfig{}, fmt.Errorf("%s: failed to parse yaml: %w", file, err)
	}
	var own RawConfig
	if err := decodeStrictYAML(data, &own); err != nil {
		return RawConfig{}, fmt.Errorf("%s: %w", file, err)
	}
	positions := make(map[string]Source)
	if len(doc.Content) > 0 {
		recordSources(doc.Content[0], file, "", positions)
	}

	l.stack = append(l.stack, file)
	defer func() { l.stack = l.stack[:len(l.stack)-1] }()

	var merged RawConfig
	for _, inc := range own.Include {
		paths, err := includePaths(file, inc)
		if err != nil {
			at := positions["include"]
			return RawConfig{}, fmt.Errorf("%s:%d:%d: include %q: %w", file, at.Line, at.Column, inc, err)
		}
		for _, p := range paths {
			incRaw, err := l.load(p)
			if err != nil {
				return RawConfig{}, err
			}
			merged = merged.merge(incRaw)
		}
	}

	for k, src := range positions {
		l.sources[k] = src
	}
	l.files = append(l.files, file)
	return merged.merge(own), nil
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func canonicalPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}
	return path
}

// includePaths resolves inc relative to the including file. A directory
// expands to its *.yaml and *.yml files in name order.
func includePaths(from, inc string) ([]string, error) {
	switch {
	case inc == "":
		return nil, fmt.Errorf("path is empty")
	case inc == "~" || strings.HasPrefix(inc, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		inc = filepath.Join(home, strings.TrimPrefix(inc, "~"))
	case !filepath.IsAbs(inc):
		inc = filepath.Join(filepath.Dir(from), inc)
	}

	info, err := os.Stat(inc)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{inc}, nil
	}
	var out []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(inc, pattern))
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	sort.Strings(out)
	return out, nil
}

// recordSources stores the position of every mapping value under node,
// keyed by dotted path.
func recordSources(node *yaml.Node, file, prefix string, out map[string]Source) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		if prefix != "" {
			key = prefix + "." + key
		}
		out[key] = Source{Kind: SourceFile, File: file, Line: val.Line, Column: val.Column}
		recordSources(val, file, key, out)
	}
}
