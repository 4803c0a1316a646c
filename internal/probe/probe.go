// Package probe creates a context on a platform and reports what the GL
// implementation behind it says about itself.
package probe

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	waffle "github.com/1broseidon/glwaffle"
	"github.com/1broseidon/glwaffle/internal/config"
	"github.com/1broseidon/glwaffle/internal/enum"
)

// Request describes one probe.
type Request struct {
	Config *config.Config
	// Verbose adds the extension list.
	Verbose bool
	// LoadGL binds GL entry points once a context is current. Nil uses
	// the real entry points.
	LoadGL func(Resolver) (GL, error)
}

// Report is what a probe found.
type Report struct {
	Platform        string   `json:"platform"`
	API             string   `json:"api"`
	Vendor          string   `json:"vendor"`
	Renderer        string   `json:"renderer"`
	Version         string   `json:"version"`
	ShadingLanguage string   `json:"shading_language_version,omitempty"`
	Extensions      []string `json:"extensions,omitempty"`
}

// WindowSize is the size of the window made current during a probe.
const WindowSize = 320

var dlForAPI = map[enum.Enum]enum.Enum{
	enum.ContextOpenGL:    enum.DLOpenGL,
	enum.ContextOpenGLES1: enum.DLOpenGLES1,
	enum.ContextOpenGLES2: enum.DLOpenGLES2,
	enum.ContextOpenGLES3: enum.DLOpenGLES3,
}

// Run initializes the configured platform, makes a context current on a
// window, reads the GL strings and tears everything down again. It locks
// the calling goroutine to its thread for the duration.
func Run(req Request) (rep *Report, err error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer waffle.ReleaseThread()

	cfg := req.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	defer waffle.SetLibraryPaths(cfg.Libraries)()
	load := req.LoadGL
	if load == nil {
		load = LoadGL
	}

	if err := waffle.Init(cfg.InitAttribs()); err != nil {
		return nil, fmt.Errorf("init %s: %w", cfg.Platform, err)
	}
	defer func() {
		if ferr := waffle.Finish(); ferr != nil && err == nil {
			err = fmt.Errorf("finish: %w", ferr)
		}
	}()

	d, err := waffle.ConnectDisplay(cfg.Display)
	if err != nil {
		return nil, fmt.Errorf("connect display: %w", err)
	}
	defer d.Disconnect()

	c, err := waffle.ChooseConfig(d, cfg.ConfigAttribs())
	if err != nil {
		return nil, fmt.Errorf("choose config: %w", err)
	}
	defer c.Destroy()

	ctx, err := waffle.CreateContext(c, nil)
	if err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}
	defer ctx.Destroy()

	w, err := waffle.CreateWindow(c, WindowSize, WindowSize)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	defer w.Destroy()

	if err := waffle.MakeCurrent(d, w, ctx); err != nil {
		return nil, fmt.Errorf("make current: %w", err)
	}
	defer waffle.MakeCurrent(d, nil, nil)

	gl, err := load(resolverFor(dlForAPI[config.APIs[cfg.API]]))
	if err != nil {
		return nil, err
	}

	rep = &Report{
		Platform: cfg.Platform,
		API:      cfg.API,
		Vendor:   gl.String(glVendor),
		Renderer: gl.String(glRenderer),
		Version:  gl.String(glVersion),
	}
	if cfg.API != "gles1" {
		rep.ShadingLanguage = gl.String(glShadingLanguageVersion)
	}
	if req.Verbose {
		rep.Extensions = gl.Extensions()
		sort.Strings(rep.Extensions)
	}
	return rep, nil
}

// resolverFor prefers the API's own library, where core entry points are
// exported directly, over the platform's GetProcAddress.
func resolverFor(token enum.Enum) Resolver {
	return func(name string) (uintptr, error) {
		if ok, _ := waffle.DLCanOpen(token); ok {
			if p, err := waffle.DLSym(token, name); err == nil && p != 0 {
				return p, nil
			}
		}
		p, err := waffle.GetProcAddress(name)
		if err != nil {
			return 0, err
		}
		if p == 0 {
			return 0, fmt.Errorf("%s not found", name)
		}
		return p, nil
	}
}

// WriteText prints r the way wflinfo does. A positive width wraps the
// extension list at that column.
func (r *Report) WriteText(w io.Writer, width int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Waffle platform: %s\n", r.Platform)
	fmt.Fprintf(&b, "Waffle api: %s\n", r.API)
	fmt.Fprintf(&b, "OpenGL vendor string: %s\n", r.Vendor)
	fmt.Fprintf(&b, "OpenGL renderer string: %s\n", r.Renderer)
	fmt.Fprintf(&b, "OpenGL version string: %s\n", r.Version)
	if r.ShadingLanguage != "" {
		fmt.Fprintf(&b, "OpenGL shading language version string: %s\n", r.ShadingLanguage)
	}
	if len(r.Extensions) > 0 {
		b.WriteString("OpenGL extensions:")
		col := len("OpenGL extensions:")
		for _, ext := range r.Extensions {
			if width > 0 && col+1+len(ext) > width {
				b.WriteString("\n   ")
				col = 3
			}
			b.WriteString(" ")
			b.WriteString(ext)
			col += 1 + len(ext)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON prints r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// PlatformInfo describes one platform name.
type PlatformInfo struct {
	Name      string `json:"name"`
	Enum      string `json:"enum"`
	Available bool   `json:"available"`
}

// Platforms lists every platform name and whether this build can
// initialize it.
func Platforms() []PlatformInfo {
	available := make(map[enum.Enum]bool)
	for _, tag := range waffle.Registered() {
		available[tag] = true
	}
	var out []PlatformInfo
	for _, name := range config.PlatformNames() {
		tag := config.Platforms[name]
		out = append(out, PlatformInfo{
			Name:      name,
			Enum:      enum.Describe(tag),
			Available: available[tag],
		})
	}
	return out
}
