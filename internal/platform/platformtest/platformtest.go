// Package platformtest provides an in-memory backend that records every call
// forwarded to it.
package platformtest

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/1broseidon/glwaffle/internal/configattrs"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/platform"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// Backend is a fake platform.Backend.
type Backend struct {
	mu    sync.Mutex
	calls []string

	// APIs lists the context APIs displays claim to support. Nil means all.
	APIs []enum.Enum
	// Libraries lists the dl tokens DLCanOpen accepts.
	Libraries []enum.Enum
	// FailConnect makes ConnectDisplay fail with WAFFLE_ERROR_UNKNOWN.
	FailConnect bool
	// TeardownErr is returned by Teardown.
	TeardownErr error

	current struct {
		window *Window
		ctx    *Context
	}
}

var _ platform.Backend = (*Backend)(nil)

// Install registers a factory under tag that hands out b on every Init, and
// returns a function removing it.
func Install(tag enum.Enum, b *Backend) func() {
	platform.Register(tag, func(*slog.Logger) (platform.Backend, error) {
		b.record("init")
		return b, nil
	})
	return func() { platform.Unregister(tag) }
}

// InstallFailing registers a factory under tag that always fails with code.
func InstallFailing(tag enum.Enum, code werror.Code) func() {
	platform.Register(tag, func(*slog.Logger) (platform.Backend, error) {
		return nil, &werror.Error{Code: code, Message: "backend unavailable"}
	})
	return func() { platform.Unregister(tag) }
}

func (b *Backend) record(format string, args ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, fmt.Sprintf(format, args...))
}

// Calls returns a copy of the recorded call log.
func (b *Backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

// Reset clears the call log.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = nil
}

// Current returns what the last MakeCurrent bound.
func (b *Backend) Current() (*Window, *Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current.window, b.current.ctx
}

func (b *Backend) ConnectDisplay(name string) (platform.Display, error) {
	b.record("connect_display %q", name)
	if b.FailConnect {
		return nil, errors.New("no display")
	}
	return &Display{b: b, Name: name}, nil
}

func (b *Backend) GetProcAddress(name string) uintptr {
	b.record("get_proc_address %s", name)
	if name == "" {
		return 0
	}
	return 0x1000 + uintptr(len(name))
}

func (b *Backend) DLCanOpen(dl enum.Enum) bool {
	b.record("dl_can_open %s", enum.Describe(dl))
	for _, l := range b.Libraries {
		if l == dl {
			return true
		}
	}
	return false
}

func (b *Backend) DLSym(dl enum.Enum, name string) (uintptr, error) {
	b.record("dl_sym %s %s", enum.Describe(dl), name)
	if !b.DLCanOpen(dl) {
		return 0, werror.Setf(werror.BadParameter, "cannot open %s", enum.Describe(dl))
	}
	return 0x2000 + uintptr(len(name)), nil
}

func (b *Backend) Teardown() error {
	b.record("teardown")
	return b.TeardownErr
}

// Display is a fake platform.Display.
type Display struct {
	b    *Backend
	Name string
}

func (d *Display) Disconnect() error {
	d.b.record("disconnect_display")
	return nil
}

func (d *Display) SupportsContextAPI(api enum.Enum) bool {
	d.b.record("supports_context_api %s", enum.Describe(api))
	if d.b.APIs == nil {
		return true
	}
	for _, a := range d.b.APIs {
		if a == api {
			return true
		}
	}
	return false
}

func (d *Display) ChooseConfig(attrs configattrs.Attrs) (platform.Config, error) {
	d.b.record("choose_config %s", enum.Describe(attrs.ContextAPI))
	if !d.SupportsContextAPI(attrs.ContextAPI) {
		return nil, werror.Setf(werror.UnsupportedOnPlatform, "%s unsupported", enum.Describe(attrs.ContextAPI))
	}
	return &Config{b: d.b, Attrs: attrs}, nil
}

func (d *Display) MakeCurrent(window platform.Window, ctx platform.Context) error {
	w, _ := window.(*Window)
	c, _ := ctx.(*Context)
	d.b.record("make_current window=%v context=%v", w != nil, c != nil)
	d.b.mu.Lock()
	d.b.current.window, d.b.current.ctx = w, c
	d.b.mu.Unlock()
	return nil
}

// Config is a fake platform.Config.
type Config struct {
	b     *Backend
	Attrs configattrs.Attrs
}

func (c *Config) Destroy() error {
	c.b.record("destroy_config")
	return nil
}

func (c *Config) CreateContext(share platform.Context) (platform.Context, error) {
	s, _ := share.(*Context)
	c.b.record("create_context shared=%v", s != nil)
	return &Context{b: c.b, Share: s}, nil
}

func (c *Config) CreateWindow(attrs configattrs.WindowAttrs) (platform.Window, error) {
	c.b.record("create_window %dx%d", attrs.Width, attrs.Height)
	return &Window{b: c.b, Attrs: attrs}, nil
}

// Context is a fake platform.Context.
type Context struct {
	b     *Backend
	Share *Context
}

func (c *Context) Destroy() error {
	c.b.record("destroy_context")
	return nil
}

// Window is a fake platform.Window.
type Window struct {
	b     *Backend
	Attrs configattrs.WindowAttrs
	Shown bool
}

func (w *Window) Destroy() error {
	w.b.record("destroy_window")
	return nil
}

func (w *Window) Show() error {
	w.b.record("show_window")
	w.Shown = true
	return nil
}

func (w *Window) SwapBuffers() error {
	w.b.record("swap_buffers")
	return nil
}
