package waffle

import (
	"github.com/1broseidon/glwaffle/internal/api"
	"github.com/1broseidon/glwaffle/internal/attrib"
	"github.com/1broseidon/glwaffle/internal/configattrs"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/platform"
)

// Window is a drawable created from a config.
type Window struct {
	api.Object
	attrs configattrs.WindowAttrs
	impl  platform.Window
}

func (w *Window) object() *api.Object {
	if w == nil {
		return nil
	}
	return &w.Object
}

// CreateWindow creates a width by height window for cfg.
func CreateWindow(cfg *Config, width, height int32) (*Window, error) {
	return CreateWindow2(cfg, attrib.Widen([]int32{
		enum.WindowWidth, width,
		enum.WindowHeight, height,
		0,
	}))
}

// CreateWindow2 creates a window described by a zero-terminated,
// pointer-width attribute list of WAFFLE_WINDOW_* keys.
func CreateWindow2(cfg *Config, attribs []int) (*Window, error) {
	inst, err := enter(cfg)
	if err != nil {
		return nil, err
	}
	wa, err := configattrs.ParseWindow(attribs)
	if err != nil {
		return nil, err
	}

	impl, err := cfg.impl.CreateWindow(wa)
	if err != nil {
		return nil, platform.Report(err)
	}
	w := &Window{Object: api.NewChild(inst.ID, &cfg.Object), attrs: wa, impl: impl}
	logger().Debug("waffle_window_create",
		"window", w.ObjectID,
		"width", wa.Width,
		"height", wa.Height,
		"fullscreen", wa.Fullscreen)
	return w, nil
}

// Size returns the requested width and height. Fullscreen windows report
// what was requested, not the monitor size.
func (w *Window) Size() (width, height int32) {
	return w.attrs.Width, w.attrs.Height
}

// Show makes the window visible.
func (w *Window) Show() error {
	if _, err := enter(w); err != nil {
		return err
	}
	return platform.Report(w.impl.Show())
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() error {
	if _, err := enter(w); err != nil {
		return err
	}
	return platform.Report(w.impl.SwapBuffers())
}

// Destroy releases the window.
func (w *Window) Destroy() error {
	if _, err := enter(w); err != nil {
		return err
	}
	return platform.Report(w.impl.Destroy())
}
