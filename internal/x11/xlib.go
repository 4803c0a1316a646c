package x11

import (
	"fmt"

	"github.com/1broseidon/glwaffle/internal/dl"
)

// Xlib is libX11, opened for the Display* that eglGetDisplay needs. xgb
// cannot supply one.
type Xlib struct {
	lib *dl.Library

	openDisplay  func(name string) uintptr
	closeDisplay func(dpy uintptr) int32
}

// LoadXlib opens libX11.
func LoadXlib() (*Xlib, error) {
	lib, err := dl.OpenKey(dl.KeyX11)
	if err != nil {
		return nil, err
	}
	x := &Xlib{lib: lib}
	if err := lib.Bind(&x.openDisplay, "XOpenDisplay"); err != nil {
		lib.Close()
		return nil, err
	}
	if err := lib.Bind(&x.closeDisplay, "XCloseDisplay"); err != nil {
		lib.Close()
		return nil, err
	}
	return x, nil
}

// OpenDisplay calls XOpenDisplay. An empty name uses $DISPLAY.
func (x *Xlib) OpenDisplay(name string) (uintptr, error) {
	d := x.openDisplay(name)
	if d == 0 {
		return 0, fmt.Errorf("XOpenDisplay(%q) failed", name)
	}
	return d, nil
}

// CloseDisplay calls XCloseDisplay. A zero display is a no-op.
func (x *Xlib) CloseDisplay(dpy uintptr) error {
	if dpy == 0 {
		return nil
	}
	if rc := x.closeDisplay(dpy); rc != 0 {
		return fmt.Errorf("XCloseDisplay failed: %d", rc)
	}
	return nil
}

// Close releases libX11.
func (x *Xlib) Close() error {
	return x.lib.Close()
}
