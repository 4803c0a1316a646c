// Package x11egl is the x11_egl platform: EGL on an Xlib display, with
// windows created over an xgb connection to the same server.
package x11egl

import (
	"errors"
	"log/slog"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/glwaffle/internal/configattrs"
	"github.com/1broseidon/glwaffle/internal/egl"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/platform"
	"github.com/1broseidon/glwaffle/internal/werror"
	"github.com/1broseidon/glwaffle/internal/x11"
)

func init() {
	platform.Register(enum.PlatformX11EGL, New)
}

// Backend implements platform.Backend for x11_egl.
type Backend struct {
	*egl.Backend
	xlib *x11.Xlib
}

// New loads libEGL and libX11.
func New(log *slog.Logger) (platform.Backend, error) {
	eb, err := egl.NewBackend(log)
	if err != nil {
		return nil, err
	}
	xlib, err := x11.LoadXlib()
	if err != nil {
		eb.Teardown()
		return nil, err
	}
	return &Backend{Backend: eb, xlib: xlib}, nil
}

// ConnectDisplay opens name twice: through Xlib for EGL and through xgb
// for window management.
func (b *Backend) ConnectDisplay(name string) (platform.Display, error) {
	conn, err := x11.NewConnection(name)
	if err != nil {
		return nil, werror.Setf(werror.Unknown, "%v", err)
	}
	xdpy, err := b.xlib.OpenDisplay(name)
	if err != nil {
		conn.Close()
		return nil, werror.Setf(werror.Unknown, "%v", err)
	}
	ws := &windowSystem{conn: conn, xlib: b.xlib, xdpy: xdpy}

	edpy, err := b.Lib.GetDisplay(xdpy)
	if err != nil {
		ws.Close()
		return nil, err
	}
	b.Log.Debug("x11 display connected", "name", name, "screen_root", conn.Root)
	d, err := b.Initialize(edpy, ws)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (b *Backend) Teardown() error {
	return errors.Join(b.Backend.Teardown(), b.xlib.Close())
}

// xConn is the xgb side of a display.
type xConn interface {
	CreateWindow(visual xproto.Visualid, width, height int, fullscreen bool) (*x11.Window, error)
	Close()
}

// xDisplay is the Xlib side of a display.
type xDisplay interface {
	CloseDisplay(dpy uintptr) error
}

type windowSystem struct {
	conn xConn
	xlib xDisplay
	xdpy uintptr
}

func (ws *windowSystem) CreateWindow(visualID int32, attrs configattrs.WindowAttrs) (egl.NativeWindow, error) {
	w, err := ws.conn.CreateWindow(xproto.Visualid(visualID),
		int(attrs.Width), int(attrs.Height), attrs.Fullscreen)
	if err != nil {
		return nil, werror.Setf(werror.Unknown, "%v", err)
	}
	return w, nil
}

// Close closes both connections. Only XCloseDisplay reports failure; the
// xgb connection close has no result.
func (ws *windowSystem) Close() error {
	ws.conn.Close()
	if err := ws.xlib.CloseDisplay(ws.xdpy); err != nil {
		return werror.Setf(werror.Unknown, "%v", err)
	}
	return nil
}
