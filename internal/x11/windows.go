package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// WindowTitle is the _NET_WM_NAME given to every window.
const WindowTitle = "glwaffle"

// Window is a top-level window with its own colormap.
type Window struct {
	conn     *Connection
	ID       xproto.Window
	colormap xproto.Colormap
}

// CreateWindow creates an unmapped window using visual. Fullscreen windows
// cover the monitor under the pointer and ignore width and height.
func (c *Connection) CreateWindow(visual xproto.Visualid, width, height int, fullscreen bool) (*Window, error) {
	depth, ok := depthForVisual(c.Screen, visual)
	if !ok {
		return nil, fmt.Errorf("visual %#x is not available on the default screen", visual)
	}
	conn := c.XUtil.Conn()

	cmap, err := xproto.NewColormapId(conn)
	if err != nil {
		return nil, fmt.Errorf("allocate colormap id: %w", err)
	}
	if err := xproto.CreateColormapChecked(conn, xproto.ColormapAllocNone, cmap, c.Root, visual).Check(); err != nil {
		return nil, fmt.Errorf("create colormap: %w", err)
	}

	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		xproto.FreeColormap(conn, cmap)
		return nil, fmt.Errorf("allocate window id: %w", err)
	}

	x, y := 0, 0
	if fullscreen {
		mon := c.fullscreenMonitor()
		x, y, width, height = mon.X, mon.Y, mon.Width, mon.Height
	}

	// Values are ordered by mask bit.
	mask := uint32(xproto.CwBackPixel | xproto.CwBorderPixel | xproto.CwEventMask | xproto.CwColormap)
	values := []uint32{
		0,
		0,
		xproto.EventMaskStructureNotify | xproto.EventMaskExposure,
		uint32(cmap),
	}
	err = xproto.CreateWindowChecked(conn, depth, wid, c.Root,
		int16(x), int16(y), uint16(width), uint16(height), 0,
		xproto.WindowClassInputOutput, visual, mask, values).Check()
	if err != nil {
		xproto.FreeColormap(conn, cmap)
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &Window{conn: c, ID: wid, colormap: cmap}
	if err := ewmh.WmNameSet(c.XUtil, wid, WindowTitle); err != nil {
		w.Destroy()
		return nil, fmt.Errorf("set window title: %w", err)
	}
	if fullscreen {
		if err := ewmh.WmStateSet(c.XUtil, wid, []string{"_NET_WM_STATE_FULLSCREEN"}); err != nil {
			w.Destroy()
			return nil, fmt.Errorf("request fullscreen: %w", err)
		}
	}
	return w, nil
}

// Handle returns the XID as a native window handle.
func (w *Window) Handle() uintptr {
	return uintptr(w.ID)
}

// Show maps the window and asks the window manager to activate it.
func (w *Window) Show() error {
	conn := w.conn.XUtil.Conn()
	if err := xproto.MapWindowChecked(conn, w.ID).Check(); err != nil {
		return fmt.Errorf("map window: %w", err)
	}
	return w.conn.activate(w.ID)
}

// Destroy destroys the window and frees its colormap.
func (w *Window) Destroy() error {
	conn := w.conn.XUtil.Conn()
	var errs []error
	if err := xproto.DestroyWindowChecked(conn, w.ID).Check(); err != nil {
		errs = append(errs, fmt.Errorf("destroy window: %w", err))
	}
	if err := xproto.FreeColormapChecked(conn, w.colormap).Check(); err != nil {
		errs = append(errs, fmt.Errorf("free colormap: %w", err))
	}
	return errors.Join(errs...)
}

// activate sends _NET_ACTIVE_WINDOW to the root window. The message is
// built by hand because the xgbutil ewmh request helpers panic on this
// library version.
func (c *Connection) activate(wid xproto.Window) error {
	const name = "_NET_ACTIVE_WINDOW"
	atom, err := xproto.InternAtom(c.XUtil.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return fmt.Errorf("intern %s: %w", name, err)
	}

	const sourceIndication = 2 // pager/direct action
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: wid,
		Type:   atom.Atom,
		Data:   xproto.ClientMessageDataUnionData32New([]uint32{sourceIndication, 0, 0, 0, 0}),
	}
	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		c.Root,
		xproto.EventMaskSubstructureRedirect|xproto.EventMaskSubstructureNotify,
		string(ev.Bytes()),
	).Check()
}

// depthForVisual finds the depth that lists visual on screen.
func depthForVisual(screen *xproto.ScreenInfo, visual xproto.Visualid) (byte, bool) {
	if screen == nil {
		return 0, false
	}
	for _, d := range screen.AllowedDepths {
		for _, v := range d.Visuals {
			if v.VisualId == visual {
				return d.Depth, true
			}
		}
	}
	return 0, false
}
