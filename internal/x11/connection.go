// Package x11 creates the native windows that back EGL window surfaces on
// an X server.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Connection is an xgb connection to one X display.
type Connection struct {
	XUtil  *xgbutil.XUtil
	Root   xproto.Window
	Screen *xproto.ScreenInfo
}

// NewConnection connects to display. An empty name uses $DISPLAY.
func NewConnection(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to X display %q: %w", display, err)
	}
	return &Connection{
		XUtil:  xu,
		Root:   xu.RootWin(),
		Screen: xu.Screen(),
	}, nil
}

// Close disconnects from the X server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
