package x11egl

import (
	"errors"
	"runtime"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/glwaffle/internal/configattrs"
	"github.com/1broseidon/glwaffle/internal/egl"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/platform"
	"github.com/1broseidon/glwaffle/internal/werror"
	"github.com/1broseidon/glwaffle/internal/x11"
)

func TestRegistered(t *testing.T) {
	assert.Contains(t, platform.Registered(), enum.PlatformX11EGL)
}

var (
	_ platform.Backend = (*Backend)(nil)
	_ egl.WindowSystem = (*windowSystem)(nil)
	_ xConn            = (*x11.Connection)(nil)
	_ xDisplay         = (*x11.Xlib)(nil)
)

type fakeConn struct{ closed bool }

func (c *fakeConn) CreateWindow(xproto.Visualid, int, int, bool) (*x11.Window, error) {
	return nil, errors.New("no server")
}
func (c *fakeConn) Close() { c.closed = true }

type fakeDisplay struct {
	closed []uintptr
	err    error
}

func (d *fakeDisplay) CloseDisplay(dpy uintptr) error {
	d.closed = append(d.closed, dpy)
	return d.err
}

func TestWindowSystemClose(t *testing.T) {
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
	werror.Reset()
	t.Cleanup(werror.Reset)

	conn, xdpy := &fakeConn{}, &fakeDisplay{}
	ws := &windowSystem{conn: conn, xlib: xdpy, xdpy: 0x1234}
	require.NoError(t, ws.Close())
	assert.True(t, conn.closed)
	assert.Equal(t, []uintptr{0x1234}, xdpy.closed)
}

func TestWindowSystemClose_ReportsXCloseDisplay(t *testing.T) {
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
	werror.Reset()
	t.Cleanup(werror.Reset)

	conn := &fakeConn{}
	ws := &windowSystem{conn: conn, xlib: &fakeDisplay{err: errors.New("XCloseDisplay failed: 1")}, xdpy: 1}
	err := ws.Close()
	require.Error(t, err)
	assert.Equal(t, werror.Unknown, werror.CodeOf(err))
	assert.Contains(t, err.Error(), "XCloseDisplay")
	assert.True(t, conn.closed, "xgb connection is closed even when Xlib fails")
}

func TestWindowSystemCreateWindow_Error(t *testing.T) {
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
	werror.Reset()
	t.Cleanup(werror.Reset)

	ws := &windowSystem{conn: &fakeConn{}, xlib: &fakeDisplay{}}
	_, err := ws.CreateWindow(0x21, configattrs.WindowAttrs{Width: 64, Height: 64})
	require.Error(t, err)
	assert.Equal(t, werror.Unknown, werror.CodeOf(err))
}
