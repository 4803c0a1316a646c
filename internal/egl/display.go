package egl

import (
	"errors"
	"log/slog"

	"github.com/1broseidon/glwaffle/internal/configattrs"
	"github.com/1broseidon/glwaffle/internal/dl"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/platform"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// GetDisplay wraps eglGetDisplay.
func (l *Lib) GetDisplay(native uintptr) (EGLDisplay, error) {
	d := l.getDisplay(native)
	if d == 0 {
		return 0, l.errorf("eglGetDisplay")
	}
	return d, nil
}

// GetPlatformDisplay wraps eglGetPlatformDisplayEXT.
func (l *Lib) GetPlatformDisplay(platformToken uint32, native uintptr) (EGLDisplay, error) {
	if l.getPlatformDisplayExt == nil {
		return 0, werror.Setf(werror.UnsupportedOnPlatform, "eglGetPlatformDisplayEXT is not available")
	}
	none := []int32{eglNone}
	d := l.getPlatformDisplayExt(platformToken, native, &none[0])
	if d == 0 {
		return 0, l.errorf("eglGetPlatformDisplayEXT")
	}
	return d, nil
}

// WindowSystem supplies native windows for EGL window surfaces. Backends
// without one get pbuffer surfaces instead.
type WindowSystem interface {
	CreateWindow(visualID int32, attrs configattrs.WindowAttrs) (NativeWindow, error)
	Close() error
}

// NativeWindow is a window owned by a WindowSystem.
type NativeWindow interface {
	Handle() uintptr
	Show() error
	Destroy() error
}

// Backend carries the parts of platform.Backend every EGL platform shares.
// Platforms embed it and add ConnectDisplay.
type Backend struct {
	Lib    *Lib
	Loader *dl.Loader
	Log    *slog.Logger
}

// NewBackend loads libEGL.
func NewBackend(log *slog.Logger) (*Backend, error) {
	lib, err := Load()
	if err != nil {
		return nil, err
	}
	return &Backend{Lib: lib, Loader: dl.NewLoader(), Log: log}, nil
}

func (b *Backend) GetProcAddress(name string) uintptr {
	return b.Lib.GetProcAddress(name)
}

func (b *Backend) DLCanOpen(token enum.Enum) bool {
	return b.Loader.CanOpen(token)
}

func (b *Backend) DLSym(token enum.Enum, name string) (uintptr, error) {
	return b.Loader.Sym(token, name)
}

func (b *Backend) Teardown() error {
	return errors.Join(b.Loader.Close(), b.Lib.Close())
}

// Display is an initialized EGL display.
type Display struct {
	lib *Lib
	dpy EGLDisplay
	ws  WindowSystem
	log *slog.Logger

	major, minor int32
	clientAPIs   string
	extensions   string
}

var _ platform.Display = (*Display)(nil)

// Initialize runs eglInitialize on dpy. ws may be nil. On failure ws is
// closed.
func (b *Backend) Initialize(dpy EGLDisplay, ws WindowSystem) (*Display, error) {
	d := &Display{lib: b.Lib, dpy: dpy, ws: ws, log: b.Log}
	if b.Lib.initialize(dpy, &d.major, &d.minor) == eglFalse {
		err := b.Lib.errorf("eglInitialize")
		if ws != nil {
			ws.Close()
		}
		return nil, err
	}
	d.clientAPIs = b.Lib.queryString(dpy, eglClientAPIs)
	d.extensions = b.Lib.queryString(dpy, eglExtensions)
	d.log.Debug("egl display initialized",
		"version", [2]int32{d.major, d.minor},
		"client_apis", d.clientAPIs)
	return d, nil
}

func (d *Display) Disconnect() error {
	var errs []error
	if d.lib.terminate(d.dpy) == eglFalse {
		errs = append(errs, d.lib.errorf("eglTerminate"))
	}
	if d.ws != nil {
		if err := d.ws.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (d *Display) SupportsContextAPI(api enum.Enum) bool {
	return SupportsAPI(api, d.clientAPIs, d.extensions, d.major, d.minor)
}

func (d *Display) ChooseConfig(a configattrs.Attrs) (platform.Config, error) {
	surfaceBit := int32(eglPbufferBit)
	if d.ws != nil {
		surfaceBit = eglWindowBit
	}
	list, err := ConfigAttribs(a, surfaceBit)
	if err != nil {
		return nil, err
	}

	var cfg EGLConfig
	var n int32
	if d.lib.chooseConfig(d.dpy, &list[0], &cfg, 1, &n) == eglFalse {
		return nil, d.lib.errorf("eglChooseConfig")
	}
	if n == 0 {
		return nil, werror.Setf(werror.Unknown, "eglChooseConfig found no matching config")
	}

	c := &Config{display: d, cfg: cfg, attrs: a}
	if d.ws != nil {
		if d.lib.getConfigAttrib(d.dpy, cfg, eglNativeVisualID, &c.visualID) == eglFalse {
			return nil, d.lib.errorf("eglGetConfigAttrib(EGL_NATIVE_VISUAL_ID)")
		}
	}
	return c, nil
}

func (d *Display) MakeCurrent(w platform.Window, ctx platform.Context) error {
	var surf EGLSurface
	var ectx EGLContext
	if win, ok := w.(*Window); ok && win != nil {
		surf = win.surface
	}
	if c, ok := ctx.(*Context); ok && c != nil {
		ectx = c.ctx
		d.lib.bindAPI(boundAPI(c.api))
	}
	if d.lib.makeCurrent(d.dpy, surf, surf, ectx) == eglFalse {
		return d.lib.errorf("eglMakeCurrent")
	}
	return nil
}

// Config is a chosen EGLConfig.
type Config struct {
	display  *Display
	cfg      EGLConfig
	attrs    configattrs.Attrs
	visualID int32
}

func (c *Config) Destroy() error { return nil }

func (c *Config) CreateContext(share platform.Context) (platform.Context, error) {
	lib := c.display.lib
	var shared EGLContext
	if share != nil {
		s, ok := share.(*Context)
		if !ok {
			return nil, werror.Internalf("share context %T is not an EGL context", share)
		}
		shared = s.ctx
	}

	if lib.bindAPI(boundAPI(c.attrs.ContextAPI)) == eglFalse {
		return nil, lib.errorf("eglBindAPI")
	}
	list := ContextAttribs(c.attrs)
	ctx := lib.createContext(c.display.dpy, c.cfg, shared, &list[0])
	if ctx == 0 {
		return nil, lib.errorf("eglCreateContext")
	}
	return &Context{display: c.display, ctx: ctx, api: c.attrs.ContextAPI}, nil
}

func (c *Config) CreateWindow(wa configattrs.WindowAttrs) (platform.Window, error) {
	d := c.display
	w := &Window{display: d}

	if d.ws == nil {
		if wa.Fullscreen {
			return nil, werror.Setf(werror.UnsupportedOnPlatform, "fullscreen windows need a window system")
		}
		list := PbufferAttribs(wa)
		w.surface = d.lib.createPbufferSurface(d.dpy, c.cfg, &list[0])
		if w.surface == 0 {
			return nil, d.lib.errorf("eglCreatePbufferSurface")
		}
		return w, nil
	}

	nw, err := d.ws.CreateWindow(c.visualID, wa)
	if err != nil {
		return nil, err
	}
	list := WindowSurfaceAttribs(c.attrs.DoubleBuffered)
	w.surface = d.lib.createWindowSurface(d.dpy, c.cfg, nw.Handle(), &list[0])
	if w.surface == 0 {
		err := d.lib.errorf("eglCreateWindowSurface")
		nw.Destroy()
		return nil, err
	}
	w.native = nw
	return w, nil
}

// Context is an EGLContext.
type Context struct {
	display *Display
	ctx     EGLContext
	api     enum.Enum
}

func (c *Context) Destroy() error {
	if c.display.lib.destroyContext(c.display.dpy, c.ctx) == eglFalse {
		return c.display.lib.errorf("eglDestroyContext")
	}
	return nil
}

// Window is an EGL surface, backed by a native window when the display has
// a window system.
type Window struct {
	display *Display
	surface EGLSurface
	native  NativeWindow
}

func (w *Window) Show() error {
	if w.native == nil {
		return nil
	}
	return w.native.Show()
}

func (w *Window) SwapBuffers() error {
	if w.display.lib.swapBuffers(w.display.dpy, w.surface) == eglFalse {
		return w.display.lib.errorf("eglSwapBuffers")
	}
	return nil
}

func (w *Window) Destroy() error {
	var errs []error
	if w.display.lib.destroySurface(w.display.dpy, w.surface) == eglFalse {
		errs = append(errs, w.display.lib.errorf("eglDestroySurface"))
	}
	if w.native != nil {
		if err := w.native.Destroy(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
