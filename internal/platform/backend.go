package platform

import (
	"github.com/1broseidon/glwaffle/internal/configattrs"
	"github.com/1broseidon/glwaffle/internal/enum"
)

// Backend abstracts one native window-system/GL pairing (GLX, EGL on X11,
// surfaceless EGL, ...). Backend-specific state lives behind the
// implementations; the core never inspects it.
type Backend interface {
	ConnectDisplay(name string) (Display, error)
	// GetProcAddress returns 0 when the symbol is unknown.
	GetProcAddress(name string) uintptr
	DLCanOpen(dl enum.Enum) bool
	// DLSym returns 0 when the library or symbol is unavailable.
	DLSym(dl enum.Enum, name string) (uintptr, error)
	// Teardown releases everything the backend holds. It is called once,
	// from Finish.
	Teardown() error
}

// Display is a connection to a native display.
type Display interface {
	Disconnect() error
	SupportsContextAPI(api enum.Enum) bool
	ChooseConfig(attrs configattrs.Attrs) (Config, error)
	// MakeCurrent binds window and ctx to the calling thread. Either may be
	// nil, which releases the corresponding binding.
	MakeCurrent(window Window, ctx Context) error
}

// Config is a resolved framebuffer/context configuration.
type Config interface {
	Destroy() error
	// CreateContext creates a context, sharing objects with share when it is
	// not nil.
	CreateContext(share Context) (Context, error)
	CreateWindow(attrs configattrs.WindowAttrs) (Window, error)
}

// Context is a native rendering context.
type Context interface {
	Destroy() error
}

// Window is a native drawable.
type Window interface {
	Destroy() error
	Show() error
	SwapBuffers() error
}
