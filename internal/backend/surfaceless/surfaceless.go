// Package surfaceless is the surfaceless_egl platform: Mesa's
// EGL_PLATFORM_SURFACELESS_MESA, with pbuffers standing in for windows.
package surfaceless

import (
	"log/slog"

	"github.com/1broseidon/glwaffle/internal/egl"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/platform"
)

func init() {
	platform.Register(enum.PlatformSurfacelessEGL, New)
}

// Backend implements platform.Backend for surfaceless_egl.
type Backend struct {
	*egl.Backend
}

func New(log *slog.Logger) (platform.Backend, error) {
	eb, err := egl.NewBackend(log)
	if err != nil {
		return nil, err
	}
	return &Backend{Backend: eb}, nil
}

// ConnectDisplay ignores name; there is no native display.
func (b *Backend) ConnectDisplay(name string) (platform.Display, error) {
	dpy, err := b.Lib.GetPlatformDisplay(egl.PlatformSurfaceless, 0)
	if err != nil {
		return nil, err
	}
	d, err := b.Initialize(dpy, nil)
	if err != nil {
		return nil, err
	}
	return d, nil
}
