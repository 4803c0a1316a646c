package waffle

import (
	"github.com/1broseidon/glwaffle/internal/api"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/platform"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// Display is a connection to a native display.
type Display struct {
	api.Object
	impl platform.Display
}

func (d *Display) object() *api.Object {
	if d == nil {
		return nil
	}
	return &d.Object
}

// ConnectDisplay connects to the named native display. An empty name
// selects the platform default.
func ConnectDisplay(name string) (*Display, error) {
	inst, err := enter()
	if err != nil {
		return nil, err
	}
	impl, err := inst.Backend.ConnectDisplay(name)
	if err != nil {
		return nil, platform.Report(err)
	}
	d := &Display{Object: api.NewDisplay(inst.ID), impl: impl}
	logger().Debug("waffle_display_connect", "name", name, "display", d.ObjectID)
	return d, nil
}

// Disconnect closes the display.
func (d *Display) Disconnect() error {
	if _, err := enter(d); err != nil {
		return err
	}
	logger().Debug("waffle_display_disconnect", "display", d.ObjectID)
	return platform.Report(d.impl.Disconnect())
}

// SupportsContextAPI reports whether the display can create contexts of
// contextAPI (WAFFLE_CONTEXT_OPENGL, WAFFLE_CONTEXT_OPENGL_ES1, ...).
func (d *Display) SupportsContextAPI(contextAPI int32) (bool, error) {
	if _, err := enter(d); err != nil {
		return false, err
	}
	switch contextAPI {
	case enum.ContextOpenGL, enum.ContextOpenGLES1, enum.ContextOpenGLES2, enum.ContextOpenGLES3:
	default:
		return false, werror.Setf(werror.BadParameter, "context_api has bad value %s", enum.Describe(contextAPI))
	}
	return d.impl.SupportsContextAPI(contextAPI), nil
}

// MakeCurrent binds w and ctx to the calling thread. Either may be nil;
// both nil releases the current context.
func MakeCurrent(d *Display, w *Window, ctx *Context) error {
	hs := []handle{d}
	if w != nil {
		hs = append(hs, w)
	}
	if ctx != nil {
		hs = append(hs, ctx)
	}
	if _, err := enter(hs...); err != nil {
		return err
	}

	var pw platform.Window
	var pc platform.Context
	if w != nil {
		pw = w.impl
	}
	if ctx != nil {
		pc = ctx.impl
	}
	logger().Debug("waffle_make_current", "display", d.ObjectID, "window", w != nil, "context", ctx != nil)
	return platform.Report(d.impl.MakeCurrent(pw, pc))
}
