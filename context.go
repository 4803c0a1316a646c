package waffle

import (
	"github.com/1broseidon/glwaffle/internal/api"
	"github.com/1broseidon/glwaffle/internal/platform"
)

// Context is a rendering context.
type Context struct {
	api.Object
	impl platform.Context
}

func (c *Context) object() *api.Object {
	if c == nil {
		return nil
	}
	return &c.Object
}

// CreateContext creates a context for cfg. When share is not nil the new
// context shares objects with it; both must belong to the same display.
func CreateContext(cfg *Config, share *Context) (*Context, error) {
	hs := []handle{cfg}
	if share != nil {
		hs = append(hs, share)
	}
	inst, err := enter(hs...)
	if err != nil {
		return nil, err
	}

	var ps platform.Context
	if share != nil {
		ps = share.impl
	}
	impl, err := cfg.impl.CreateContext(ps)
	if err != nil {
		return nil, platform.Report(err)
	}
	ctx := &Context{Object: api.NewChild(inst.ID, &cfg.Object), impl: impl}
	logger().Debug("waffle_context_create", "context", ctx.ObjectID, "shared", share != nil)
	return ctx, nil
}

// Destroy releases the context.
func (c *Context) Destroy() error {
	if _, err := enter(c); err != nil {
		return err
	}
	return platform.Report(c.impl.Destroy())
}
