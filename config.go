package waffle

import (
	"github.com/1broseidon/glwaffle/internal/api"
	"github.com/1broseidon/glwaffle/internal/configattrs"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/platform"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// Attrs is a resolved config request.
type Attrs = configattrs.Attrs

// Config is a framebuffer and context configuration chosen on a display.
type Config struct {
	api.Object
	display *Display
	attrs   configattrs.Attrs
	impl    platform.Config
}

func (c *Config) object() *api.Object {
	if c == nil {
		return nil
	}
	return &c.Object
}

// ChooseConfig resolves attribs, a zero-terminated list of WAFFLE_* keys and
// values that must include WAFFLE_CONTEXT_API, and chooses a matching
// config on d.
func ChooseConfig(d *Display, attribs []int32) (*Config, error) {
	inst, err := enter(d)
	if err != nil {
		return nil, err
	}

	attrs, err := configattrs.Parse(attribs)
	if err != nil {
		return nil, err
	}
	if err := configattrs.ParseContext(attribs, &attrs); err != nil {
		return nil, err
	}
	if !d.impl.SupportsContextAPI(attrs.ContextAPI) {
		return nil, werror.Setf(werror.UnsupportedOnPlatform,
			"%s does not support %s", inst.Name(), enum.Describe(attrs.ContextAPI))
	}

	impl, err := d.impl.ChooseConfig(attrs)
	if err != nil {
		return nil, platform.Report(err)
	}
	c := &Config{Object: api.NewChild(inst.ID, &d.Object), display: d, attrs: attrs, impl: impl}
	logger().Debug("waffle_config_choose",
		"config", c.ObjectID,
		"api", enum.Describe(attrs.ContextAPI),
		"version", attrs.Version())
	return c, nil
}

// Attrs returns the resolved request the config was chosen for.
func (c *Config) Attrs() Attrs {
	return c.attrs
}

// Display returns the display the config was chosen on.
func (c *Config) Display() *Display {
	return c.display
}

// Destroy releases the config.
func (c *Config) Destroy() error {
	if _, err := enter(c); err != nil {
		return err
	}
	return platform.Report(c.impl.Destroy())
}
