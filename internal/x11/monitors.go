package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// Monitor is an active CRTC's geometry.
type Monitor struct {
	ID     int
	Name   string
	X      int
	Y      int
	Width  int
	Height int
}

// GetMonitors lists active monitors using XRandR.
func (c *Connection) GetMonitors() ([]Monitor, error) {
	conn := c.XUtil.Conn()
	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(conn, c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if out, err := randr.GetOutputInfo(conn, info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}
		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   name,
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		})
	}
	return monitors, nil
}

// fullscreenMonitor picks the monitor under the pointer, falling back to
// the first monitor and then to the whole screen.
func (c *Connection) fullscreenMonitor() Monitor {
	whole := Monitor{Name: "screen"}
	if c.Screen != nil {
		whole.Width = int(c.Screen.WidthInPixels)
		whole.Height = int(c.Screen.HeightInPixels)
	}

	monitors, err := c.GetMonitors()
	if err != nil || len(monitors) == 0 {
		return whole
	}
	if p, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		if m, ok := monitorAt(monitors, int(p.RootX), int(p.RootY)); ok {
			return m
		}
	}
	return monitors[0]
}

func monitorAt(monitors []Monitor, x, y int) (Monitor, bool) {
	for _, m := range monitors {
		if x >= m.X && x < m.X+m.Width && y >= m.Y && y < m.Y+m.Height {
			return m, true
		}
	}
	return Monitor{}, false
}
