package configattrs

import (
	"math"

	"github.com/1broseidon/glwaffle/internal/attrib"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// WindowAttrs is a resolved window request.
type WindowAttrs struct {
	Width      int32
	Height     int32
	Fullscreen bool
}

// ParseWindow resolves a pointer-width window attribute list. Width and
// height are required unless WAFFLE_WINDOW_FULLSCREEN is true.
func ParseWindow(list []int) (WindowAttrs, error) {
	var w WindowAttrs
	if attrib.Dangling(list) {
		i := len(list) - 1
		return w, werror.Setf(werror.BadAttribute,
			"attribute %s at index %d has no value", enum.Describe(int32(list[i])), i)
	}

	haveWidth, haveHeight := false, false
	for i := 0; i+1 < len(list) && list[i] != 0; i += 2 {
		key, value := list[i], list[i+1]
		if key < math.MinInt32 || key > math.MaxInt32 {
			return w, werror.Setf(werror.BadAttribute,
				"unrecognized attribute %#x at index %d", key, i)
		}
		switch int32(key) {
		case enum.WindowWidth, enum.WindowHeight:
			if value <= 0 || value > math.MaxInt32 {
				return w, werror.Setf(werror.BadAttribute,
					"%s has bad value %d", enum.Describe(int32(key)), value)
			}
			if int32(key) == enum.WindowWidth {
				w.Width, haveWidth = int32(value), true
			} else {
				w.Height, haveHeight = int32(value), true
			}
		case enum.WindowFullscreen:
			if value != 0 && value != 1 {
				return w, werror.Setf(werror.BadAttribute,
					"%s has bad value %#x", enum.Describe(enum.WindowFullscreen), value)
			}
			w.Fullscreen = value == 1
		default:
			return w, werror.Setf(werror.BadAttribute,
				"unrecognized attribute %s at index %d", enum.Describe(int32(key)), i)
		}
	}

	if w.Fullscreen {
		return w, nil
	}
	if !haveWidth {
		return w, missingKey(enum.WindowWidth)
	}
	if !haveHeight {
		return w, missingKey(enum.WindowHeight)
	}
	return w, nil
}
