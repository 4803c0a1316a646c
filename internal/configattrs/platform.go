package configattrs

import (
	"github.com/1broseidon/glwaffle/internal/attrib"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// KnownPlatforms lists every platform tag the API defines, compiled in or not.
var KnownPlatforms = []enum.Enum{
	enum.PlatformAndroid,
	enum.PlatformCGL,
	enum.PlatformGLX,
	enum.PlatformWayland,
	enum.PlatformX11EGL,
	enum.PlatformGBM,
	enum.PlatformWGL,
	enum.PlatformSurfacelessEGL,
}

// ParseInit resolves an init attribute list. WAFFLE_PLATFORM is required and
// is the only key accepted.
func ParseInit(list []int32) (enum.Enum, error) {
	if attrib.Length(list) == 0 {
		return 0, missingKey(enum.Platform)
	}
	if attrib.Dangling(list) {
		i := len(list) - 1
		return 0, werror.Setf(werror.BadAttribute,
			"attribute %s at index %d has no value", enum.Describe(list[i]), i)
	}

	var platform enum.Enum
	found := false
	for i := 0; i+1 < len(list) && list[i] != 0; i += 2 {
		key, value := list[i], list[i+1]
		if key != enum.Platform {
			return 0, werror.Setf(werror.BadAttribute,
				"unrecognized attribute %s at index %d", enum.Describe(key), i)
		}
		if !IsKnownPlatform(value) {
			return 0, badValue(key, value)
		}
		platform = value
		found = true
	}
	if !found {
		return 0, missingKey(enum.Platform)
	}
	return platform, nil
}

// IsKnownPlatform reports whether p is a platform tag.
func IsKnownPlatform(p enum.Enum) bool {
	for _, k := range KnownPlatforms {
		if k == p {
			return true
		}
	}
	return false
}
