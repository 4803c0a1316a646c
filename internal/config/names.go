package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/1broseidon/glwaffle/internal/enum"
)

// Platforms maps the platform names accepted on the command line and in
// config files to WAFFLE_PLATFORM_* values.
var Platforms = map[string]enum.Enum{
	"android":         enum.PlatformAndroid,
	"cgl":             enum.PlatformCGL,
	"gbm":             enum.PlatformGBM,
	"glx":             enum.PlatformGLX,
	"surfaceless_egl": enum.PlatformSurfacelessEGL,
	"sl":              enum.PlatformSurfacelessEGL,
	"wayland":         enum.PlatformWayland,
	"wgl":             enum.PlatformWGL,
	"x11_egl":         enum.PlatformX11EGL,
}

// APIs maps context API names to WAFFLE_CONTEXT_* values.
var APIs = map[string]enum.Enum{
	"gl":    enum.ContextOpenGL,
	"gles1": enum.ContextOpenGLES1,
	"gles2": enum.ContextOpenGLES2,
	"gles3": enum.ContextOpenGLES3,
}

// Profiles maps profile names to WAFFLE_CONTEXT_*_PROFILE values. "none"
// requests no profile.
var Profiles = map[string]enum.Enum{
	"core":   enum.ContextCoreProfile,
	"compat": enum.ContextCompatProfile,
	"none":   enum.None,
}

// PlatformName returns the canonical name of a platform tag.
func PlatformName(tag enum.Enum) string {
	for _, name := range sortedKeys(Platforms) {
		if name != "sl" && Platforms[name] == tag {
			return name
		}
	}
	return enum.Describe(tag)
}

// PlatformNames returns the accepted platform names, sorted.
func PlatformNames() []string { return sortedKeys(Platforms) }

// APINames returns the accepted API names, sorted.
func APINames() []string { return sortedKeys(APIs) }

// ParseVersion parses "MAJOR.MINOR" or "MAJOR".
func ParseVersion(s string) (major, minor int32, err error) {
	s = strings.TrimSpace(s)
	majStr, minStr, hasMinor := strings.Cut(s, ".")
	maj, err := strconv.ParseInt(majStr, 10, 32)
	if err != nil || maj < 1 {
		return 0, 0, fmt.Errorf("version %q must look like MAJOR.MINOR", s)
	}
	var min int64
	if hasMinor {
		min, err = strconv.ParseInt(minStr, 10, 32)
		if err != nil || min < 0 {
			return 0, 0, fmt.Errorf("version %q must look like MAJOR.MINOR", s)
		}
	}
	return int32(maj), int32(min), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
