// Package enum defines the integer tokens that appear as keys and values in
// attribute lists, and their symbolic names.
package enum

import "fmt"

// Enum is a public API token.
type Enum = int32

const (
	DontCare Enum = -1
	None     Enum = 0
)

// Platform selection.
const (
	Platform               Enum = 0x0010
	PlatformAndroid        Enum = 0x0011
	PlatformCGL            Enum = 0x0012
	PlatformGLX            Enum = 0x0013
	PlatformWayland        Enum = 0x0014
	PlatformX11EGL         Enum = 0x0015
	PlatformGBM            Enum = 0x0016
	PlatformWGL            Enum = 0x0017
	PlatformSurfacelessEGL Enum = 0x0019
)

// Config attributes.
const (
	RedSize        Enum = 0x0201
	GreenSize      Enum = 0x0202
	BlueSize       Enum = 0x0203
	AlphaSize      Enum = 0x0204
	DepthSize      Enum = 0x0205
	StencilSize    Enum = 0x0206
	SampleBuffers  Enum = 0x0207
	Samples        Enum = 0x0208
	DoubleBuffered Enum = 0x0209

	ContextAPI               Enum = 0x020a
	ContextOpenGL            Enum = 0x020b
	ContextOpenGLES1         Enum = 0x020c
	ContextOpenGLES2         Enum = 0x020d
	ContextMajorVersion      Enum = 0x020e
	ContextMinorVersion      Enum = 0x020f
	ContextProfile           Enum = 0x0210
	ContextCoreProfile       Enum = 0x0211
	ContextCompatProfile     Enum = 0x0212
	AccumBuffer              Enum = 0x0213
	ContextOpenGLES3         Enum = 0x0214
	ContextForwardCompatible Enum = 0x0215
	ContextDebug             Enum = 0x0216
	ContextRobustAccess      Enum = 0x0217
)

// Dynamic libraries.
const (
	DLOpenGL    Enum = 0x0301
	DLOpenGLES1 Enum = 0x0302
	DLOpenGLES2 Enum = 0x0303
	DLOpenGLES3 Enum = 0x0304
)

// Window attributes.
const (
	WindowWidth      Enum = 0x0310
	WindowHeight     Enum = 0x0311
	WindowFullscreen Enum = 0x0312
)

var names = map[Enum]string{
	DontCare: "WAFFLE_DONT_CARE",
	None:     "WAFFLE_NONE",

	Platform:               "WAFFLE_PLATFORM",
	PlatformAndroid:        "WAFFLE_PLATFORM_ANDROID",
	PlatformCGL:            "WAFFLE_PLATFORM_CGL",
	PlatformGLX:            "WAFFLE_PLATFORM_GLX",
	PlatformWayland:        "WAFFLE_PLATFORM_WAYLAND",
	PlatformX11EGL:         "WAFFLE_PLATFORM_X11_EGL",
	PlatformGBM:            "WAFFLE_PLATFORM_GBM",
	PlatformWGL:            "WAFFLE_PLATFORM_WGL",
	PlatformSurfacelessEGL: "WAFFLE_PLATFORM_SURFACELESS_EGL",

	RedSize:        "WAFFLE_RED_SIZE",
	GreenSize:      "WAFFLE_GREEN_SIZE",
	BlueSize:       "WAFFLE_BLUE_SIZE",
	AlphaSize:      "WAFFLE_ALPHA_SIZE",
	DepthSize:      "WAFFLE_DEPTH_SIZE",
	StencilSize:    "WAFFLE_STENCIL_SIZE",
	SampleBuffers:  "WAFFLE_SAMPLE_BUFFERS",
	Samples:        "WAFFLE_SAMPLES",
	DoubleBuffered: "WAFFLE_DOUBLE_BUFFERED",

	ContextAPI:               "WAFFLE_CONTEXT_API",
	ContextOpenGL:            "WAFFLE_CONTEXT_OPENGL",
	ContextOpenGLES1:         "WAFFLE_CONTEXT_OPENGL_ES1",
	ContextOpenGLES2:         "WAFFLE_CONTEXT_OPENGL_ES2",
	ContextOpenGLES3:         "WAFFLE_CONTEXT_OPENGL_ES3",
	ContextMajorVersion:      "WAFFLE_CONTEXT_MAJOR_VERSION",
	ContextMinorVersion:      "WAFFLE_CONTEXT_MINOR_VERSION",
	ContextProfile:           "WAFFLE_CONTEXT_PROFILE",
	ContextCoreProfile:       "WAFFLE_CONTEXT_CORE_PROFILE",
	ContextCompatProfile:     "WAFFLE_CONTEXT_COMPATIBILITY_PROFILE",
	AccumBuffer:              "WAFFLE_ACCUM_BUFFER",
	ContextForwardCompatible: "WAFFLE_CONTEXT_FORWARD_COMPATIBLE",
	ContextDebug:             "WAFFLE_CONTEXT_DEBUG",
	ContextRobustAccess:      "WAFFLE_CONTEXT_ROBUST_ACCESS",

	DLOpenGL:    "WAFFLE_DL_OPENGL",
	DLOpenGLES1: "WAFFLE_DL_OPENGL_ES1",
	DLOpenGLES2: "WAFFLE_DL_OPENGL_ES2",
	DLOpenGLES3: "WAFFLE_DL_OPENGL_ES3",

	WindowWidth:      "WAFFLE_WINDOW_WIDTH",
	WindowHeight:     "WAFFLE_WINDOW_HEIGHT",
	WindowFullscreen: "WAFFLE_WINDOW_FULLSCREEN",
}

// String returns the registered name of e, or "" if it has none.
func String(e Enum) string {
	return names[e]
}

// Describe returns the registered name of e, falling back to hex.
func Describe(e Enum) string {
	if s, ok := names[e]; ok {
		return s
	}
	return fmt.Sprintf("%#x", uint32(e))
}
