package waffle

import (
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/werror"
)

const (
	DontCare = enum.DontCare
	None     = enum.None

	Platform               = enum.Platform
	PlatformAndroid        = enum.PlatformAndroid
	PlatformCGL            = enum.PlatformCGL
	PlatformGLX            = enum.PlatformGLX
	PlatformWayland        = enum.PlatformWayland
	PlatformX11EGL         = enum.PlatformX11EGL
	PlatformGBM            = enum.PlatformGBM
	PlatformWGL            = enum.PlatformWGL
	PlatformSurfacelessEGL = enum.PlatformSurfacelessEGL

	RedSize        = enum.RedSize
	GreenSize      = enum.GreenSize
	BlueSize       = enum.BlueSize
	AlphaSize      = enum.AlphaSize
	DepthSize      = enum.DepthSize
	StencilSize    = enum.StencilSize
	SampleBuffers  = enum.SampleBuffers
	Samples        = enum.Samples
	DoubleBuffered = enum.DoubleBuffered
	AccumBuffer    = enum.AccumBuffer

	ContextAPI               = enum.ContextAPI
	ContextOpenGL            = enum.ContextOpenGL
	ContextOpenGLES1         = enum.ContextOpenGLES1
	ContextOpenGLES2         = enum.ContextOpenGLES2
	ContextOpenGLES3         = enum.ContextOpenGLES3
	ContextMajorVersion      = enum.ContextMajorVersion
	ContextMinorVersion      = enum.ContextMinorVersion
	ContextProfile           = enum.ContextProfile
	ContextCoreProfile       = enum.ContextCoreProfile
	ContextCompatProfile     = enum.ContextCompatProfile
	ContextForwardCompatible = enum.ContextForwardCompatible
	ContextDebug             = enum.ContextDebug
	ContextRobustAccess      = enum.ContextRobustAccess

	DLOpenGL    = enum.DLOpenGL
	DLOpenGLES1 = enum.DLOpenGLES1
	DLOpenGLES2 = enum.DLOpenGLES2
	DLOpenGLES3 = enum.DLOpenGLES3

	WindowWidth      = enum.WindowWidth
	WindowHeight     = enum.WindowHeight
	WindowFullscreen = enum.WindowFullscreen
)

const (
	NoError                = werror.NoError
	ErrFatal               = werror.Fatal
	ErrUnknown             = werror.Unknown
	ErrInternal            = werror.Internal
	ErrOutOfMemory         = werror.OutOfMemory
	ErrNotInitialized      = werror.NotInitialized
	ErrAlreadyInitialized  = werror.AlreadyInitialized
	ErrBadAttribute        = werror.BadAttribute
	ErrBadParameter        = werror.BadParameter
	ErrBadDisplayMatch     = werror.BadDisplayMatch
	ErrUnsupported         = werror.UnsupportedOnPlatform
	ErrNotImplemented      = werror.NotImplemented
	ErrOldObject           = werror.OldObject
	ErrIncompatibleAttribs = werror.IncompatibleAttributes
)
