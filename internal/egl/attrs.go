package egl

import (
	"github.com/1broseidon/glwaffle/internal/attrib"
	"github.com/1broseidon/glwaffle/internal/configattrs"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// renderableBit maps a context API to its EGL_RENDERABLE_TYPE bit.
func renderableBit(api enum.Enum) (int32, bool) {
	switch api {
	case enum.ContextOpenGL:
		return eglOpenGLBit, true
	case enum.ContextOpenGLES1:
		return eglOpenGLESBit, true
	case enum.ContextOpenGLES2:
		return eglOpenGLES2Bit, true
	case enum.ContextOpenGLES3:
		return eglOpenGLES3BitKHR, true
	}
	return 0, false
}

// boundAPI maps a context API to the eglBindAPI argument.
func boundAPI(api enum.Enum) uint32 {
	if api == enum.ContextOpenGL {
		return eglOpenGLAPI
	}
	return eglOpenGLESAPI
}

// ConfigAttribs translates a resolved request into an EGL_NONE terminated
// eglChooseConfig list. surfaceBit selects window or pbuffer support.
func ConfigAttribs(a configattrs.Attrs, surfaceBit int32) ([]int32, error) {
	if a.AccumBuffer {
		return nil, werror.Setf(werror.UnsupportedOnPlatform, "EGL does not support accumulation buffers")
	}
	renderable, ok := renderableBit(a.ContextAPI)
	if !ok {
		return nil, werror.Internalf("unresolved context api %s", enum.Describe(a.ContextAPI))
	}

	var b attrib.Builder[int32]
	b.Append(eglBufferSize, a.ColorBufferSize).
		Append(eglRedSize, a.RedSize).
		Append(eglGreenSize, a.GreenSize).
		Append(eglBlueSize, a.BlueSize).
		Append(eglAlphaSize, a.AlphaSize).
		Append(eglDepthSize, a.DepthSize).
		Append(eglStencilSize, a.StencilSize)

	sampleBuffers := int32(0)
	if a.SampleBuffers {
		sampleBuffers = 1
	}
	b.Append(eglSampleBuffers, sampleBuffers).
		Append(eglSamples, a.Samples).
		Append(eglRenderableType, renderable).
		Append(eglSurfaceType, surfaceBit)
	return b.Terminated(eglNone), nil
}

// ContextAttribs translates the context part of a request into an
// eglCreateContext list.
func ContextAttribs(a configattrs.Attrs) []int32 {
	var b attrib.Builder[int32]
	switch a.ContextAPI {
	case enum.ContextOpenGL:
		if a.Version() != 10 {
			b.Append(eglContextMajorVersion, a.MajorVersion).
				Append(eglContextMinorVersion, a.MinorVersion)
		}
		if a.Version() >= 32 {
			mask := int32(eglContextCoreProfileBit)
			if a.Profile == enum.ContextCompatProfile {
				mask = eglContextCompatProfileBit
			}
			b.Append(eglContextOpenGLProfileMask, mask)
		}
	default:
		b.Append(eglContextMajorVersion, a.MajorVersion)
		if a.MinorVersion != 0 {
			b.Append(eglContextMinorVersion, a.MinorVersion)
		}
	}

	var flags int32
	if a.ForwardCompatible {
		flags |= eglContextForwardCompatBitKHR
	}
	if a.Debug {
		flags |= eglContextDebugBitKHR
	}
	if a.RobustAccess {
		flags |= eglContextRobustAccessBitKHR
	}
	if flags != 0 {
		b.Append(eglContextFlagsKHR, flags)
	}
	return b.Terminated(eglNone)
}

// WindowSurfaceAttribs returns the eglCreateWindowSurface list.
func WindowSurfaceAttribs(doubleBuffered bool) []int32 {
	buf := int32(eglBackBuffer)
	if !doubleBuffered {
		buf = eglSingleBuffer
	}
	var b attrib.Builder[int32]
	return b.Append(eglRenderBuffer, buf).Terminated(eglNone)
}

// PbufferAttribs returns the eglCreatePbufferSurface list.
func PbufferAttribs(w configattrs.WindowAttrs) []int32 {
	var b attrib.Builder[int32]
	return b.Append(eglWidth, w.Width).Append(eglHeight, w.Height).Terminated(eglNone)
}

// SupportsAPI decides context API support from an initialized display's
// EGL_CLIENT_APIS and EGL_EXTENSIONS strings and its EGL version.
func SupportsAPI(api enum.Enum, clientAPIs, extensions string, major, minor int32) bool {
	switch api {
	case enum.ContextOpenGL:
		return hasToken(clientAPIs, "OpenGL")
	case enum.ContextOpenGLES1, enum.ContextOpenGLES2:
		return hasToken(clientAPIs, "OpenGL_ES")
	case enum.ContextOpenGLES3:
		if !hasToken(clientAPIs, "OpenGL_ES") {
			return false
		}
		return major > 1 || (major == 1 && minor >= 5) ||
			hasToken(extensions, "EGL_KHR_create_context")
	}
	return false
}
