package egl

const (
	eglNone  = 0x3038
	eglFalse = 0

	eglBadAlloc = 0x3003

	eglBufferSize     = 0x3020
	eglAlphaSize      = 0x3021
	eglBlueSize       = 0x3022
	eglGreenSize      = 0x3023
	eglRedSize        = 0x3024
	eglDepthSize      = 0x3025
	eglStencilSize    = 0x3026
	eglNativeVisualID = 0x302e
	eglSamples        = 0x3031
	eglSampleBuffers  = 0x3032
	eglSurfaceType    = 0x3033
	eglRenderableType = 0x3040
	eglRenderBuffer   = 0x3086
	eglBackBuffer     = 0x3084
	eglSingleBuffer   = 0x3085
	eglHeight         = 0x3056
	eglWidth          = 0x3057

	eglExtensions = 0x3055
	eglClientAPIs = 0x308d

	eglPbufferBit = 0x0001
	eglWindowBit  = 0x0004

	eglOpenGLESBit     = 0x0001
	eglOpenGLES2Bit    = 0x0004
	eglOpenGLBit       = 0x0008
	eglOpenGLES3BitKHR = 0x0040

	eglOpenGLESAPI = 0x30a0
	eglOpenGLAPI   = 0x30a2

	eglContextMajorVersion        = 0x3098
	eglContextMinorVersion        = 0x30fb
	eglContextFlagsKHR            = 0x30fc
	eglContextOpenGLProfileMask   = 0x30fd
	eglContextCoreProfileBit      = 0x0001
	eglContextCompatProfileBit    = 0x0002
	eglContextDebugBitKHR         = 0x0001
	eglContextForwardCompatBitKHR = 0x0002
	eglContextRobustAccessBitKHR  = 0x0004

	// PlatformX11 and PlatformSurfaceless are eglGetPlatformDisplayEXT
	// platform tokens.
	PlatformX11         = 0x31d5
	PlatformSurfaceless = 0x31dd
)

var eglErrorNames = map[int32]string{
	0x3000: "EGL_SUCCESS",
	0x3001: "EGL_NOT_INITIALIZED",
	0x3002: "EGL_BAD_ACCESS",
	0x3003: "EGL_BAD_ALLOC",
	0x3004: "EGL_BAD_ATTRIBUTE",
	0x3005: "EGL_BAD_CONFIG",
	0x3006: "EGL_BAD_CONTEXT",
	0x3007: "EGL_BAD_CURRENT_SURFACE",
	0x3008: "EGL_BAD_DISPLAY",
	0x3009: "EGL_BAD_MATCH",
	0x300a: "EGL_BAD_NATIVE_PIXMAP",
	0x300b: "EGL_BAD_NATIVE_WINDOW",
	0x300c: "EGL_BAD_PARAMETER",
	0x300d: "EGL_BAD_SURFACE",
	0x300e: "EGL_CONTEXT_LOST",
}
