// Package egl binds the subset of libEGL the EGL backends share, and
// implements the display/config/context/window objects on top of it.
package egl

import (
	"fmt"
	"strings"

	"github.com/1broseidon/glwaffle/internal/dl"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// Handles are opaque EGL pointers.
type (
	EGLDisplay uintptr
	EGLConfig  uintptr
	EGLContext uintptr
	EGLSurface uintptr
)

// Lib is an opened libEGL.
type Lib struct {
	lib *dl.Library

	getDisplay            func(native uintptr) EGLDisplay
	getPlatformDisplayExt func(platform uint32, native uintptr, attribs *int32) EGLDisplay
	initialize            func(d EGLDisplay, major, minor *int32) uint32
	terminate             func(d EGLDisplay) uint32
	queryString           func(d EGLDisplay, name int32) string
	bindAPI               func(api uint32) uint32
	chooseConfig          func(d EGLDisplay, attribs *int32, configs *EGLConfig, size int32, num *int32) uint32
	getConfigAttrib       func(d EGLDisplay, c EGLConfig, attr int32, value *int32) uint32
	createContext         func(d EGLDisplay, c EGLConfig, share EGLContext, attribs *int32) EGLContext
	destroyContext        func(d EGLDisplay, ctx EGLContext) uint32
	createWindowSurface   func(d EGLDisplay, c EGLConfig, win uintptr, attribs *int32) EGLSurface
	createPbufferSurface  func(d EGLDisplay, c EGLConfig, attribs *int32) EGLSurface
	destroySurface        func(d EGLDisplay, s EGLSurface) uint32
	makeCurrent           func(d EGLDisplay, draw, read EGLSurface, ctx EGLContext) uint32
	swapBuffers           func(d EGLDisplay, s EGLSurface) uint32
	getError              func() int32
	getProcAddress        func(name string) uintptr
	releaseThread         func() uint32
}

// Load opens libEGL and resolves every entry point the backends use.
func Load() (*Lib, error) {
	lib, err := dl.OpenKey(dl.KeyEGL)
	if err != nil {
		return nil, err
	}
	l := &Lib{lib: lib}

	bindings := []struct {
		fptr any
		name string
	}{
		{&l.getDisplay, "eglGetDisplay"},
		{&l.initialize, "eglInitialize"},
		{&l.terminate, "eglTerminate"},
		{&l.queryString, "eglQueryString"},
		{&l.bindAPI, "eglBindAPI"},
		{&l.chooseConfig, "eglChooseConfig"},
		{&l.getConfigAttrib, "eglGetConfigAttrib"},
		{&l.createContext, "eglCreateContext"},
		{&l.destroyContext, "eglDestroyContext"},
		{&l.createWindowSurface, "eglCreateWindowSurface"},
		{&l.createPbufferSurface, "eglCreatePbufferSurface"},
		{&l.destroySurface, "eglDestroySurface"},
		{&l.makeCurrent, "eglMakeCurrent"},
		{&l.swapBuffers, "eglSwapBuffers"},
		{&l.getError, "eglGetError"},
		{&l.getProcAddress, "eglGetProcAddress"},
		{&l.releaseThread, "eglReleaseThread"},
	}
	for _, b := range bindings {
		if err := lib.Bind(b.fptr, b.name); err != nil {
			lib.Close()
			return nil, err
		}
	}

	// Extension entry points come from eglGetProcAddress, not dlsym.
	if p := l.getProcAddress("eglGetPlatformDisplayEXT"); p != 0 {
		dl.BindProc(&l.getPlatformDisplayExt, p)
	}
	return l, nil
}

// Close releases libEGL.
func (l *Lib) Close() error {
	if l == nil {
		return nil
	}
	if l.releaseThread != nil {
		l.releaseThread()
	}
	return l.lib.Close()
}

// GetProcAddress resolves a GL or EGL entry point.
func (l *Lib) GetProcAddress(name string) uintptr {
	return l.getProcAddress(name)
}

// errorf records a failed EGL call, including the EGL error code.
func (l *Lib) errorf(call string) error {
	code := l.getError()
	wc := werror.Unknown
	if code == eglBadAlloc {
		wc = werror.OutOfMemory
	}
	return werror.Setf(wc, "%s failed: %s", call, errorName(code))
}

func hasToken(list, token string) bool {
	for _, t := range strings.Fields(list) {
		if t == token {
			return true
		}
	}
	return false
}

func errorName(code int32) string {
	if s, ok := eglErrorNames[code]; ok {
		return fmt.Sprintf("%s (%#x)", s, code)
	}
	return fmt.Sprintf("%#x", code)
}
