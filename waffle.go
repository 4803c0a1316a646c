// Package waffle selects an OpenGL or OpenGL ES window-system backend at run
// time and hands out displays, configs, contexts and windows through one
// backend-independent API.
//
// Every call that can fail returns an error and leaves the same code and
// message in the calling thread's error state, readable with ErrorGetCode
// and ErrorGetInfo. The error state is per OS thread, so callers that read
// it, or that make contexts current, should run on a locked thread
// (runtime.LockOSThread).
package waffle

import (
	"log/slog"

	"github.com/1broseidon/glwaffle/internal/api"
	"github.com/1broseidon/glwaffle/internal/dl"
	"github.com/1broseidon/glwaffle/internal/platform"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// PlatformInstance is the initialized platform. The WAFFLE_PLATFORM
// attribute key is the constant Platform.
type PlatformInstance struct {
	inst *platform.Instance
}

// Name returns the platform's symbolic name, such as
// WAFFLE_PLATFORM_X11_EGL.
func (p *PlatformInstance) Name() string { return p.inst.Name() }

// Tag returns the platform's WAFFLE_PLATFORM_* value.
func (p *PlatformInstance) Tag() int32 { return p.inst.Tag }

// ID is unique among all platforms initialized by the process.
func (p *PlatformInstance) ID() uint64 { return p.inst.ID }

// Init selects and initializes the platform named by attribs, which must
// hold WAFFLE_PLATFORM and nothing else.
func Init(attribs []int32) error {
	werror.Reset()
	inst, err := platform.Init(attribs)
	if err != nil {
		return err
	}
	logger().Debug("waffle_init", "platform", inst.Name())
	return nil
}

// Finish tears down the platform. Handles created before are invalid
// afterwards. Finish without a platform succeeds.
func Finish() error {
	werror.Reset()
	logger().Debug("waffle_teardown")
	return platform.Finish()
}

// Current returns the initialized platform, or nil.
func Current() *PlatformInstance {
	inst := platform.Current()
	if inst == nil {
		return nil
	}
	return &PlatformInstance{inst: inst}
}

// Registered lists the WAFFLE_PLATFORM_* values this build can initialize.
func Registered() []int32 {
	return platform.Registered()
}

// SetLogger routes debug logging of forwarded calls to l. A nil logger
// discards.
func SetLogger(l *slog.Logger) {
	platform.SetLogger(l)
}

// SetLibraryPath makes the library key ("gl", "gles1", "gles2", "gles3",
// "egl" or "x11") load from path instead of the platform default. An empty
// path restores the default.
func SetLibraryPath(key, path string) {
	dl.SetOverride(key, path)
}

// ReleaseThread drops the calling thread's error state. Call it before
// unlocking a thread that will not make waffle calls again.
func ReleaseThread() {
	werror.Release()
}

// SetLibraryPaths applies SetLibraryPath for every entry of paths and returns
// a function that puts the previous paths back.
func SetLibraryPaths(paths map[string]string) (restore func()) {
	return dl.ApplyOverrides(paths)
}

func logger() *slog.Logger {
	return platform.Logger()
}

// handle is implemented by every public object type.
type handle interface {
	object() *api.Object
}

// enter starts a public call: it clears the error state and validates the
// handles against the current platform.
func enter(hs ...handle) (*platform.Instance, error) {
	werror.Reset()
	objs := make([]*api.Object, len(hs))
	for i, h := range hs {
		objs[i] = h.object()
	}
	inst := platform.Current()
	var id uint64
	if inst != nil {
		id = inst.ID
	}
	if err := api.CheckEntry(id, objs...); err != nil {
		return nil, err
	}
	return inst, nil
}
