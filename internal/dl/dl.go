// Package dl opens the native GL, GLES, EGL and X11 libraries at run time,
// without cgo.
package dl

import (
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// Library keys, as used in configuration files.
const (
	KeyGL    = "gl"
	KeyGLES1 = "gles1"
	KeyGLES2 = "gles2"
	KeyGLES3 = "gles3"
	KeyEGL   = "egl"
	KeyX11   = "x11"
)

var keysByToken = map[enum.Enum]string{
	enum.DLOpenGL:    KeyGL,
	enum.DLOpenGLES1: KeyGLES1,
	enum.DLOpenGLES2: KeyGLES2,
	enum.DLOpenGLES3: KeyGLES3,
}

var (
	overridesMu sync.RWMutex
	overrides   = make(map[string]string)
)

// KeyFor maps a WAFFLE_DL_* token to its library key.
func KeyFor(dl enum.Enum) (string, bool) {
	k, ok := keysByToken[dl]
	return k, ok
}

// SetOverride makes key resolve to path instead of the platform default.
// An empty path removes the override.
func SetOverride(key, path string) {
	overridesMu.Lock()
	defer overridesMu.Unlock()
	if path == "" {
		delete(overrides, key)
		return
	}
	overrides[key] = path
}

// ApplyOverrides sets every override in m, where an empty path removes one,
// and returns a function restoring the overrides in place before the call.
func ApplyOverrides(m map[string]string) (restore func()) {
	overridesMu.Lock()
	saved := maps.Clone(overrides)
	for key, path := range m {
		if path == "" {
			delete(overrides, key)
		} else {
			overrides[key] = path
		}
	}
	overridesMu.Unlock()
	return func() {
		overridesMu.Lock()
		overrides = saved
		overridesMu.Unlock()
	}
}

// Path returns the file that key resolves to.
func Path(key string) (string, bool) {
	overridesMu.RLock()
	p, ok := overrides[key]
	overridesMu.RUnlock()
	if ok {
		return p, true
	}
	p, ok = defaultPaths[key]
	return p, ok
}

// Library is an open shared library.
type Library struct {
	Path   string
	handle uintptr
}

// OpenKey opens the library registered under key.
func OpenKey(key string) (*Library, error) {
	path, ok := Path(key)
	if !ok {
		return nil, werror.Setf(werror.UnsupportedOnPlatform, "no %s library on this platform", key)
	}
	return Open(path)
}

// Open opens path.
func Open(path string) (*Library, error) {
	h, err := dlopen(path)
	if err != nil {
		return nil, werror.Setf(werror.Unknown, "dlopen(%q) failed: %v", path, err)
	}
	return &Library{Path: path, handle: h}, nil
}

// Sym resolves name in the library.
func (l *Library) Sym(name string) (uintptr, error) {
	p, err := dlsym(l.handle, name)
	if err != nil || p == 0 {
		return 0, werror.Setf(werror.Unknown, "dlsym(%q, %q) failed: %v", l.Path, name, err)
	}
	return p, nil
}

// Bind resolves name and stores a Go function calling it into fptr, which
// must point to a variable of func type.
func (l *Library) Bind(fptr any, name string) error {
	p, err := l.Sym(name)
	if err != nil {
		return err
	}
	registerFunc(fptr, p)
	return nil
}

// Close releases the library handle.
func (l *Library) Close() error {
	if l == nil || l.handle == 0 {
		return nil
	}
	err := dlclose(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("dlclose(%q): %w", l.Path, err)
	}
	return nil
}

// Loader caches libraries opened on behalf of WAFFLE_DL_* requests.
type Loader struct {
	mu   sync.Mutex
	libs map[enum.Enum]*Library
}

// NewLoader returns an empty loader.
func NewLoader() *Loader {
	return &Loader{libs: make(map[enum.Enum]*Library)}
}

func (l *Loader) open(dl enum.Enum) (*Library, error) {
	key, ok := KeyFor(dl)
	if !ok {
		return nil, werror.Setf(werror.BadParameter, "%s is not a WAFFLE_DL_* token", enum.Describe(dl))
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if lib, ok := l.libs[dl]; ok {
		return lib, nil
	}
	lib, err := OpenKey(key)
	if err != nil {
		return nil, err
	}
	l.libs[dl] = lib
	return lib, nil
}

// CanOpen reports whether the library for dl can be opened. Failures are
// kept out of the caller's error state.
func (l *Loader) CanOpen(dl enum.Enum) bool {
	restore := werror.Suppress()
	defer restore()
	_, err := l.open(dl)
	return err == nil
}

// Sym resolves name in the library for dl.
func (l *Loader) Sym(dl enum.Enum, name string) (uintptr, error) {
	lib, err := l.open(dl)
	if err != nil {
		return 0, err
	}
	return lib.Sym(name)
}

// Close releases every library the loader opened.
func (l *Loader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	var errs []error
	for dl, lib := range l.libs {
		if err := lib.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(l.libs, dl)
	}
	return errors.Join(errs...)
}

// BindProc stores a Go function calling p into fptr. It serves entry points
// obtained from a loader such as eglGetProcAddress rather than dlsym.
func BindProc(fptr any, p uintptr) {
	registerFunc(fptr, p)
}
