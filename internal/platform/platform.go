// Package platform selects the active backend and tracks the single
// platform instance a process may have at a time.
package platform

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/1broseidon/glwaffle/internal/api"
	"github.com/1broseidon/glwaffle/internal/configattrs"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// Factory instantiates a backend. It may fail, for example when a required
// shared library is missing.
type Factory func(logger *slog.Logger) (Backend, error)

// Instance is the state created by a successful Init.
type Instance struct {
	ID      uint64
	Tag     enum.Enum
	Backend Backend
}

// Name returns the symbolic name of the platform tag.
func (i *Instance) Name() string {
	return enum.Describe(i.Tag)
}

var (
	registryMu sync.RWMutex
	factories  = make(map[enum.Enum]Factory)

	// lifecycleMu serializes Init and Finish; forwarded calls only read active.
	lifecycleMu sync.Mutex
	active      atomic.Pointer[Instance]

	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(slog.New(slog.DiscardHandler))
}

// SetLogger sets the logger used by the core and handed to backends.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the core logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// Register makes a backend available under tag. Backends register from
// their package init; registering a tag twice replaces the factory.
func Register(tag enum.Enum, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[tag] = f
}

// Unregister removes the backend registered under tag.
func Unregister(tag enum.Enum) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, tag)
}

// Registered returns the tags with a compiled-in backend, sorted.
func Registered() []enum.Enum {
	registryMu.RLock()
	defer registryMu.RUnlock()
	tags := make([]enum.Enum, 0, len(factories))
	for tag := range factories {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

func lookup(tag enum.Enum) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := factories[tag]
	return f, ok
}

// Init resolves the init attribute list, instantiates the selected backend
// and makes it the active platform.
func Init(list []int32) (*Instance, error) {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()

	if active.Load() != nil {
		return nil, werror.Setf(werror.AlreadyInitialized, "waffle_init has already been called")
	}

	tag, err := configattrs.ParseInit(list)
	if err != nil {
		return nil, err
	}

	factory, ok := lookup(tag)
	if !ok {
		return nil, werror.Setf(werror.UnsupportedOnPlatform,
			"glwaffle was built without support for %s", enum.Describe(tag))
	}

	log := Logger().With("platform", enum.Describe(tag))
	backend, err := factory(log)
	if err != nil {
		return nil, Report(err)
	}

	inst := &Instance{ID: api.NewID(), Tag: tag, Backend: backend}
	active.Store(inst)
	log.Debug("platform initialized", "id", inst.ID)
	return inst, nil
}

// Finish tears down the active platform. It succeeds trivially when no
// platform is active. The platform is always released, even when backend
// teardown reports errors.
func Finish() error {
	lifecycleMu.Lock()
	defer lifecycleMu.Unlock()

	inst := active.Swap(nil)
	if inst == nil {
		return nil
	}

	err := inst.Backend.Teardown()
	Logger().Debug("platform finished", "platform", inst.Name(), "id", inst.ID, "err", err)
	return Report(err)
}

// Current returns the active platform, or nil.
func Current() *Instance {
	return active.Load()
}

// Report makes sure a backend failure is visible in the error channel. A
// backend that already recorded a code keeps it; anything else becomes
// WAFFLE_ERROR_UNKNOWN.
func Report(err error) error {
	if err == nil {
		return nil
	}
	var we *werror.Error
	if errors.As(err, &we) {
		return werror.Setf(we.Code, "%s", we.Message)
	}
	return werror.Setf(werror.Unknown, "%v", err)
}
