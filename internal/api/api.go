// Package api carries the identity every public handle embeds, and the entry
// checks that validate handles before a call is forwarded to a backend.
package api

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/1broseidon/glwaffle/internal/werror"
)

// Object identifies a display, config, context or window.
type Object struct {
	// PlatformID is the id of the platform instance that created the object.
	PlatformID uint64
	// ObjectID is unique for the life of the process.
	ObjectID uint64
	// DisplayID is the ObjectID of the owning display, or the object's own
	// id for a display.
	DisplayID uint64
}

var counter atomic.Uint64

// abort ends the process. Overridden in tests.
var abort = func(msg string) {
	fmt.Fprintf(os.Stderr, "glwaffle: fatal: %s\n", msg)
	os.Exit(134)
}

// NewID returns the next process-wide id, starting at 1. A wrap to zero
// would alias live objects, so it aborts the process.
func NewID() uint64 {
	id := counter.Add(1)
	if id == 0 {
		abort("object id counter wrapped around")
	}
	return id
}

// NewDisplay mints the identity of a display created under platformID.
func NewDisplay(platformID uint64) Object {
	id := NewID()
	return Object{PlatformID: platformID, ObjectID: id, DisplayID: id}
}

// NewChild mints the identity of an object created against display.
func NewChild(platformID uint64, display *Object) Object {
	return Object{
		PlatformID: platformID,
		ObjectID:   NewID(),
		DisplayID:  display.DisplayID,
	}
}

// CheckEntry validates the objects handed to one public call, given the id
// of the current platform (0 when none is initialized). The checks run in a
// fixed order across all objects: initialized, non-nil, same platform, same
// display. The first failure is recorded in the error channel and returned.
func CheckEntry(current uint64, objs ...*Object) error {
	if current == 0 {
		return werror.Setf(werror.NotInitialized, "waffle_init has not been called")
	}

	for i, o := range objs {
		if o == nil {
			return werror.Setf(werror.BadParameter, "object %d of %d is null", i+1, len(objs))
		}
	}

	for _, o := range objs {
		if o.PlatformID != current {
			return werror.Setf(werror.OldObject,
				"object %d was created by platform %d, current platform is %d",
				o.ObjectID, o.PlatformID, current)
		}
	}

	for _, o := range objs[min(1, len(objs)):] {
		if o.DisplayID != objs[0].DisplayID {
			return werror.Setf(werror.BadDisplayMatch,
				"object %d belongs to display %d, object %d belongs to display %d",
				objs[0].ObjectID, objs[0].DisplayID, o.ObjectID, o.DisplayID)
		}
	}
	return nil
}
