package configattrs

import (
	"github.com/1broseidon/glwaffle/internal/attrib"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// ParseContext reads WAFFLE_CONTEXT_API from list into a, fills the
// API-specific version and profile defaults, and rejects combinations the
// API cannot provide. a must already hold the result of Parse on the same
// list.
func ParseContext(list []int32, a *Attrs) error {
	var api enum.Enum
	found, profileSet := false, false
	// Last one wins, matching Parse.
	for _, p := range attrib.Pairs(list) {
		switch p.Key {
		case enum.ContextAPI:
			api, found = p.Value, true
		case enum.ContextProfile:
			profileSet = true
		}
	}
	if !found {
		return missingKey(enum.ContextAPI)
	}

	switch api {
	case enum.ContextOpenGL, enum.ContextOpenGLES1, enum.ContextOpenGLES2, enum.ContextOpenGLES3:
	default:
		return badValue(enum.ContextAPI, api)
	}
	a.ContextAPI = api

	major, minor := defaultVersion(api)
	if a.MajorVersion == enum.DontCare {
		a.MajorVersion = major
	}
	if a.MinorVersion == enum.DontCare {
		a.MinorVersion = minor
	}

	if err := checkVersion(a); err != nil {
		return err
	}
	if err := checkProfile(a, profileSet); err != nil {
		return err
	}

	if a.ForwardCompatible && (api != enum.ContextOpenGL || a.Version() < 30) {
		return werror.Setf(werror.BadAttribute,
			"%s is only valid for %s version 3.0 or later",
			enum.String(enum.ContextForwardCompatible), enum.String(enum.ContextOpenGL))
	}
	return nil
}

func defaultVersion(api enum.Enum) (int32, int32) {
	switch api {
	case enum.ContextOpenGLES2:
		return 2, 0
	case enum.ContextOpenGLES3:
		return 3, 0
	default:
		return 1, 0
	}
}

func checkVersion(a *Attrs) error {
	major, minor := a.MajorVersion, a.MinorVersion
	ok := true
	switch a.ContextAPI {
	case enum.ContextOpenGL:
		ok = major >= 1
	case enum.ContextOpenGLES1:
		ok = major == 1 && (minor == 0 || minor == 1)
	case enum.ContextOpenGLES2:
		ok = major == 2 && minor == 0
	case enum.ContextOpenGLES3:
		ok = major == 3
	}
	if !ok {
		return werror.Setf(werror.BadAttribute,
			"for %s, the requested version %d.%d is not supported",
			enum.String(a.ContextAPI), major, minor)
	}
	return nil
}

// checkProfile validates the profile. set reports whether the list carried
// WAFFLE_CONTEXT_PROFILE at all.
func checkProfile(a *Attrs, set bool) error {
	requested := a.Profile != enum.None && a.Profile != enum.DontCare

	if a.ContextAPI != enum.ContextOpenGL {
		if requested {
			return werror.Setf(werror.BadAttribute,
				"%s is not valid for %s", enum.String(enum.ContextProfile), enum.String(a.ContextAPI))
		}
		a.Profile = enum.None
		return nil
	}

	if a.Version() < 32 {
		if requested {
			return werror.Setf(werror.BadAttribute,
				"%s requires %s version 3.2 or later, got %d.%d",
				enum.String(enum.ContextProfile), enum.String(enum.ContextOpenGL),
				a.MajorVersion, a.MinorVersion)
		}
		a.Profile = enum.None
		return nil
	}

	switch {
	case !set:
		a.Profile = enum.ContextCoreProfile
	case !requested:
		return werror.Setf(werror.BadAttribute,
			"%s for %s version %d.%d must be %s or %s, got %s",
			enum.String(enum.ContextProfile), enum.String(enum.ContextOpenGL),
			a.MajorVersion, a.MinorVersion,
			enum.String(enum.ContextCoreProfile), enum.String(enum.ContextCompatProfile),
			enum.Describe(a.Profile))
	}
	return nil
}
