// Package configattrs resolves raw attribute lists into validated settings.
//
// Config lists are resolved in two phases. Parse handles every framebuffer
// and context key except WAFFLE_CONTEXT_API, which it skips; ParseContext
// then consumes the API and applies the API-specific defaults and checks.
// Backends rely on that split, so Parse must keep accepting the key without
// interpreting it.
package configattrs

import (
	"github.com/1broseidon/glwaffle/internal/attrib"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// Attrs is a resolved config request.
type Attrs struct {
	RedSize     int32
	GreenSize   int32
	BlueSize    int32
	AlphaSize   int32
	DepthSize   int32
	StencilSize int32

	// ColorBufferSize is the sum of the color channels that are not
	// DONT_CARE, or DONT_CARE when all four are.
	ColorBufferSize int32

	SampleBuffers  bool
	Samples        int32
	DoubleBuffered bool
	AccumBuffer    bool

	ContextAPI        enum.Enum
	MajorVersion      int32
	MinorVersion      int32
	Profile           enum.Enum
	ForwardCompatible bool
	Debug             bool
	RobustAccess      bool
}

// Default returns the settings used for keys a list does not mention.
func Default() Attrs {
	return Attrs{
		RedSize:         enum.DontCare,
		GreenSize:       enum.DontCare,
		BlueSize:        enum.DontCare,
		AlphaSize:       enum.DontCare,
		DepthSize:       enum.DontCare,
		StencilSize:     enum.DontCare,
		ColorBufferSize: enum.DontCare,
		DoubleBuffered:  true,
		ContextAPI:      enum.None,
		MajorVersion:    enum.DontCare,
		MinorVersion:    enum.DontCare,
		Profile:         enum.None,
	}
}

// Version returns the requested context version as major*10+minor.
func (a Attrs) Version() int32 {
	return a.MajorVersion*10 + a.MinorVersion
}

type kind int

const (
	kindSize kind = iota
	kindBool
	kindVersion
	kindProfile
	kindSkip
)

type field struct {
	kind  kind
	set32 func(a *Attrs, v int32)
	setB  func(a *Attrs, v bool)
}

var fields = map[enum.Enum]field{
	enum.RedSize:     {kind: kindSize, set32: func(a *Attrs, v int32) { a.RedSize = v }},
	enum.GreenSize:   {kind: kindSize, set32: func(a *Attrs, v int32) { a.GreenSize = v }},
	enum.BlueSize:    {kind: kindSize, set32: func(a *Attrs, v int32) { a.BlueSize = v }},
	enum.AlphaSize:   {kind: kindSize, set32: func(a *Attrs, v int32) { a.AlphaSize = v }},
	enum.DepthSize:   {kind: kindSize, set32: func(a *Attrs, v int32) { a.DepthSize = v }},
	enum.StencilSize: {kind: kindSize, set32: func(a *Attrs, v int32) { a.StencilSize = v }},
	enum.Samples:     {kind: kindSize, set32: func(a *Attrs, v int32) { a.Samples = v }},

	enum.SampleBuffers:            {kind: kindBool, setB: func(a *Attrs, v bool) { a.SampleBuffers = v }},
	enum.DoubleBuffered:           {kind: kindBool, setB: func(a *Attrs, v bool) { a.DoubleBuffered = v }},
	enum.AccumBuffer:              {kind: kindBool, setB: func(a *Attrs, v bool) { a.AccumBuffer = v }},
	enum.ContextForwardCompatible: {kind: kindBool, setB: func(a *Attrs, v bool) { a.ForwardCompatible = v }},
	enum.ContextDebug:             {kind: kindBool, setB: func(a *Attrs, v bool) { a.Debug = v }},
	enum.ContextRobustAccess:      {kind: kindBool, setB: func(a *Attrs, v bool) { a.RobustAccess = v }},

	enum.ContextMajorVersion: {kind: kindVersion, set32: func(a *Attrs, v int32) { a.MajorVersion = v }},
	enum.ContextMinorVersion: {kind: kindVersion, set32: func(a *Attrs, v int32) { a.MinorVersion = v }},
	enum.ContextProfile:      {kind: kindProfile, set32: func(a *Attrs, v int32) { a.Profile = v }},

	enum.ContextAPI: {kind: kindSkip},
}

// Parse resolves a config attribute list. A nil or empty list yields
// Default(). Later pairs override earlier pairs with the same key.
func Parse(list []int32) (Attrs, error) {
	a := Default()

	if attrib.Dangling(list) {
		i := len(list) - 1
		return Attrs{}, werror.Setf(werror.BadAttribute,
			"attribute %s at index %d has no value", enum.Describe(list[i]), i)
	}

	for i := 0; i+1 < len(list) && list[i] != 0; i += 2 {
		key, value := list[i], list[i+1]
		f, ok := fields[key]
		if !ok {
			return Attrs{}, werror.Setf(werror.BadAttribute,
				"unrecognized attribute %s at index %d", enum.Describe(key), i)
		}

		switch f.kind {
		case kindSkip:
		case kindSize, kindVersion:
			if value < 0 && value != enum.DontCare {
				return Attrs{}, badValue(key, value)
			}
			f.set32(&a, value)
		case kindBool:
			if value != 0 && value != 1 {
				return Attrs{}, badValue(key, value)
			}
			f.setB(&a, value == 1)
		case kindProfile:
			switch value {
			case enum.None, enum.DontCare, enum.ContextCoreProfile, enum.ContextCompatProfile:
			default:
				return Attrs{}, badValue(key, value)
			}
			f.set32(&a, value)
		}
	}

	if !a.SampleBuffers && a.Samples > 0 {
		return Attrs{}, werror.Setf(werror.IncompatibleAttributes,
			"%s is %d but %s is false",
			enum.String(enum.Samples), a.Samples, enum.String(enum.SampleBuffers))
	}

	a.ColorBufferSize = colorBufferSize(a)
	return a, nil
}

func colorBufferSize(a Attrs) int32 {
	var sum int32
	counted := false
	for _, c := range []int32{a.RedSize, a.GreenSize, a.BlueSize, a.AlphaSize} {
		if c == enum.DontCare {
			continue
		}
		sum += c
		counted = true
	}
	if !counted {
		return enum.DontCare
	}
	return sum
}

func badValue(key, value int32) error {
	return werror.Setf(werror.BadAttribute, "%s has bad value %#x", enum.Describe(key), value)
}

func missingKey(key int32) error {
	return werror.Setf(werror.BadAttribute,
		"attribute list is missing required key %s", enum.Describe(key))
}
