package probe

import (
	"fmt"
	"strings"

	"github.com/1broseidon/glwaffle/internal/dl"
)

const (
	glVendor                 = 0x1f00
	glRenderer               = 0x1f01
	glVersion                = 0x1f02
	glExtensions             = 0x1f03
	glShadingLanguageVersion = 0x8b8c
	glNumExtensions          = 0x821d
)

// Resolver looks up a GL entry point by name.
type Resolver func(name string) (uintptr, error)

// GL is the part of the GL API a probe reads.
type GL interface {
	String(name uint32) string
	Extensions() []string
}

// LoadGL binds glGetString, plus glGetStringi and glGetIntegerv when they
// resolve, for the context current on the calling thread.
func LoadGL(resolve Resolver) (GL, error) {
	f := &glFuncs{}
	p, err := resolve("glGetString")
	if err != nil {
		return nil, fmt.Errorf("resolve glGetString: %w", err)
	}
	dl.BindProc(&f.getString, p)

	pi, erri := resolve("glGetStringi")
	pv, errv := resolve("glGetIntegerv")
	if erri == nil && errv == nil {
		dl.BindProc(&f.getStringi, pi)
		dl.BindProc(&f.getIntegerv, pv)
	}
	return f, nil
}

type glFuncs struct {
	getString   func(name uint32) string
	getStringi  func(name, index uint32) string
	getIntegerv func(name uint32, data *int32)
}

func (f *glFuncs) String(name uint32) string {
	return f.getString(name)
}

// Extensions reads GL_EXTENSIONS, falling back to glGetStringi for core
// profiles, where the single string is gone.
func (f *glFuncs) Extensions() []string {
	if exts := strings.Fields(f.getString(glExtensions)); len(exts) > 0 {
		return exts
	}
	if f.getStringi == nil {
		return nil
	}
	var n int32
	f.getIntegerv(glNumExtensions, &n)
	exts := make([]string, 0, n)
	for i := int32(0); i < n; i++ {
		exts = append(exts, f.getStringi(glExtensions, uint32(i)))
	}
	return exts
}
