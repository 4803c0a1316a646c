package waffle

import (
	"github.com/1broseidon/glwaffle/internal/dl"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/platform"
	"github.com/1broseidon/glwaffle/internal/werror"
)

// GetProcAddress resolves a GL entry point through the platform's loader
// (eglGetProcAddress, glXGetProcAddress, ...). An unknown name yields 0
// without an error. Some loaders return non-zero for any name; use DLSym
// for core entry points.
func GetProcAddress(name string) (uintptr, error) {
	inst, err := enter()
	if err != nil {
		return 0, err
	}
	p := inst.Backend.GetProcAddress(name)
	logger().Debug("waffle_get_proc_address", "name", name, "found", p != 0)
	return p, nil
}

func checkDL(token int32) error {
	if _, ok := dl.KeyFor(token); !ok {
		return werror.Setf(werror.BadParameter, "dl has bad value %s", enum.Describe(token))
	}
	return nil
}

// DLCanOpen reports whether the library for a WAFFLE_DL_* token can be
// opened on this platform.
func DLCanOpen(token int32) (bool, error) {
	inst, err := enter()
	if err != nil {
		return false, err
	}
	if err := checkDL(token); err != nil {
		return false, err
	}
	return inst.Backend.DLCanOpen(token), nil
}

// DLSym looks name up in the library for a WAFFLE_DL_* token.
func DLSym(token int32, name string) (uintptr, error) {
	inst, err := enter()
	if err != nil {
		return 0, err
	}
	if err := checkDL(token); err != nil {
		return 0, err
	}
	p, err := inst.Backend.DLSym(token, name)
	if err != nil {
		return 0, platform.Report(err)
	}
	logger().Debug("waffle_dl_sym", "dl", enum.Describe(token), "name", name)
	return p, nil
}
