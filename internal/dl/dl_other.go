//go:build !linux && !darwin && !freebsd

package dl

import "errors"

var errUnsupported = errors.New("dynamic loading is not supported on this OS")

func dlopen(string) (uintptr, error) { return 0, errUnsupported }

func dlsym(uintptr, string) (uintptr, error) { return 0, errUnsupported }

func dlclose(uintptr) error { return nil }

func registerFunc(any, uintptr) {}
