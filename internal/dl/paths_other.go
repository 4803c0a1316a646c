//go:build !linux && !darwin

package dl

var defaultPaths = map[string]string{}
