//go:build linux

package werror

import "golang.org/x/sys/unix"

func threadID() int {
	return unix.Gettid()
}
