package waffle

import (
	"github.com/1broseidon/glwaffle/internal/attrib"
	"github.com/1broseidon/glwaffle/internal/enum"
	"github.com/1broseidon/glwaffle/internal/werror"
)

type (
	// Error is the error type returned by every fallible call.
	Error = werror.Error
	// ErrorCode is a WAFFLE_* error code.
	ErrorCode = werror.Code
	// ErrorInfo is a snapshot of the calling thread's error state.
	ErrorInfo = werror.Info
)

// ErrorGetCode returns the calling thread's error code. It never changes
// the error state and is legal without a platform.
func ErrorGetCode() ErrorCode {
	return werror.GetCode()
}

// ErrorGetInfo returns the calling thread's error code and message.
func ErrorGetInfo() ErrorInfo {
	return werror.GetInfo()
}

// ErrorToString names an error code. Unknown codes yield "".
func ErrorToString(code ErrorCode) string {
	return werror.CodeString(code)
}

// CodeOf extracts the error code from an error returned by this package.
func CodeOf(err error) ErrorCode {
	return werror.CodeOf(err)
}

// EnumToString names a WAFFLE_* token. Unknown tokens yield "".
func EnumToString(e int32) string {
	return enum.String(e)
}

// AttribListLength counts the pairs before the terminating zero key.
func AttribListLength(list []int) int {
	return attrib.Length(list)
}

// AttribListGet returns the value of the first pair with key.
func AttribListGet(list []int, key int) (int, bool) {
	return attrib.Get(list, key)
}

// AttribListGetWithDefault returns the value of key, or def when absent.
func AttribListGetWithDefault(list []int, key, def int) int {
	return attrib.GetWithDefault(list, key, def)
}

// AttribListUpdate replaces the value of the first pair with key in place.
// It reports false, leaving list unchanged, when key is absent.
func AttribListUpdate(list []int, key, value int) bool {
	return attrib.Update(list, key, value)
}
