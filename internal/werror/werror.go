// Package werror holds the sticky, per-thread error state shared by the
// dispatch core and every backend.
//
// The first error written after a Reset wins; later writes are dropped until
// the next Reset. Internal errors are the exception and always overwrite,
// since they indicate a defect in glwaffle itself.
package werror

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"unicode/utf8"
)

// MaxMessageLen bounds the stored message. Longer messages are truncated.
const MaxMessageLen = 1024

// Code is an error code as reported by ErrorGetCode.
type Code int32

const (
	NoError                Code = 0x00
	Fatal                  Code = 0x01
	Unknown                Code = 0x02
	Internal               Code = 0x03
	OutOfMemory            Code = 0x04
	NotInitialized         Code = 0x05
	AlreadyInitialized     Code = 0x06
	BadAttribute           Code = 0x08
	BadParameter           Code = 0x10
	BadDisplayMatch        Code = 0x11
	UnsupportedOnPlatform  Code = 0x12
	NotImplemented         Code = 0x13
	OldObject              Code = 0x14
	IncompatibleAttributes Code = 0x15
)

var codeNames = map[Code]string{
	NoError:                "WAFFLE_NO_ERROR",
	Fatal:                  "WAFFLE_ERROR_FATAL",
	Unknown:                "WAFFLE_ERROR_UNKNOWN",
	Internal:               "WAFFLE_ERROR_INTERNAL",
	OutOfMemory:            "WAFFLE_ERROR_BAD_ALLOC",
	NotInitialized:         "WAFFLE_ERROR_NOT_INITIALIZED",
	AlreadyInitialized:     "WAFFLE_ERROR_ALREADY_INITIALIZED",
	BadAttribute:           "WAFFLE_ERROR_BAD_ATTRIBUTE",
	BadParameter:           "WAFFLE_ERROR_BAD_PARAMETER",
	BadDisplayMatch:        "WAFFLE_ERROR_BAD_DISPLAY_MATCH",
	UnsupportedOnPlatform:  "WAFFLE_ERROR_UNSUPPORTED_ON_PLATFORM",
	NotImplemented:         "WAFFLE_ERROR_NOT_IMPLEMENTED",
	OldObject:              "WAFFLE_ERROR_OLD_OBJECT",
	IncompatibleAttributes: "WAFFLE_ERROR_INCOMPATIBLE_ATTRIBUTES",
}

// CodeString translates a code to its symbolic name. Unknown codes yield "".
func CodeString(c Code) string {
	return codeNames[c]
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("WAFFLE_ERROR(%#x)", int32(c))
}

// Error is the Go error form of an error state.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches another *Error by code only, so callers can write
// errors.Is(err, &werror.Error{Code: werror.OldObject}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Info is a snapshot of the calling thread's error state.
type Info struct {
	Code    Code
	Message string
}

type state struct {
	code     Code
	message  string
	disabled int
}

var (
	mu     sync.Mutex
	states = make(map[int]*state)
)

// with runs fn on the calling thread's state, creating it on first use.
func with(fn func(s *state)) {
	tid := threadID()
	mu.Lock()
	defer mu.Unlock()
	s := states[tid]
	if s == nil {
		s = &state{}
		states[tid] = s
	}
	fn(s)
}

// Reset clears the code and message of the calling thread.
func Reset() {
	with(func(s *state) {
		s.code = NoError
		s.message = ""
	})
}

// Release drops the calling thread's state entirely. The next access
// recreates it empty. States are never dropped on their own, so code that
// runs on short-lived locked threads must call Release before unlocking.
func Release() {
	tid := threadID()
	mu.Lock()
	delete(states, tid)
	mu.Unlock()
}

// Set records code with an empty message, subject to first-error-wins.
// It returns the error now held by the thread, or the requested error when
// writes are suppressed.
func Set(code Code) error {
	return write(code, "")
}

// Setf records code and a formatted message, subject to first-error-wins.
func Setf(code Code, format string, args ...any) error {
	return write(code, fmt.Sprintf(format, args...))
}

// Internalf records an internal error tagged with the caller's location. It
// always overwrites any pending error.
func Internalf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if _, file, line, ok := runtime.Caller(1); ok {
		msg = fmt.Sprintf("%s:%d: %s", shortFile(file), line, msg)
	}
	return write(Internal, msg)
}

func write(code Code, msg string) error {
	msg = truncate(msg, MaxMessageLen)
	var out *Error
	with(func(s *state) {
		if s.disabled > 0 {
			out = &Error{Code: code, Message: msg}
			return
		}
		if s.code == NoError || code == Internal {
			s.code = code
			s.message = msg
		}
		out = &Error{Code: s.code, Message: s.message}
	})
	return out
}

// Suppress disables writes on the calling thread until the returned function
// is called. Regions nest.
func Suppress() (restore func()) {
	with(func(s *state) { s.disabled++ })
	var once sync.Once
	return func() {
		once.Do(func() {
			with(func(s *state) {
				if s.disabled > 0 {
					s.disabled--
				}
			})
		})
	}
}

// GetCode returns the calling thread's current code.
func GetCode() Code {
	var c Code
	with(func(s *state) { c = s.code })
	return c
}

// GetInfo returns the calling thread's code and message.
func GetInfo() Info {
	var i Info
	with(func(s *state) { i = Info{Code: s.code, Message: s.message} })
	return i
}

// Err returns the calling thread's pending error, or nil.
func Err() error {
	i := GetInfo()
	if i.Code == NoError {
		return nil
	}
	return &Error{Code: i.Code, Message: i.Message}
}

// CodeOf extracts the code from err. Non-werror errors map to Unknown.
func CodeOf(err error) Code {
	if err == nil {
		return NoError
	}
	var we *Error
	if errors.As(err, &we) {
		return we.Code
	}
	return Unknown
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	i := max
	for i > 0 && i > max-utf8.UTFMax && !utf8.RuneStart(s[i]) {
		i--
	}
	return s[:i]
}

func shortFile(path string) string {
	n := 0
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			n++
			if n == 2 {
				return path[i+1:]
			}
		}
	}
	return path
}
