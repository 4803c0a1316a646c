// Package attrib implements the flat {key, value, ..., 0} attribute list
// format used across the public API and toward native GL/window-system calls.
//
// Lists are generic over the integer width: int32 for the ABI-stable public
// form and int for the pointer-width internal form. Scanning always stops at
// the first zero key; anything past the sentinel is never visited.
package attrib

// Integer is the set of element types an attribute list may use.
type Integer interface {
	~int32 | ~int
}

// Pair is one key/value entry.
type Pair[T Integer] struct {
	Key   T
	Value T
}

// Length returns the number of pairs before the terminating zero key. A nil
// list has length 0. A trailing key with no value slot ends the list.
func Length[T Integer](list []T) int {
	n := 0
	for i := 0; i+1 < len(list) && list[i] != 0; i += 2 {
		n++
	}
	return n
}

// Get returns the value of the first pair whose key matches.
func Get[T Integer](list []T, key T) (T, bool) {
	for i := 0; i+1 < len(list) && list[i] != 0; i += 2 {
		if list[i] == key {
			return list[i+1], true
		}
	}
	return 0, false
}

// GetWithDefault is Get, returning def when key is absent.
func GetWithDefault[T Integer](list []T, key T, def T) T {
	if v, ok := Get(list, key); ok {
		return v
	}
	return def
}

// Lookup stores the value for key into *value and reports whether it was
// found. When key is absent *value is left untouched.
func Lookup[T Integer](list []T, key T, value *T) bool {
	v, ok := Get(list, key)
	if ok {
		*value = v
	}
	return ok
}

// Update overwrites the value of the first pair whose key matches, in place.
// It returns false if the key is absent; the list is never resized.
func Update[T Integer](list []T, key T, value T) bool {
	for i := 0; i+1 < len(list) && list[i] != 0; i += 2 {
		if list[i] == key {
			list[i+1] = value
			return true
		}
	}
	return false
}

// Pairs returns the pairs before the sentinel.
func Pairs[T Integer](list []T) []Pair[T] {
	out := make([]Pair[T], 0, Length(list))
	for i := 0; i+1 < len(list) && list[i] != 0; i += 2 {
		out = append(out, Pair[T]{Key: list[i], Value: list[i+1]})
	}
	return out
}

// Dangling reports whether the list ends in a non-zero key that has no value
// slot, i.e. it was cut off before its sentinel.
func Dangling[T Integer](list []T) bool {
	i := 0
	for i+1 < len(list) && list[i] != 0 {
		i += 2
	}
	return i == len(list)-1 && list[i] != 0
}

// Widen converts a 32-bit list to the pointer-width form. The conversion is
// lossless and copies up to and including the sentinel.
func Widen(list []int32) []int {
	if list == nil {
		return nil
	}
	n := 2*Length(list) + 1
	out := make([]int, n)
	for i := 0; i < n-1; i++ {
		out[i] = int(list[i])
	}
	return out
}
