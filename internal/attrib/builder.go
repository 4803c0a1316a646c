package attrib

// Builder accumulates key/value pairs for a list handed to a native API.
// The zero value is ready to use.
type Builder[T Integer] struct {
	pairs []T
}

// Append adds a pair. Later pairs do not replace earlier ones; native
// consumers see both.
func (b *Builder[T]) Append(key, value T) *Builder[T] {
	b.pairs = append(b.pairs, key, value)
	return b
}

// Set replaces the value of an existing key or appends a new pair.
func (b *Builder[T]) Set(key, value T) *Builder[T] {
	for i := 0; i+1 < len(b.pairs); i += 2 {
		if b.pairs[i] == key {
			b.pairs[i+1] = value
			return b
		}
	}
	return b.Append(key, value)
}

// Len returns the number of pairs appended so far.
func (b *Builder[T]) Len() int {
	return len(b.pairs) / 2
}

// List returns a zero-terminated copy.
func (b *Builder[T]) List() []T {
	return b.Terminated(0)
}

// Terminated returns a copy ending in sentinel, for APIs such as EGL that
// terminate with a value other than zero.
func (b *Builder[T]) Terminated(sentinel T) []T {
	out := make([]T, len(b.pairs), len(b.pairs)+1)
	copy(out, b.pairs)
	return append(out, sentinel)
}
