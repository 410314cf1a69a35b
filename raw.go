package vector

// RawBuffer owns storage for a fixed number of elements of type T.
//
// The buffer knows nothing about which slots hold live elements: it never
// runs lifecycle hooks, and releasing it does not destroy anything. That is
// the owner's job. A RawBuffer is either null (no storage, Cap 0) or holds
// storage for exactly Cap elements.
//
// A RawBuffer must not be copied after first use; transfer it with Take or
// Swap.
type RawBuffer[T any] struct {
	buf []T // len(buf) == cap(buf) == capacity, nil iff capacity == 0
}

// Allocate returns a buffer with storage for exactly capacity elements.
// A zero capacity yields the null buffer.
func Allocate[T any](capacity int) (RawBuffer[T], error) {
	return AllocateLimit[T](capacity, 0)
}

// AllocateLimit is like Allocate but fails with ErrAllocation when the
// storage would exceed maxBytes. A maxBytes <= 0 means no limit.
func AllocateLimit[T any](capacity int, maxBytes int64) (RawBuffer[T], error) {
	buf, err := allocSlice[T](capacity, maxBytes)
	if err != nil {
		return RawBuffer[T]{}, err
	}
	return RawBuffer[T]{buf: buf}, nil
}

// Cap returns the number of elements the storage can hold.
func (b *RawBuffer[T]) Cap() int {
	return len(b.buf)
}

// Bytes returns the reserved storage size in bytes.
func (b *RawBuffer[T]) Bytes() int {
	return len(b.buf) * int(elemSize[T]())
}

// Slot returns the address of slot i.
func (b *RawBuffer[T]) Slot(i int) *T {
	if debugChecks && (i < 0 || i >= len(b.buf)) {
		failf("slot %d out of range [0,%d)", i, len(b.buf))
	}
	return &b.buf[i]
}

// Span returns slots [from, to) of the storage.
func (b *RawBuffer[T]) Span(from, to int) []T {
	if debugChecks && (from < 0 || from > to || to > len(b.buf)) {
		failf("span [%d,%d) out of range [0,%d]", from, to, len(b.buf))
	}
	return b.buf[from:to:to]
}

// Data returns the whole storage, or nil for the null buffer.
func (b *RawBuffer[T]) Data() []T {
	return b.buf
}

// Swap exchanges storage with other. Element contents are not touched.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.buf, other.buf = other.buf, b.buf
}

// Take moves other's storage into b, releasing b's own storage first.
// other is left null. Taking from itself is a no-op.
func (b *RawBuffer[T]) Take(other *RawBuffer[T]) {
	if b == other {
		return
	}
	b.buf = other.buf
	other.buf = nil
}

// Release drops the storage and leaves the buffer null.
// Releasing a null buffer is a no-op.
func (b *RawBuffer[T]) Release() {
	b.buf = nil
}
