package vector

import "iter"

// Vector is a growable contiguous sequence of T.
//
// Slots [0, Len) always hold live elements; slots [Len, Cap) are zero and
// never observed. L fixes how elements are relocated, copied and destroyed
// (see Trivial, MoveOnly and Copyable).
//
// The zero value is an empty vector ready to use. A Vector is owned by one
// goroutine at a time and must not be copied; use Clone, Move or Swap.
type Vector[T any, L Lifecycle[T]] struct {
	data     RawBuffer[T]
	size     int
	maxBytes int64
	allocs   int
}

// Of is a Vector of plain values.
type Of[T any] = Vector[T, Trivial[T]]

// New returns an empty vector configured by opts.
func New[T any, L Lifecycle[T]](opts ...Option) (*Vector[T, L], error) {
	o := applyOptions(opts)
	v := &Vector[T, L]{maxBytes: o.maxBytes}
	if err := v.Reserve(o.capacity); err != nil {
		return nil, err
	}
	return v, nil
}

// NewOf returns an empty vector of plain values.
func NewOf[T any](opts ...Option) (*Of[T], error) {
	return New[T, Trivial[T]](opts...)
}

// NewLen returns a vector holding n zero values.
func NewLen[T any, L Lifecycle[T]](n int, opts ...Option) (*Vector[T, L], error) {
	v, err := New[T, L](opts...)
	if err != nil {
		return nil, err
	}
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// FromSlice returns a vector holding copies of the values in s.
func FromSlice[T any, L Lifecycle[T]](s []T, opts ...Option) (*Vector[T, L], error) {
	v, err := New[T, L](opts...)
	if err != nil {
		return nil, err
	}
	if err := v.Reserve(len(s)); err != nil {
		return nil, err
	}
	var lc L
	if err := lc.Copy(v.data.Span(0, len(s)), s); err != nil {
		return nil, err
	}
	v.size = len(s)
	return v, nil
}

// Clone returns a deep copy of v whose capacity equals v.Len().
func (v *Vector[T, L]) Clone() (*Vector[T, L], error) {
	buf, err := AllocateLimit[T](v.size, v.maxBytes)
	if err != nil {
		return nil, err
	}
	var lc L
	if err := lc.Copy(buf.Span(0, v.size), v.live()); err != nil {
		return nil, err
	}
	c := &Vector[T, L]{maxBytes: v.maxBytes}
	c.adopt(&buf)
	c.size = v.size
	return c, nil
}

// Assign replaces the contents of v with copies of other's elements.
//
// When other does not fit in v's storage, a full copy is built first and
// swapped in, so a failure leaves v unchanged. Otherwise the existing storage
// is reused; a failing copy then leaves v empty.
func (v *Vector[T, L]) Assign(other *Vector[T, L]) error {
	if v == other {
		return nil
	}
	var lc L
	if other.size > v.Cap() {
		buf, err := AllocateLimit[T](other.size, v.maxBytes)
		if err != nil {
			return err
		}
		if err := lc.Copy(buf.Span(0, other.size), other.live()); err != nil {
			return err
		}
		lc.Destroy(v.live())
		v.adopt(&buf)
		v.size = other.size
		return nil
	}

	lc.Destroy(v.live())
	v.size = 0
	if err := lc.Copy(v.data.Span(0, other.size), other.live()); err != nil {
		return err
	}
	v.size = other.size
	return nil
}

// Move transfers v's storage and elements to a new vector. v is left empty
// with no storage.
func (v *Vector[T, L]) Move() *Vector[T, L] {
	m := &Vector[T, L]{size: v.size, maxBytes: v.maxBytes, allocs: v.allocs}
	m.data.Take(&v.data)
	v.size, v.allocs = 0, 0
	return m
}

// MoveFrom destroys v's elements and takes over other's storage and
// elements. other is left empty with no storage.
func (v *Vector[T, L]) MoveFrom(other *Vector[T, L]) {
	if v == other {
		return
	}
	var lc L
	lc.Destroy(v.live())
	v.data.Take(&other.data)
	v.size, other.size = other.size, 0
	v.allocs += other.allocs
	other.allocs = 0
}

// Swap exchanges storage and elements with other in constant time.
func (v *Vector[T, L]) Swap(other *Vector[T, L]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Release destroys all elements and drops the storage. The vector remains
// usable as an empty vector.
func (v *Vector[T, L]) Release() {
	var lc L
	lc.Destroy(v.live())
	v.size = 0
	v.data.Release()
}

// Len returns the number of elements.
func (v *Vector[T, L]) Len() int {
	return v.size
}

// Cap returns the number of elements v can hold before growing.
func (v *Vector[T, L]) Cap() int {
	return v.data.Cap()
}

// Empty reports whether v has no elements.
func (v *Vector[T, L]) Empty() bool {
	return v.size == 0
}

// At returns the address of element i. The pointer is invalidated by any
// operation that changes the capacity.
func (v *Vector[T, L]) At(i int) *T {
	if debugChecks && (i < 0 || i >= v.size) {
		failf("index %d out of range [0,%d)", i, v.size)
	}
	return v.data.Slot(i)
}

// Front returns the address of the first element.
func (v *Vector[T, L]) Front() *T {
	return v.At(0)
}

// Back returns the address of the last element.
func (v *Vector[T, L]) Back() *T {
	return v.At(v.size - 1)
}

// Slice returns the live elements. The slice aliases v's storage and is
// invalidated by any operation that changes the capacity.
func (v *Vector[T, L]) Slice() []T {
	return v.live()
}

// All returns an iterator over index/value pairs in order.
func (v *Vector[T, L]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (v *Vector[T, L]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data.buf[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from last to first.
func (v *Vector[T, L]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data.buf[i]) {
				return
			}
		}
	}
}

func (v *Vector[T, L]) live() []T {
	return v.data.Span(0, v.size)
}

// adopt installs nb as the storage and leaves nb null. Slots of the previous
// storage must already be destroyed or vacated.
func (v *Vector[T, L]) adopt(nb *RawBuffer[T]) {
	v.data.Take(nb)
	if v.data.Cap() > 0 {
		v.allocs++
	}
}
