package vector

import (
	"fmt"
	"math"
)

// EmplaceBack appends the value produced by ctor and returns its address.
//
// When v is full, a buffer of twice the capacity (at least 1) is allocated
// and ctor runs against it before any existing element is relocated. If the
// allocation, ctor or the relocation fails, v is unchanged.
func (v *Vector[T, L]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if v.size < v.Cap() {
		val, err := ctor()
		if err != nil {
			return nil, err
		}
		*v.data.Slot(v.size) = val
		v.size++
		return v.data.Slot(v.size - 1), nil
	}

	nb, err := v.grown()
	if err != nil {
		return nil, err
	}
	val, err := ctor()
	if err != nil {
		return nil, err
	}
	*nb.Slot(v.size) = val

	var lc L
	if err := lc.Relocate(nb.Span(0, v.size), v.live()); err != nil {
		lc.Destroy(nb.Span(v.size, v.size+1))
		return nil, err
	}
	lc.Vacate(v.live())
	v.adopt(&nb)
	v.size++
	return v.data.Slot(v.size - 1), nil
}

// Emplace inserts the value produced by ctor at pos, shifting the elements
// at pos and after one place to the right, and returns pos.
//
// pos must be in [0, Len]. On error v is unchanged and the returned index is
// -1.
func (v *Vector[T, L]) Emplace(pos int, ctor func() (T, error)) (int, error) {
	if debugChecks && (pos < 0 || pos > v.size) {
		failf("insert position %d out of range [0,%d]", pos, v.size)
	}

	if v.size < v.Cap() {
		if pos == v.size {
			if _, err := v.EmplaceBack(ctor); err != nil {
				return -1, err
			}
			return pos, nil
		}
		val, err := ctor()
		if err != nil {
			return -1, err
		}
		s := v.data.Span(0, v.size+1)
		copy(s[pos+1:], s[pos:v.size])
		s[pos] = val
		v.size++
		return pos, nil
	}

	nb, err := v.grown()
	if err != nil {
		return -1, err
	}
	val, err := ctor()
	if err != nil {
		return -1, err
	}
	*nb.Slot(pos) = val

	var lc L
	if err := lc.Relocate(nb.Span(0, pos), v.data.Span(0, pos)); err != nil {
		lc.Destroy(nb.Span(pos, pos+1))
		return -1, err
	}
	if err := lc.Relocate(nb.Span(pos+1, v.size+1), v.data.Span(pos, v.size)); err != nil {
		lc.Vacate(nb.Span(0, pos))
		lc.Destroy(nb.Span(pos, pos+1))
		return -1, err
	}
	lc.Vacate(v.live())
	v.adopt(&nb)
	v.size++
	return pos, nil
}

// PushBack appends val, taking ownership of it.
func (v *Vector[T, L]) PushBack(val T) error {
	_, err := v.EmplaceBack(moveCtor(val))
	return err
}

// PushBackCopy appends a copy of val made by the vector's lifecycle.
func (v *Vector[T, L]) PushBackCopy(val T) error {
	_, err := v.EmplaceBack(copyCtor[T, L](val))
	return err
}

// Insert inserts val at pos, taking ownership of it, and returns pos.
func (v *Vector[T, L]) Insert(pos int, val T) (int, error) {
	return v.Emplace(pos, moveCtor(val))
}

// InsertCopy inserts a copy of val at pos and returns pos.
func (v *Vector[T, L]) InsertCopy(pos int, val T) (int, error) {
	return v.Emplace(pos, copyCtor[T, L](val))
}

// PopBack destroys the last element. v must not be empty.
func (v *Vector[T, L]) PopBack() {
	if debugChecks && v.size == 0 {
		failf("PopBack on empty vector")
	}
	var lc L
	lc.Destroy(v.data.Span(v.size-1, v.size))
	v.size--
}

// Erase destroys the element at pos and shifts the following elements one
// place to the left. It returns the index of the element now at pos, which
// equals Len when the last element was erased. Erasing at Len behaves as
// PopBack.
func (v *Vector[T, L]) Erase(pos int) int {
	if debugChecks && (pos < 0 || pos > v.size) {
		failf("erase position %d out of range [0,%d]", pos, v.size)
	}
	if pos == v.size {
		v.PopBack()
		return v.size
	}

	var lc L
	s := v.live()
	lc.Destroy(s[pos : pos+1])
	copy(s[pos:], s[pos+1:])
	clear(s[len(s)-1:])
	v.size--
	return pos
}

// Clear destroys all elements and keeps the storage.
func (v *Vector[T, L]) Clear() {
	var lc L
	lc.Destroy(v.live())
	v.size = 0
}

// Reserve grows the storage to exactly n elements when n exceeds Cap.
// On error v is unchanged.
func (v *Vector[T, L]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	return v.relocate(n)
}

// Resize sets the length to n. New elements are zero values; surplus
// elements are destroyed. Growing reserves exactly n elements.
func (v *Vector[T, L]) Resize(n int) error {
	if debugChecks && n < 0 {
		failf("negative length %d", n)
	}
	switch {
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
	case n < v.size:
		var lc L
		lc.Destroy(v.data.Span(n, v.size))
	}
	v.size = n
	return nil
}

// ShrinkToFit relocates the elements into storage of exactly Len elements.
// On error v is unchanged.
func (v *Vector[T, L]) ShrinkToFit() error {
	if v.size == v.Cap() {
		return nil
	}
	return v.relocate(v.size)
}

// relocate moves the live elements into fresh storage for n elements.
func (v *Vector[T, L]) relocate(n int) error {
	nb, err := AllocateLimit[T](n, v.maxBytes)
	if err != nil {
		return err
	}
	var lc L
	if err := lc.Relocate(nb.Span(0, v.size), v.live()); err != nil {
		return err
	}
	lc.Vacate(v.live())
	v.adopt(&nb)
	return nil
}

// grown allocates the storage used when v is full.
func (v *Vector[T, L]) grown() (RawBuffer[T], error) {
	c := v.Cap()
	if c > math.MaxInt/2 {
		return RawBuffer[T]{}, fmt.Errorf("%w: capacity %d cannot double", ErrAllocation, c)
	}
	return AllocateLimit[T](max(1, 2*c), v.maxBytes)
}

func moveCtor[T any](val T) func() (T, error) {
	return func() (T, error) {
		return val, nil
	}
}

func copyCtor[T any, L Lifecycle[T]](val T) func() (T, error) {
	return func() (T, error) {
		var (
			lc  L
			src = [1]T{val}
			dst [1]T
		)
		if err := lc.Copy(dst[:], src[:]); err != nil {
			var zero T
			return zero, err
		}
		return dst[0], nil
	}
}
