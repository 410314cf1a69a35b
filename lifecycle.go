package vector

// Disposer is implemented by element types that hold resources which must be
// released when the element is destroyed.
type Disposer interface {
	Dispose()
}

// Cloner is implemented by element types that can be copied, where copying
// may fail. The clone is an independent value: disposing one must not affect
// the other.
type Cloner[T any] interface {
	Disposer
	Clone() (T, error)
}

// Lifecycle decides how a Vector creates, relocates and destroys elements.
//
// Implementations are zero-size types used as the second type parameter of
// Vector, so the relocation strategy is fixed when the Vector type is
// instantiated rather than chosen per call.
//
// dst and src passed to Relocate and Copy always have equal length.
type Lifecycle[T any] interface {
	// Relocate constructs dst from the values in src, leaving src untouched.
	// On error dst holds no constructed element.
	Relocate(dst, src []T) error
	// Vacate finishes slots whose values were relocated elsewhere and zeroes
	// them.
	Vacate(s []T)
	// Copy constructs dst as copies of src. On error dst holds no
	// constructed element.
	Copy(dst, src []T) error
	// Destroy ends the lifetime of the elements in s and zeroes the slots.
	Destroy(s []T)
}

// Trivial is the lifecycle for plain values: relocation and copies are
// assignments and destruction only zeroes the slot. It never fails.
type Trivial[T any] struct{}

func (Trivial[T]) Relocate(dst, src []T) error {
	copy(dst, src)
	return nil
}

func (Trivial[T]) Vacate(s []T) { clear(s) }

func (Trivial[T]) Copy(dst, src []T) error {
	copy(dst, src)
	return nil
}

func (Trivial[T]) Destroy(s []T) { clear(s) }

// MoveOnly is the lifecycle for values that own a resource and cannot be
// copied. Relocation moves the value, so the moved-from slot is only zeroed;
// destruction calls Dispose.
type MoveOnly[T Disposer] struct{}

func (MoveOnly[T]) Relocate(dst, src []T) error {
	copy(dst, src)
	return nil
}

func (MoveOnly[T]) Vacate(s []T) { clear(s) }

func (MoveOnly[T]) Copy(dst, src []T) error {
	if len(src) == 0 {
		return nil
	}
	return ErrNotCopyable
}

func (MoveOnly[T]) Destroy(s []T) {
	for i := range s {
		s[i].Dispose()
	}
	clear(s)
}

// Copyable is the lifecycle for values that must not be moved between
// buffers. Relocation clones every element and disposes the originals only
// after all clones succeeded, so a failing Clone leaves the source intact.
type Copyable[T Cloner[T]] struct{}

func (c Copyable[T]) Relocate(dst, src []T) error {
	return c.Copy(dst, src)
}

func (c Copyable[T]) Vacate(s []T) { c.Destroy(s) }

func (c Copyable[T]) Copy(dst, src []T) error {
	for i := range src {
		v, err := src[i].Clone()
		if err != nil {
			c.Destroy(dst[:i])
			return &RelocationError{Index: i, cause: err}
		}
		dst[i] = v
	}
	return nil
}

func (Copyable[T]) Destroy(s []T) {
	for i := range s {
		s[i].Dispose()
	}
	clear(s)
}
