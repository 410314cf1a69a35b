package vector

import (
	"fmt"
	"math/bits"
	"runtime"
	"unsafe"
)

// maxAllocBytes caps a single request below what the runtime will accept for
// one slice on 64-bit platforms. Larger requests fail with ErrAllocation
// instead of a runtime panic.
const maxAllocBytes = uint64(1)<<47 - 1

// elemSize returns the in-memory size of one T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// byteSize returns n*sizeof(T), reporting false on overflow.
func byteSize[T any](n int) (uint64, bool) {
	hi, lo := bits.Mul64(uint64(n), uint64(elemSize[T]()))
	return lo, hi == 0
}

// allocSlice returns storage for exactly n elements of type T, or nil when n
// is zero. The storage is zeroed by the runtime; callers treat it as
// uninitialized. limit bounds the byte size when positive.
func allocSlice[T any](n int, limit int64) (s []T, err error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", ErrAllocation, n)
	}
	size, ok := byteSize[T](n)
	if !ok || size > maxAllocBytes {
		return nil, fmt.Errorf("%w: %d elements of %d bytes overflows", ErrAllocation, n, elemSize[T]())
	}
	if limit > 0 && size > uint64(limit) {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrAllocation, size, limit)
	}

	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(runtime.Error); ok {
				s, err = nil, fmt.Errorf("%w: %v", ErrAllocation, re)
				return
			}
			panic(r)
		}
	}()
	return make([]T, n), nil
}
