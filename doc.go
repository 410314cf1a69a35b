// Package vector implements a growable contiguous sequence with explicit
// buffer ownership and all-or-nothing growth.
//
// # Overview
//
// The package has two layers:
//
//   - RawBuffer owns storage for a fixed number of elements. It hands out
//     slots and spans, transfers ownership with Take and Swap, and never runs
//     element lifecycle hooks.
//   - Vector owns a RawBuffer plus the count of live elements. It decides
//     when elements are created, relocated and destroyed.
//
// # Basic Usage
//
//	v, err := vector.NewOf[int]()
//	if err != nil {
//		return err
//	}
//	defer v.Release()
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(3)
//	_, _ = v.Insert(1, 2) // [1 2 3]
//	v.Erase(0)            // [2 3]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Lifecycles
//
// The second type parameter of Vector selects how elements are handled:
//
//   - Trivial: plain values. Relocation is assignment and never fails.
//   - MoveOnly: values that own a resource (Disposer) and cannot be copied.
//     Relocation moves them; Clone and Assign fail with ErrNotCopyable.
//   - Copyable: values that are relocated by Clone. The originals are
//     disposed only after every clone succeeded.
//
// The choice is part of the Vector type, so it is fixed at compile time.
//
// # Failure Guarantees
//
// Growth allocates the new buffer and constructs the new element in it
// before any existing element is relocated. If allocation, construction or
// relocation fails, the vector is left exactly as it was. EmplaceBack,
// Emplace, PushBack, Insert, Reserve, Resize and ShrinkToFit all follow this
// rule. Erase and PopBack cannot fail.
//
// Assign reuses the existing storage when the source fits; if a copy then
// fails the receiver is left empty but valid.
//
// # Preconditions
//
// Out of range indices, PopBack on an empty vector and use of pointers or
// slices obtained before a capacity change are caller errors. Building with
// the vectordebug tag turns the checks on:
//
//	go test -tags vectordebug ./...
//
// # Thread Safety
//
// A Vector is not safe for concurrent use. Callers that share one must
// synchronize access themselves.
package vector
