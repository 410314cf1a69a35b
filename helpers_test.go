package vector

import "errors"

var (
	errSentinel    = errors.New("constructor rejected sentinel")
	errCloneFailed = errors.New("clone failed")
)

// sentinel is the value rejected by intCtor.
const sentinel = -1

func intCtor(x int) func() (int, error) {
	return func() (int, error) {
		if x == sentinel {
			return 0, errSentinel
		}
		return x, nil
	}
}

// registry counts live cells and can make Clone fail after a number of
// successful clones.
type registry struct {
	live     int
	disposed int
	clones   int
	failAt   int // successful clones allowed before Clone fails; -1 never
}

func newRegistry() *registry {
	return &registry{failAt: -1}
}

func (r *registry) make(val int) cell {
	r.live++
	return cell{val: val, reg: r}
}

func (r *registry) ctor(val int) func() (cell, error) {
	return func() (cell, error) {
		if val == sentinel {
			return cell{}, errSentinel
		}
		return r.make(val), nil
	}
}

// failAfter arms the registry to let n more clones succeed.
func (r *registry) failAfter(n int) {
	r.clones = 0
	r.failAt = n
}

// cell is an element relocated by Clone.
type cell struct {
	val int
	reg *registry
}

func (c cell) Clone() (cell, error) {
	if c.reg == nil {
		return cell{}, nil
	}
	if c.reg.failAt >= 0 && c.reg.clones >= c.reg.failAt {
		return cell{}, errCloneFailed
	}
	c.reg.clones++
	c.reg.live++
	return cell{val: c.val, reg: c.reg}, nil
}

func (c cell) Dispose() {
	if c.reg == nil {
		return
	}
	c.reg.live--
	c.reg.disposed++
}

// handle is a move-only element.
type handle struct {
	id  int
	reg *registry
}

func (h handle) Dispose() {
	if h.reg == nil {
		return
	}
	h.reg.live--
	h.reg.disposed++
}

type (
	cells   = Vector[cell, Copyable[cell]]
	handles = Vector[handle, MoveOnly[handle]]
)

func cellValues(v *cells) []int {
	out := make([]int, 0, v.Len())
	for c := range v.Values() {
		out = append(out, c.val)
	}
	return out
}

func fillCells(reg *registry, vals ...int) *cells {
	v := &cells{}
	for _, x := range vals {
		if _, err := v.EmplaceBack(reg.ctor(x)); err != nil {
			panic(err)
		}
	}
	return v
}

func ints(vals ...int) *Of[int] {
	v := &Of[int]{}
	for _, x := range vals {
		if err := v.PushBack(x); err != nil {
			panic(err)
		}
	}
	return v
}

// snapshot captures the observable state of a vector.
type snapshot[T any] struct {
	len, cap, allocs int
	elems            []T
}

func snap[T any, L Lifecycle[T]](v *Vector[T, L]) snapshot[T] {
	return snapshot[T]{
		len:    v.Len(),
		cap:    v.Cap(),
		allocs: v.Allocations(),
		elems:  append([]T(nil), v.Slice()...),
	}
}
