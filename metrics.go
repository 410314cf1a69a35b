package vector

// Stats contains statistical information about a vector's storage.
type Stats struct {
	Len           int     // Live elements
	Cap           int     // Element slots in the current buffer
	ElemSize      int     // Size of one element in bytes
	BytesInUse    int     // Bytes occupied by live elements
	BytesReserved int     // Bytes of the current buffer
	Utilization   float64 // Ratio of Len to Cap (0.0-1.0)
	Allocations   int     // Buffers allocated over the vector's lifetime
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no storage.
func (v *Vector[T, L]) Utilization() float64 {
	c := v.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Allocations returns how many buffers the vector has allocated, counting
// the initial one and every growth or shrink.
func (v *Vector[T, L]) Allocations() int {
	return v.allocs
}

// Metrics returns a snapshot of storage statistics.
func (v *Vector[T, L]) Metrics() Stats {
	es := int(elemSize[T]())
	return Stats{
		Len:           v.size,
		Cap:           v.Cap(),
		ElemSize:      es,
		BytesInUse:    v.size * es,
		BytesReserved: v.data.Bytes(),
		Utilization:   v.Utilization(),
		Allocations:   v.allocs,
	}
}
