package vector

// buffer is the copy-on-write backing store shared by a vector and any of
// its lazy subset views. shared is set by MarkShared, which `<-` calls on
// the vector it binds — any in-place mutation must clone the buffer first
// once shared is true.
type buffer[T any] struct {
	data   []NA[T]
	shared bool
}

func newBuffer[T any](data []NA[T]) *buffer[T] {
	return &buffer[T]{data: data}
}

func (b *buffer[T]) clone() *buffer[T] {
	d := make([]NA[T], len(b.data))
	copy(d, b.data)
	return &buffer[T]{data: d}
}

// Vec is the generic representation shared by all four concrete vector
// kinds. idx, when non-nil, describes a lazy view over buf: idx[i] is the
// position in buf.data backing logical element i, or -1 for an
// out-of-range / excluded position that reads as NA. A nil idx means the
// vector is the buffer's full, in-order contents (the common case).
type Vec[T any] struct {
	buf   *buffer[T]
	idx   []int
	names []string // optional, parallel to the logical (post-idx) elements
}

func vecFromData[T any](data []NA[T]) Vec[T] {
	return Vec[T]{buf: newBuffer(data)}
}

// Len returns the number of logical elements.
func (v Vec[T]) Len() int {
	if v.idx != nil {
		return len(v.idx)
	}
	if v.buf == nil {
		return 0
	}
	return len(v.buf.data)
}

// IsEmpty reports whether the vector has no elements.
func (v Vec[T]) IsEmpty() bool {
	return v.Len() == 0
}

// At returns the logical element at position i (0-based), resolving
// through the view index if present.
func (v Vec[T]) At(i int) NA[T] {
	if v.idx != nil {
		p := v.idx[i]
		if p < 0 {
			return Missing[T]()
		}
		return v.buf.data[p]
	}
	return v.buf.data[i]
}

// Name returns the name bound to logical position i, or "" if unnamed.
func (v Vec[T]) Name(i int) string {
	if i < len(v.names) {
		return v.names[i]
	}
	return ""
}

// Names returns the full names slice (may be nil if the vector is unnamed).
func (v Vec[T]) Names() []string {
	return v.names
}

// HasNames reports whether v carries a names slice (its entries may be "").
func (v Vec[T]) HasNames() bool {
	return v.names != nil
}

// Materialize resolves a lazy view into a fresh, view-free buffer. A
// vector with no view (idx == nil) materializes to itself.
func (v Vec[T]) Materialize() Vec[T] {
	if v.idx == nil {
		return v
	}
	data := make([]NA[T], len(v.idx))
	for i, p := range v.idx {
		if p < 0 {
			data[i] = Missing[T]()
		} else {
			data[i] = v.buf.data[p]
		}
	}
	return Vec[T]{buf: newBuffer(data), names: v.names}
}

// ensureOwned returns a Vec guaranteed to have an unshared, view-free
// buffer safe to mutate in place, cloning the backing storage if the
// current buffer is shared or the vector is presently a lazy view.
func (v Vec[T]) ensureOwned() Vec[T] {
	m := v.Materialize()
	if m.buf.shared {
		m.buf = m.buf.clone()
	}
	return m
}

// MarkShared flags the backing buffer as shared, forcing the next
// in-place mutation through any handle (this one or another view over the
// same buffer) to clone first. Called by `<-` on the vector value it binds.
func (v Vec[T]) MarkShared() {
	if v.buf != nil {
		v.buf.shared = true
	}
}

// SetAt mutates the element at logical position i in place, cloning the
// backing buffer first if it is shared. Returns the (possibly new) Vec
// the caller must rebind, since the clone produces a new buffer pointer.
func (v Vec[T]) SetAt(i int, val NA[T]) Vec[T] {
	owned := v.ensureOwned()
	owned.buf.data[i] = val
	return owned
}

// Data returns the fully materialized element slice.
func (v Vec[T]) Data() []NA[T] {
	return v.Materialize().buf.data
}

// WithNames returns a copy of v carrying the given per-element names.
func (v Vec[T]) WithNames(names []string) Vec[T] {
	v.names = names
	return v
}
