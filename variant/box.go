package variant

// Box is an owned heap indirection around a single value of type T. A union
// alternative declared with [AltBoxed] is stored behind a Box, which lets a
// type recursively contain the union that contains it: the container only
// ever holds a fixed-size handle.
//
// A Box owns its allocation exclusively. Copying the handle does not copy the
// value; use [Box.Clone] for that. After [Box.Move] the source is empty and
// must only be dropped or refilled with [Box.Set].
type Box[T any] struct {
	ptr *T
}

// NewBox allocates a Box holding the zero value of T.
func NewBox[T any]() *Box[T] {
	return &Box[T]{ptr: new(T)}
}

// BoxOf allocates a Box holding v.
func BoxOf[T any](v T) *Box[T] {
	return &Box[T]{ptr: &v}
}

// Get returns a pointer to the owned value, or nil when the box was emptied
// by a move.
func (b *Box[T]) Get() *T {
	return b.ptr
}

// Set assigns v through the existing allocation. The allocation is reused, so
// pointers previously obtained from Get observe the new value. An emptied box
// is refilled with a fresh allocation.
func (b *Box[T]) Set(v T) {
	if b.ptr == nil {
		b.ptr = new(T)
	}

	*b.ptr = v
}

// Clone returns a deep copy: a new allocation holding a copy of the owned
// value. When T has a Clone() T method it is used for the pointee.
func (b *Box[T]) Clone() *Box[T] {
	if b.ptr == nil {
		return &Box[T]{}
	}

	return BoxOf(cloneValue(*b.ptr))
}

// Move transfers the allocation into a new Box and leaves the source empty.
func (b *Box[T]) Move() *Box[T] {
	moved := &Box[T]{ptr: b.ptr}
	b.ptr = nil

	return moved
}

// Empty reports whether the box was emptied by a move.
func (b *Box[T]) Empty() bool {
	return b.ptr == nil
}

// cloneValue copies v, delegating to a Clone method when the type provides one.
func cloneValue[T any](v T) T {
	if c, ok := any(v).(interface{ Clone() T }); ok {
		return c.Clone()
	}

	return v
}
