package variant

import "reflect"

// Get returns a pointer to the stored value if the alternative of type T
// (after unwrapping any box) is active, and nil otherwise. It never converts:
// a T that is not exactly an alternative of the union, or is not the active
// one, reports absence even when the active value would be convertible to T.
// The lookup allocates nothing and never panics.
func Get[T any](v *Variant) *T {
	if v == nil {
		return nil
	}

	alt := v.typ.alts[v.index]
	if alt.rtype != reflect.TypeFor[T]() {
		return nil
	}

	p, _ := alt.pierce(v.stored).(*T)

	return p
}

// Is reports whether the alternative of type T is active.
func Is[T any](v *Variant) bool {
	return Get[T](v) != nil
}
