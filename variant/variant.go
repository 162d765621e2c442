package variant

import (
	"errors"
	"fmt"
	"reflect"

	"safe-union/utils"
)

var (
	ErrNilValue       = errors.New("a union cannot hold an untyped nil")
	ErrIndexRange     = errors.New("alternative index out of range")
	ErrEmplaceType    = errors.New("emplace requires the alternative's exact type")
	ErrNotAlternative = errors.New("type is not an alternative of this union")
)

// Variant is one instance of a union: exactly one alternative of its Type is
// active at any moment, and the discriminant always matches the stored value.
type Variant struct {
	typ    *Type
	index  int
	stored any
}

// New constructs an instance holding the zero value of the first alternative.
// There is no fallback to a later alternative and no empty state.
func (t *Type) New() *Variant {
	return &Variant{typ: t, index: 0, stored: t.alts[0].zero()}
}

// Of constructs an instance from value. The target alternative is chosen by
// the resolver from the value's dynamic type; zero or multiple candidates
// fail the construction and no instance is produced.
func (t *Type) Of(value any) (*Variant, error) {
	index, stored, err := t.prepare(value)
	if err != nil {
		return nil, err
	}

	return &Variant{typ: t, index: index, stored: stored}, nil
}

func (t *Type) prepare(value any) (int, any, error) {
	if value == nil {
		return 0, nil, ErrNilValue
	}

	index, err := t.Resolve(reflect.TypeOf(value))
	if err != nil {
		return 0, nil, err
	}

	converted, err := t.convert(value, index)
	if err != nil {
		return 0, nil, err
	}

	return index, t.alts[index].make(converted), nil
}

// Type returns the union definition this instance belongs to.
func (v *Variant) Type() *Type {
	return v.typ
}

// Index returns the discriminant: the index of the active alternative.
func (v *Variant) Index() int {
	return v.index
}

// ActiveType returns the type of the active alternative, unwrapped from any
// box.
func (v *Variant) ActiveType() reflect.Type {
	return v.typ.alts[v.index].rtype
}

// Interface returns a copy of the active value, unwrapped from any box.
func (v *Variant) Interface() any {
	return reflect.ValueOf(v.typ.alts[v.index].pierce(v.stored)).Elem().Interface()
}

// Assign replaces the active value with one constructed from value, resolving
// the target alternative the same way Of does. The replacement is fully
// materialized before anything changes, so a failed assignment leaves the
// previous value untouched. When the resolved alternative is the one already
// active, the value is assigned in place: a boxed alternative keeps its
// allocation and writes through it.
func (v *Variant) Assign(value any) error {
	if value == nil {
		return ErrNilValue
	}

	index, err := v.typ.Resolve(reflect.TypeOf(value))
	if err != nil {
		return err
	}

	converted, err := v.typ.convert(value, index)
	if err != nil {
		return err
	}

	alt := v.typ.alts[index]

	if index == v.index {
		// same alternative on both sides: write through the existing
		// storage so a boxed alternative keeps its allocation
		alt.assign(v.stored, converted)
		return nil
	}

	v.stored = alt.make(converted)
	v.index = index

	return nil
}

// EmplaceAt replaces the active value with value placed into the alternative
// at index, bypassing the resolver entirely. It is the escape hatch when
// resolution would be ambiguous: the alternative is named, not inferred, so
// value must already have the alternative's exact (unwrapped) type.
func (v *Variant) EmplaceAt(index int, value any) error {
	if !utils.IsInRange(0, index, v.typ.Len()-1) {
		return fmt.Errorf("%w: %d of %d", ErrIndexRange, index, v.typ.Len())
	}

	if value == nil {
		return ErrNilValue
	}

	alt := v.typ.alts[index]
	if reflect.TypeOf(value) != alt.rtype {
		return fmt.Errorf("%w: got %s, alternative %d is %s",
			ErrEmplaceType, reflect.TypeOf(value), index, alt.rtype)
	}

	rv := reflect.ValueOf(value)

	if index == v.index {
		alt.assign(v.stored, rv)
		return nil
	}

	v.stored = alt.make(rv)
	v.index = index

	return nil
}

// Emplace places value into the alternative of type T, bypassing the
// resolver. T must be one of the union's alternatives.
func Emplace[T any](v *Variant, value T) error {
	index, ok := v.typ.IndexOf(reflect.TypeFor[T]())
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAlternative, reflect.TypeFor[T]())
	}

	return v.EmplaceAt(index, value)
}

// Clone returns a deep copy: only the active alternative is copied, boxed
// values get a fresh allocation, and the discriminant is carried over.
func (v *Variant) Clone() *Variant {
	alt := v.typ.alts[v.index]

	return &Variant{typ: v.typ, index: v.index, stored: alt.clone(v.stored)}
}

// Move transfers the active value into a new instance. The source stays
// valid: it keeps the same discriminant and holds a fresh zero value of the
// active alternative, ready for destruction or reassignment.
func (v *Variant) Move() *Variant {
	alt := v.typ.alts[v.index]
	moved := &Variant{typ: v.typ, index: v.index, stored: v.stored}
	v.stored = alt.zero()

	return moved
}
