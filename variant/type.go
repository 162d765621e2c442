package variant

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"safe-union/primitive"
	"safe-union/resolve"
)

var (
	ErrNoAlternatives       = errors.New("a union needs at least one alternative")
	ErrDuplicateAlternative = errors.New("the same alternative type is listed more than once")
	ErrInterfaceAlternative = errors.New("an alternative must be a concrete type, not an interface")
	ErrUnknownDestination   = errors.New("converter destination is not an alternative of this union")
	ErrShadowedConversion   = errors.New("converter source collides with an alternative type")
	ErrDuplicateConversion  = errors.New("a conversion for this source and destination already exists")
)

// Alternative describes one member of a union's fixed type list. Build values
// with [Alt] or [AltBoxed]; the zero Alternative is invalid.
type Alternative struct {
	rtype reflect.Type
	boxed bool

	// stored-representation hooks, closed over the concrete type
	make   func(v reflect.Value) any
	zero   func() any
	assign func(stored any, v reflect.Value)
	clone  func(stored any) any
	pierce func(stored any) any
}

// Alt declares a plain alternative of type T.
func Alt[T any]() Alternative {
	return Alternative{
		rtype: reflect.TypeFor[T](),
		make: func(v reflect.Value) any {
			val := v.Interface().(T)
			return &val
		},
		zero: func() any {
			return new(T)
		},
		assign: func(stored any, v reflect.Value) {
			*stored.(*T) = v.Interface().(T)
		},
		clone: func(stored any) any {
			val := cloneValue(*stored.(*T))
			return &val
		},
		pierce: func(stored any) any {
			return stored
		},
	}
}

// AltBoxed declares an alternative of type T stored behind a [Box]. Use it
// when T, directly or through the container, contains the union itself.
// Access and dispatch unwrap the box transparently.
func AltBoxed[T any]() Alternative {
	return Alternative{
		rtype: reflect.TypeFor[T](),
		boxed: true,
		make: func(v reflect.Value) any {
			return BoxOf(v.Interface().(T))
		},
		zero: func() any {
			return NewBox[T]()
		},
		assign: func(stored any, v reflect.Value) {
			stored.(*Box[T]).Set(v.Interface().(T))
		},
		clone: func(stored any) any {
			return stored.(*Box[T]).Clone()
		},
		pierce: func(stored any) any {
			return stored.(*Box[T]).Get()
		},
	}
}

// Type returns the alternative's type, unwrapped from any box.
func (a Alternative) Type() reflect.Type {
	return a.rtype
}

// Boxed reports whether the alternative is stored behind a [Box].
func (a Alternative) Boxed() bool {
	return a.boxed
}

// Type is the definition of a union: the ordered, fixed list of alternatives
// plus any registered conversion functions. A *Type is immutable once handed
// to instances except for converter registration, which belongs to the
// definition phase. It is safe for concurrent use.
type Type struct {
	alts     []Alternative
	altTypes []reflect.Type
	convs    []resolve.Conversion
	byPair   map[resolve.Conversion]Converter

	mu   sync.RWMutex
	memo map[reflect.Type]resolution
}

type resolution struct {
	index int
	err   error
}

// NewType defines a union over the given alternatives. The list is validated
// here, once: an empty list, a duplicate alternative type (after unwrapping
// boxes), or an interface alternative is rejected.
func NewType(alts ...Alternative) (*Type, error) {
	if len(alts) == 0 {
		return nil, ErrNoAlternatives
	}

	seen := make(map[reflect.Type]struct{}, len(alts))
	altTypes := make([]reflect.Type, 0, len(alts))

	for _, alt := range alts {
		if alt.rtype.Kind() == reflect.Interface {
			return nil, fmt.Errorf("%w: %s", ErrInterfaceAlternative, alt.rtype)
		}

		if _, dup := seen[alt.rtype]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateAlternative, alt.rtype)
		}

		seen[alt.rtype] = struct{}{}
		altTypes = append(altTypes, alt.rtype)
	}

	return &Type{
		alts:     alts,
		altTypes: altTypes,
		byPair:   map[resolve.Conversion]Converter{},
		memo:     map[reflect.Type]resolution{},
	}, nil
}

// MustType is NewType for package-level declarations; it panics on an invalid
// alternative list.
func MustType(alts ...Alternative) *Type {
	t, err := NewType(alts...)
	if err != nil {
		panic(err)
	}

	return t
}

// RegisterConverter adds a user conversion function to the definition. The
// destination must be one of the alternatives; a source equal to an
// alternative type is rejected because the exact tier would always win and
// the converter could only ever create ambiguity.
func (t *Type) RegisterConverter(fn any) error {
	conv, err := ParseConverter(fn)
	if err != nil {
		return err
	}

	if _, ok := t.IndexOf(conv.Dst); !ok {
		return fmt.Errorf("%w: %s -> %s", ErrUnknownDestination, conv.Src, conv.Dst)
	}

	if _, ok := t.IndexOf(conv.Src); ok {
		return fmt.Errorf("%w: %s", ErrShadowedConversion, conv.Src)
	}

	pair := resolve.Conversion{Src: conv.Src, Dst: conv.Dst}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, dup := t.byPair[pair]; dup {
		return fmt.Errorf("%w: %s -> %s", ErrDuplicateConversion, conv.Src, conv.Dst)
	}

	t.byPair[pair] = conv
	t.convs = append(t.convs, pair)
	clear(t.memo) // resolution may change for sources this converter accepts

	return nil
}

// Len returns the number of alternatives.
func (t *Type) Len() int {
	return len(t.alts)
}

// At returns the i-th alternative descriptor.
func (t *Type) At(i int) Alternative {
	return t.alts[i]
}

// IndexOf returns the index of the alternative whose unwrapped type is
// exactly rtype.
func (t *Type) IndexOf(rtype reflect.Type) (int, bool) {
	for i, alt := range t.alts {
		if alt.rtype == rtype {
			return i, true
		}
	}

	return 0, false
}

// Resolve maps an input type to the single alternative it activates, or
// fails with resolve.ErrAmbiguous or resolve.ErrNoAlternative. Outcomes are
// memoized per input type, so the ranking runs once per container type.
func (t *Type) Resolve(input reflect.Type) (int, error) {
	t.mu.RLock()
	r, ok := t.memo[input]
	t.mu.RUnlock()

	if ok {
		return r.index, r.err
	}

	index, err := resolve.Resolve(input, t.altTypes, t.convs)

	t.mu.Lock()
	t.memo[input] = resolution{index: index, err: err}
	t.mu.Unlock()

	return index, err
}

// Explain reports the resolver's verdict for the input against every
// alternative. Useful to understand a rejection.
func (t *Type) Explain(input reflect.Type) resolve.Report {
	return resolve.Explain(input, t.altTypes, t.convs)
}

// convert produces a value of the alternative's unwrapped type from value,
// running the widening conversion or converter when needed. It touches no
// instance state: callers install the result only on success.
func (t *Type) convert(value any, index int) (reflect.Value, error) {
	alt := t.alts[index]
	rv := reflect.ValueOf(value)

	if rv.Type() == alt.rtype {
		return rv, nil
	}

	from := primitive.FromReflectType(rv.Type())
	to := primitive.FromReflectType(alt.rtype)

	if from != 0 && to != 0 && primitive.Widens(from, to) {
		return rv.Convert(alt.rtype), nil
	}

	pair := resolve.Conversion{Src: rv.Type(), Dst: alt.rtype}

	t.mu.RLock()
	conv, ok := t.byPair[pair]
	t.mu.RUnlock()

	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s against %s",
			resolve.ErrNoAlternative, rv.Type(), alt.rtype)
	}

	out, err := conv.Convert(value)
	if err != nil {
		return reflect.Value{}, err
	}

	return reflect.ValueOf(out), nil
}
