package variant

import (
	"errors"
	"fmt"
	"reflect"

	"safe-union/internal/common"
)

var (
	ErrMissingCase    = errors.New("visitor lacks a case for an alternative")
	ErrDuplicateCase  = errors.New("visitor has more than one case for an alternative")
	ErrStrayCase      = errors.New("visitor case matches no alternative")
	ErrForeignVariant = errors.New("variant belongs to a different union type")
)

// Case is one branch of a visitor: a handler for a single alternative type.
// Build values with [CaseOf].
type Case[R any] struct {
	rtype reflect.Type
	call  func(pierced any) R
}

// CaseOf builds the visitor branch handling the alternative of type T.
func CaseOf[T any, R any](fn func(T) R) Case[R] {
	return Case[R]{
		rtype: reflect.TypeFor[T](),
		call: func(pierced any) R {
			return fn(*pierced.(*T))
		},
	}
}

// Visitor dispatches a fixed set of handlers over the active alternative of a
// union. It is bound to one container type and validated against it when
// built, so every use of an incomplete visitor fails at its definition site,
// not when an unhandled alternative eventually shows up at run time.
type Visitor[R any] struct {
	typ   *Type
	calls []func(pierced any) R
}

// NewVisitor builds a visitor for the given union type. Every alternative
// (after unwrapping boxes) must be covered by exactly one case; a missing
// case, a duplicate case, and a case matching no alternative are all
// definition-time errors.
func NewVisitor[R any](t *Type, cases ...Case[R]) (*Visitor[R], error) {
	calls := make([]func(pierced any) R, t.Len())
	claimed := make([]bool, len(cases))

	for i, alt := range t.alts {
		var matches []int

		for j, c := range cases {
			if c.rtype == alt.rtype {
				matches = append(matches, j)
				claimed[j] = true
			}
		}

		if common.IsEmpty(matches) {
			return nil, fmt.Errorf("%w: %s", ErrMissingCase, alt.rtype)
		}

		if common.IsMultiple(matches) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCase, alt.rtype)
		}

		j, _ := common.First(matches)
		calls[i] = cases[j].call
	}

	for j, used := range claimed {
		if !used {
			return nil, fmt.Errorf("%w: %s", ErrStrayCase, cases[j].rtype)
		}
	}

	return &Visitor[R]{typ: t, calls: calls}, nil
}

// MustVisitor is NewVisitor for package-level declarations; it panics on an
// incomplete or overlapping case list.
func MustVisitor[R any](t *Type, cases ...Case[R]) *Visitor[R] {
	vis, err := NewVisitor(t, cases...)
	if err != nil {
		panic(err)
	}

	return vis
}

// Apply invokes the case matching the active alternative and returns its
// result. Which case runs is a pure function of the discriminant; boxes are
// unwrapped before the handler sees the value.
func (vis *Visitor[R]) Apply(v *Variant) (R, error) {
	if v == nil || v.typ != vis.typ {
		var zero R
		return zero, ErrForeignVariant
	}

	return vis.calls[v.index](v.typ.alts[v.index].pierce(v.stored)), nil
}
