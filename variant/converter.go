package variant

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"safe-union/utils"
)

var (
	ErrNotAConverter         = errors.New("provided function is not a recognizable converter")
	ErrConverterNotAFunction = errors.New("provided converter is not a function")
	ErrConverterPointer      = errors.New("converter functions must not take or return pointers")
	ErrConverterRejected     = errors.New("converter rejected the input value")
)

// Converter is a user conversion function registered on a container type. It
// feeds the least-preferred resolver tier: a value is routed through a
// converter only when no alternative matches it exactly and no widening
// applies.
type Converter struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn reflect.Value
}

// ParseConverter inspects the provided function and returns a Converter if it
// is a valid conversion function.
//
// Supported shapes:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//   - func(src Type) (dst Type, bool, error)
//
// A false bool or non-nil error means the converter rejected the input.
func ParseConverter(fn any) (Converter, error) {
	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return Converter{}, ErrConverterNotAFunction
	}

	if fnType.NumIn() != 1 || fnType.NumOut() == 0 {
		return Converter{}, ErrNotAConverter
	}

	src := fnType.In(0)
	dst := fnType.Out(0)
	if src.Kind() == reflect.Ptr || dst.Kind() == reflect.Ptr {
		return Converter{}, ErrConverterPointer
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))

	conv := Converter{
		Src:          src,
		Dst:          dst,
		Name:         name,
		PackageAlias: utils.Second(path.Split(alias)),
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return Converter{}, ErrNotAConverter

	case 1:
		return conv, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return Converter{}, ErrNotAConverter
		case last.Kind() == reflect.Bool:
			conv.HasBool = true
		case isError(last):
			conv.HasErr = true
		}
		return conv, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return Converter{}, ErrNotAConverter
		}

		conv.HasBool = true
		conv.HasErr = true
		return conv, nil
	}
}

// Convert runs the conversion function on value, which must be of the Src
// type. A rejection from either channel surfaces as ErrConverterRejected.
func (c Converter) Convert(value any) (any, error) {
	outs := c.fn.Call([]reflect.Value{reflect.ValueOf(value)})
	result := outs[0].Interface()
	rest := outs[1:]

	if c.HasBool {
		ok := rest[0].Bool()
		rest = rest[1:]

		if !ok {
			return nil, fmt.Errorf("%w: %s returned false", ErrConverterRejected, c.Name)
		}
	}

	if c.HasErr {
		if err, _ := rest[0].Interface().(error); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrConverterRejected, c.Name, err)
		}
	}

	return result, nil
}

func isError(rtype reflect.Type) bool {
	return rtype.Implements(reflect.TypeFor[error]())
}
