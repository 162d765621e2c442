package variant_test

import (
	"fmt"
	"strconv"

	"safe-union/variant"
)

type frownError interface {
	error
	Frown()
}

func empty()                          { panic("not implemented") }
func wrong(int) (string, error, bool) { panic("not implemented") }

func full(int) (string, bool, error)       { panic("not implemented") }
func customError(int) (string, frownError) { panic("not implemented") }

func ExampleParseConverter() {
	desc, err := variant.ParseConverter(full)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = variant.ParseConverter(strconv.Itoa)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = variant.ParseConverter(strconv.Atoi)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	desc, err = variant.ParseConverter(customError)
	fmt.Println(err, desc.PackageAlias, desc.Name, desc.Src.Kind(), desc.Dst.Kind(), desc.HasBool, desc.HasErr)

	_, err = variant.ParseConverter(empty)
	fmt.Println(err)

	_, err = variant.ParseConverter(wrong)
	fmt.Println(err)

	// Output:
	// <nil> variant_test full int string true true
	// <nil> strconv Itoa int string false false
	// <nil> strconv Atoi string int false true
	// <nil> variant_test customError int string false true
	// provided function is not a recognizable converter
	// provided function is not a recognizable converter
}

func ExampleConverter_Convert() {
	desc, _ := variant.ParseConverter(strconv.Atoi)

	out, err := desc.Convert("42")
	fmt.Println(out, err)

	_, err = desc.Convert("not a number")
	fmt.Println(err != nil)

	// Output:
	// 42 <nil>
	// true
}
