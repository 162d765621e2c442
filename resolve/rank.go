package resolve

import (
	"reflect"

	"safe-union/primitive"
)

// Conversion identifies a registered user conversion function by its
// source and destination types.
type Conversion struct {
	Src, Dst reflect.Type
}

// Verdict contains the tier of a single (input, alternative) pair together
// with a human-readable explanation.
type Verdict struct {
	Tier        Tier
	Reason      string
	Input       string // String representation of the input type
	Alternative string // String representation of the alternative type
}

// Rank scores how well an alternative type can accept a value of the input
// type, considering the supplied user conversions. It is a pure function:
// the same arguments always produce the same verdict.
func Rank(input, alt reflect.Type, convs []Conversion) Verdict {
	inputStr := typeString(input)
	altStr := typeString(alt)

	if input == alt {
		return Verdict{
			Tier:        TierExact,
			Reason:      "types are identical",
			Input:       inputStr,
			Alternative: altStr,
		}
	}

	inputKind := primitive.FromReflectType(input)
	altKind := primitive.FromReflectType(alt)

	if inputKind != 0 && altKind != 0 && primitive.Widens(inputKind, altKind) {
		return Verdict{
			Tier:        TierSafeWidening,
			Reason:      inputKind.String() + " widens to " + altKind.String(),
			Input:       inputStr,
			Alternative: altStr,
		}
	}

	for _, c := range convs {
		if c.Src == input && c.Dst == alt {
			return Verdict{
				Tier:        TierUserConversion,
				Reason:      "a registered conversion accepts the input",
				Input:       inputStr,
				Alternative: altStr,
			}
		}
	}

	return Verdict{
		Tier:        TierIneligible,
		Reason:      "no identity, widening, or registered conversion applies",
		Input:       inputStr,
		Alternative: altStr,
	}
}

func typeString(rtype reflect.Type) string {
	if rtype == nil {
		return "<nil>"
	}

	return rtype.String()
}
