package resolve

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"safe-union/internal/common"
)

var (
	ErrNoAlternative = errors.New("no alternative accepts the input type")
	ErrAmbiguous     = errors.New("input type matches more than one alternative")
)

// Resolve maps an input type to the index of the single alternative it
// activates. The most-preferred tier with any candidate decides: exactly one
// candidate there wins, more than one is ambiguous. Source order of the
// alternatives never breaks a tie.
func Resolve(input reflect.Type, alts []reflect.Type, convs []Conversion) (int, error) {
	best := TierIneligible

	var candidates []int

	for i, alt := range alts {
		v := Rank(input, alt, convs)
		if v.Tier == TierIneligible {
			continue
		}

		switch {
		case v.Tier.Score() > best.Score():
			best = v.Tier
			candidates = append(candidates[:0], i)
		case v.Tier == best:
			candidates = append(candidates, i)
		}
	}

	switch {
	case common.IsEmpty(candidates):
		return 0, fmt.Errorf("%w: %s against %s",
			ErrNoAlternative, typeString(input), typeList(alts))

	case common.IsSingle(candidates):
		winner, _ := common.First(candidates)
		return winner, nil

	default:
		return 0, fmt.Errorf("%w: %s is %s for %s",
			ErrAmbiguous, typeString(input), best, candidateList(alts, candidates))
	}
}

func typeList(alts []reflect.Type) string {
	names := make([]string, 0, len(alts))
	for _, alt := range alts {
		names = append(names, typeString(alt))
	}

	return "[" + strings.Join(names, ", ") + "]"
}

func candidateList(alts []reflect.Type, indices []int) string {
	names := make([]string, 0, len(indices))
	for _, i := range indices {
		names = append(names, typeString(alts[i]))
	}

	return strings.Join(names, " and ")
}
