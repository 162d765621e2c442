package resolve

import "reflect"

// Report explains how an input type fared against every alternative of a
// list. It is meant for error messages and debugging, not for dispatch.
type Report struct {
	Input    string
	Verdicts []Verdict
}

// Explain ranks the input against each alternative in turn and collects the
// verdicts in alternative order.
func Explain(input reflect.Type, alts []reflect.Type, convs []Conversion) Report {
	report := Report{
		Input:    typeString(input),
		Verdicts: make([]Verdict, 0, len(alts)),
	}

	for _, alt := range alts {
		report.Verdicts = append(report.Verdicts, Rank(input, alt, convs))
	}

	return report
}

// Best returns the highest tier present in the report.
func (r Report) Best() Tier {
	best := TierIneligible
	for _, v := range r.Verdicts {
		if v.Tier.Score() > best.Score() {
			best = v.Tier
		}
	}

	return best
}
