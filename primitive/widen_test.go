package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safe-union/primitive"
)

func TestWidensIdentity(t *testing.T) {
	t.Parallel()

	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		assert.True(t, primitive.Widens(k, k), "kind %s should widen to itself", k)
	}
}

func TestWidensNeverNarrows(t *testing.T) {
	t.Parallel()

	for from := primitive.KindEnum(1); int(from) < primitive.KindTotal; from++ {
		if !from.IsNumber() {
			continue
		}

		for to := primitive.KindEnum(1); int(to) < primitive.KindTotal; to++ {
			if !to.IsNumber() || from == to {
				continue
			}

			if primitive.Widens(from, to) {
				assert.GreaterOrEqual(t, to.Bits(), from.Bits(),
					"%s -> %s is admitted but loses width", from, to)
			}
		}
	}
}

func TestWidensNeverCrossesCategory(t *testing.T) {
	t.Parallel()

	for from := primitive.KindEnum(1); int(from) < primitive.KindTotal; from++ {
		for to := primitive.KindEnum(1); int(to) < primitive.KindTotal; to++ {
			if !primitive.Widens(from, to) {
				continue
			}

			switch {
			case from.IsSigned():
				assert.True(t, to.IsSigned(), "%s -> %s crosses out of signed", from, to)
			case from.IsUnsigned():
				assert.True(t, to.IsUnsigned(), "%s -> %s crosses out of unsigned", from, to)
			case from.IsFloat():
				assert.True(t, to.IsFloat(), "%s -> %s crosses out of float", from, to)
			default:
				assert.Equal(t, from, to, "%s -> %s must be identity", from, to)
			}
		}
	}
}

func TestWidensTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		from, to primitive.KindEnum
		want     bool
	}{
		{"int32 to int64", primitive.KindInt32, primitive.KindInt64, true},
		{"int64 to int32", primitive.KindInt64, primitive.KindInt32, false},
		{"int8 to int", primitive.KindInt8, primitive.KindInt, true},
		{"int to int64", primitive.KindInt, primitive.KindInt64, true},
		{"int to int32", primitive.KindInt, primitive.KindInt32, false},
		{"uint16 to uint", primitive.KindUint16, primitive.KindUint, true},
		{"uint64 to int64", primitive.KindUint64, primitive.KindInt64, false},
		{"int32 to uint64", primitive.KindInt32, primitive.KindUint64, false},
		{"int32 to float64", primitive.KindInt32, primitive.KindFloat64, false},
		{"float32 to float64", primitive.KindFloat32, primitive.KindFloat64, true},
		{"float64 to float32", primitive.KindFloat64, primitive.KindFloat32, false},
		{"float64 to int64", primitive.KindFloat64, primitive.KindInt64, false},
		{"bool to int", primitive.KindBool, primitive.KindInt, false},
		{"string to string", primitive.KindString, primitive.KindString, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, primitive.Widens(tc.from, tc.to))
		})
	}
}
