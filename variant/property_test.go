package variant_test

import (
	"math/rand/v2"
	"testing"

	"safe-union/variant"
)

const propertyN = 1000

// TestPropertyExactlyOneActive: after any sequence of valid constructions,
// assignments, emplacements, clones, and moves, the discriminant is in range
// and matches the value used by the latest mutation.
func TestPropertyExactlyOneActive(t *testing.T) {
	typ := variant.MustType(variant.Alt[int64](), variant.Alt[string](), variant.Alt[float64]())

	rng := rand.New(rand.NewPCG(42, 0))
	v := typ.New()

	for range propertyN {
		var (
			wantIndex int
			check     func() bool
		)

		switch rng.IntN(5) {
		case 0:
			n := int64(rng.IntN(2001) - 1000)
			if err := v.Assign(n); err != nil {
				t.Fatal(err)
			}
			wantIndex = 0
			check = func() bool { p := variant.Get[int64](v); return p != nil && *p == n }

		case 1:
			s := "s" + string(rune('a'+rng.IntN(26)))
			if err := v.Assign(s); err != nil {
				t.Fatal(err)
			}
			wantIndex = 1
			check = func() bool { p := variant.Get[string](v); return p != nil && *p == s }

		case 2:
			f := float64(rng.IntN(1000)) / 4
			if err := v.Assign(f); err != nil {
				t.Fatal(err)
			}
			wantIndex = 2
			check = func() bool { p := variant.Get[float64](v); return p != nil && *p == f }

		case 3:
			n := int64(rng.IntN(100))
			if err := variant.Emplace(v, n); err != nil {
				t.Fatal(err)
			}
			wantIndex = 0
			check = func() bool { p := variant.Get[int64](v); return p != nil && *p == n }

		default:
			// clone then move: both sides must stay coherent
			c := v.Clone()
			moved := c.Move()
			if c.Index() != moved.Index() {
				t.Fatalf("move changed the discriminant: %d != %d", c.Index(), moved.Index())
			}
			wantIndex = v.Index()
			check = func() bool { return moved.Index() == v.Index() }
		}

		if v.Index() != wantIndex {
			t.Fatalf("discriminant %d, want %d", v.Index(), wantIndex)
		}

		if v.Index() < 0 || v.Index() >= typ.Len() {
			t.Fatalf("discriminant %d out of range [0, %d)", v.Index(), typ.Len())
		}

		if !check() {
			t.Fatalf("active value does not round-trip at step with index %d", v.Index())
		}
	}
}
