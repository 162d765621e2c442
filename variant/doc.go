// Package variant provides a safe discriminated union: a container that holds
// exactly one value out of a fixed list of alternative types and tracks which
// alternative is active.
//
// A container type is declared once with [NewType] and shared; instances are
// created from it. Construction and assignment pick the target alternative
// through a strict resolver: an exact type match beats an
// information-preserving widening, which beats a registered conversion
// function, and a tie at the winning level is rejected instead of resolved by
// declaration order. A value can therefore never be narrowed or rerouted into
// a surprising alternative.
//
// Key operations:
//   - [Type.Of], [Variant.Assign]: converting construction and re-assignment
//   - [Variant.EmplaceAt], [Emplace]: put a named alternative in place,
//     bypassing the resolver
//   - [Get], [Is]: type-indexed access, absence reported as nil
//   - [NewVisitor], [Visitor.Apply]: exhaustive dispatch over the active
//     alternative, checked for completeness when the visitor is built
//   - [Box]: an owned heap indirection so a union can recursively contain
//     values of a type that itself contains the union
//
// A failed operation never disturbs the container: the replacement value is
// fully materialized before the discriminant or storage change, so the
// previous value stays intact when a conversion function rejects its input.
// After construction a container is never empty.
//
// Variant values are not internally synchronized. Concurrent reads are safe;
// any mutation requires external locking. The shared *Type is safe for
// concurrent use.
package variant
