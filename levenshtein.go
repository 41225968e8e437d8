package textrie

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of arithmetic types a Levenshtein distance may be
// measured in. Both integer and floating-point costs are useful: integer
// for a plain edit count, floating-point for weighted costs.
type Number interface {
	constraints.Integer | constraints.Float
}

// LevenshteinParams configures approximate search: how far a query may
// stray from a stored key, and what a single deletion, insertion, or
// substitution costs.
type LevenshteinParams[T comparable, D Number] struct {
	// DistanceLimit is the largest total cost a match may accumulate.
	DistanceLimit D
	// DeletionOrInsertion is the cost of deleting a trie-path symbol or
	// inserting a query symbol that has no counterpart on the other side.
	DeletionOrInsertion func(T) D
	// Replace is the cost of aligning two symbols against each other,
	// one from the trie path and one from the query.
	Replace func(a, b T) D
}

// Levenshtein builds parameters with the conventional unit-cost metric:
// every deletion, insertion, and substitution costs one, matches cost
// zero, bounded by limit.
func Levenshtein[T comparable, D Number](limit D) LevenshteinParams[T, D] {
	return LevenshteinParams[T, D]{
		DistanceLimit:       limit,
		DeletionOrInsertion: func(T) D { return 1 },
		Replace: func(a, b T) D {
			if a == b {
				return 0
			}
			return 1
		},
	}
}

// Unbounded builds unit-cost parameters with no distance limit: the
// largest value D can represent.
func Unbounded[T comparable, D Number]() LevenshteinParams[T, D] {
	return Levenshtein[T, D](Infinity[D]())
}

// LevenshteinFull builds parameters with caller-supplied cost functions,
// for weighted edit distances (e.g. keyboard-adjacency substitution costs).
func LevenshteinFull[T comparable, D Number](limit D, delOrIns func(T) D, replace func(T, T) D) LevenshteinParams[T, D] {
	return LevenshteinParams[T, D]{
		DistanceLimit:       limit,
		DeletionOrInsertion: delOrIns,
		Replace:             replace,
	}
}

// Infinity returns the largest value representable by D, for use as a
// distance limit that is never actually exceeded.
func Infinity[D Number]() D {
	var zero D
	switch any(zero).(type) {
	case int:
		return any(int(math.MaxInt)).(D)
	case int8:
		return any(int8(math.MaxInt8)).(D)
	case int16:
		return any(int16(math.MaxInt16)).(D)
	case int32:
		return any(int32(math.MaxInt32)).(D)
	case int64:
		return any(int64(math.MaxInt64)).(D)
	case uint:
		return any(uint(math.MaxUint)).(D)
	case uint8:
		return any(uint8(math.MaxUint8)).(D)
	case uint16:
		return any(uint16(math.MaxUint16)).(D)
	case uint32:
		return any(uint32(math.MaxUint32)).(D)
	case uint64:
		return any(uint64(math.MaxUint64)).(D)
	case uintptr:
		return any(^uintptr(0)).(D)
	case float32:
		return any(float32(math.MaxFloat32)).(D)
	case float64:
		return any(float64(math.MaxFloat64)).(D)
	default:
		limit := int64(math.MaxInt64)
		return D(limit)
	}
}
