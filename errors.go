package textrie

import "errors"

// ErrNegativeDistanceLimit is returned by LevenshteinParams.Validate for a
// negative distance budget; the constructors themselves do not validate
// their limit. A negative limit can never be satisfied
// by any real edit distance, so it is rejected rather than silently
// treated as zero.
var ErrNegativeDistanceLimit = errors.New("textrie: negative distance limit")

// Validate reports ErrNegativeDistanceLimit if params.DistanceLimit is
// negative. Query functions do not call this automatically; callers that
// accept limits from outside the program should check it once up front.
func (p LevenshteinParams[T, D]) Validate() error {
	var zero D
	if p.DistanceLimit < zero {
		return ErrNegativeDistanceLimit
	}
	return nil
}
