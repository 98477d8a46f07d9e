package hwenc

import "golang.org/x/exp/constraints"

// ceilDiv rounds a up to the next multiple of b and divides.
func ceilDiv[T constraints.Integer](a, b T) T {
	return (a + b - 1) / b
}

// alignDown masks v down to a multiple of align, which must be a power of
// two.
func alignDown[T constraints.Integer](v, align T) T {
	return v &^ (align - 1)
}

func clampMax[T constraints.Integer](v, limit T) T {
	if v > limit {
		return limit
	}
	return v
}
