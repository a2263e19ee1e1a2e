package helpers

import "golang.org/x/exp/constraints"

func Max[T constraints.Ordered](numbers ...T) T {
	var max T = numbers[0]
	for _, n := range numbers {
		if n > max {
			max = n
		}
	}
	return max
}

// SubFloor returns a-b, or 0 when b > a.
func SubFloor[T constraints.Unsigned](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}

func IsPowerOfTwo[T constraints.Unsigned](n T) bool {
	return n != 0 && n&(n-1) == 0
}

// AlignUp rounds n up to the next multiple of align, align must be a power of two.
func AlignUp[T constraints.Unsigned](n, align T) T {
	return (n + align - 1) &^ (align - 1)
}

func IsAligned[T constraints.Unsigned](n, align T) bool {
	return n&(align-1) == 0
}
