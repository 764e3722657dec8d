package utils

// Mod returns the non-negative remainder of v divided by n, so Mod(-1, n) == n-1.
// n must be positive.
func Mod(v, n int) int {
	return (v%n + n) % n
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
