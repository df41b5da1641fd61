// Package math carries the one numeric helper this module's AST simplifier
// uses: a generic Abs usable across the int64
// GCD arithmetic in mathast and any future integer or float magnitude
// check, without repeating the sign-flip branch at each call site.
package math

// Abs returns the absolute value of x, for any signed, unsigned, or
// floating-point numeric type.
func Abs[T int | int8 | int16 | int32 | int64 |
	uint | uint8 | uint16 | uint32 | uint64 |
	float32 | float64](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
