// Package refmodel provides the reference arithmetic the harness checks DUT
// results against: bounded-width unsigned multiplication that saturates
// instead of wrapping.
package refmodel

// Widths of the observed peripheral.
const (
	// OperandWidth is the width of each multiplier operand in bits.
	OperandWidth = 4
	// ResultWidth is the width of the result field in bits.
	ResultWidth = 4
)

// Mask returns a mask covering the low width bits.
func Mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// Saturate clamps v to the largest value representable in width bits.
func Saturate(v uint64, width uint) uint64 {
	if limit := Mask(width); v > limit {
		return limit
	}
	return v
}

// SaturatingMul multiplies a and b after truncating both to inWidth bits and
// clamps the product to outWidth bits.
func SaturatingMul(a, b uint64, inWidth, outWidth uint) uint64 {
	a &= Mask(inWidth)
	b &= Mask(inWidth)
	if a != 0 && b > Mask(64)/a {
		// product overflows 64 bits; only reachable for inWidth > 32
		return Mask(outWidth)
	}
	return Saturate(a*b, outWidth)
}

// Expected returns the result the observed peripheral must produce for
// operands a and b: min(a*b, 15) over 4-bit operands.
func Expected(a, b uint8) uint8 {
	return uint8(SaturatingMul(uint64(a), uint64(b), OperandWidth, ResultWidth))
}

// Overflows reports whether a*b does not fit the result field, i.e. whether
// Expected saturated.
func Overflows(a, b uint8) bool {
	a &= uint8(Mask(OperandWidth))
	b &= uint8(Mask(OperandWidth))
	return uint64(a)*uint64(b) > Mask(ResultWidth)
}
