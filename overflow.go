package safeint

import "unsafe"

// The checked primitives below return the two's-complement wrapped result of
// the operation together with a flag that is true iff the mathematically
// correct result does not fit in T. Go defines integer wrap for both signed
// and unsigned kinds, so the wrapped value is computed directly and overflow
// is recovered from it afterwards; there is no undefined behavior to dodge
// and no widening to a larger type.
//
// Detection rules:
//
//   - signed add:  the result has the wrong sign iff it differs in sign from
//     both operands: (sum^a) & (sum^b) < 0
//   - signed sub:  overflow iff the operands differ in sign and the result
//     has the sign of b: (a^b) & (a^diff) < 0
//   - unsigned add: carry iff sum < a
//   - unsigned sub: borrow iff b > a
//   - mul: quotient cross-check prod/b != a, with MIN * -1 special-cased
//     (its wrapped product divides back to itself and would go undetected)
//
// All three are pure and branch-light; none allocates.

// AddOverflow returns a + b and whether the true sum overflowed T.
func AddOverflow[T Integer](a, b T) (T, bool) {
	sum := a + b
	if IsSigned[T]() {
		return sum, (sum^a)&(sum^b) < 0
	}
	return sum, sum < a
}

// SubOverflow returns a - b and whether the true difference overflowed T.
func SubOverflow[T Integer](a, b T) (T, bool) {
	diff := a - b
	if IsSigned[T]() {
		return diff, (a^b)&(a^diff) < 0
	}
	return diff, b > a
}

// MulOverflow returns a * b and whether the true product overflowed T.
func MulOverflow[T Integer](a, b T) (T, bool) {
	prod := a * b
	if a == 0 || b == 0 {
		return prod, false
	}
	if IsSigned[T]() && b == ^T(0) {
		// b == -1: prod/b cannot distinguish MIN * -1 from MIN.
		return prod, a == MinOf[T]()
	}
	return prod, prod/b != a
}

// bitWidth returns the size of T in bits. Sizeof on a zero value is resolved
// at compile time per instantiation.
func bitWidth[T Integer]() uint {
	var z T
	return uint(unsafe.Sizeof(z)) * 8
}

// MinOf returns the smallest value representable in T:
// zero for unsigned kinds, -2^(w-1) for signed kinds of width w.
func MinOf[T Integer]() T {
	if IsSigned[T]() {
		return ^T(0) << (bitWidth[T]() - 1)
	}
	return 0
}

// MaxOf returns the largest value representable in T:
// all ones for unsigned kinds, 2^(w-1)-1 for signed kinds of width w.
func MaxOf[T Integer]() T {
	if IsSigned[T]() {
		return ^MinOf[T]()
	}
	return ^T(0)
}
