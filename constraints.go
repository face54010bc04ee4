package safeint

// Signed is the set of fixed-width signed integer kinds a checked value can
// wrap. int is included because it is a fixed width on any given platform.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of fixed-width unsigned integer kinds a checked value
// can wrap, including the pointer-width uintptr.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the closed set of integer kinds supported by this package.
// Bitwise and shift operations are further restricted to Unsigned, and unary
// negation to Signed; everything else accepts any Integer.
type Integer interface {
	Signed | Unsigned
}

// IsSigned reports whether T is a signed kind.
//
// This is the one type-kind predicate the package needs: it distinguishes the
// signed overflow rules (sign-bit tests, MIN/-1 division) from the unsigned
// ones (carry/borrow). The distinction between individual widths is handled
// by the type system, not by inspection.
func IsSigned[T Integer]() bool {
	// ^T(0) is -1 for signed kinds and the all-ones maximum for unsigned ones.
	return ^T(0) < 0
}
