package safeint

// To converts a checked value to another integer kind. A failed input or a
// payload outside the target's range produces a failed zero of the target
// kind; otherwise the result is valid and numerically equal. The target kind
// is given explicitly, the source is inferred:
//
//	n := safeint.To[uint32](idx)
//
// This replaces the usual unchecked uint32(v) narrowing at trust boundaries:
// the truncation that would silently corrupt the value becomes an ordinary
// sticky failure instead.
func To[U, T Integer](x Int[T]) Int[U] {
	if x.err || !fits[U](x.val) {
		return Failed[U]()
	}
	return New(U(x.val))
}

// fits reports whether v is representable in U.
func fits[U, T Integer](v T) bool {
	if IsSigned[T]() && int64(v) < 0 {
		return IsSigned[U]() && int64(v) >= int64(MinOf[U]())
	}
	// Non-negative: compare magnitudes in uint64, which holds every
	// supported width.
	return uint64(v) <= umax[U]()
}

// umax returns MaxOf[U] as a uint64 magnitude.
func umax[U Integer]() uint64 {
	if IsSigned[U]() {
		return uint64(int64(MaxOf[U]()))
	}
	return uint64(MaxOf[U]())
}
