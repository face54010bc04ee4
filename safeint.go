package safeint

// Int is a checked integer: a payload of kind T plus a sticky failure flag.
//
// Every operation that can overflow, underflow, wrap, or divide by zero
// records the failure on the result instead of panicking or returning a
// wrapped garbage value. The flag is viral: any operation consuming a failed
// operand produces a failed result, and nothing short of reconstructing the
// value from a fresh literal (New, Set) clears it.
//
// A failed value reads as zero. Get never exposes the stale payload, so
// silently ignoring a failure yields a harmless zero rather than an
// out-of-range index or length:
//
//	n := safeint.New(uint32(offset)).Mul(safeint.New(uint32(count)))
//	if n.Failure() {
//	    return errInputTooLarge
//	}
//	buf := make([]byte, n.Get())
//
// The zero Int is a valid zero of its kind, so declaring one without an
// initializer is fine. Int is a plain value type: copies are independent,
// nothing allocates, and distinct instances need no synchronization.
// Mutating the same instance from multiple goroutines is a data race,
// exactly as with a bare integer.
type Int[T Integer] struct {
	val T
	err bool
}

// New returns a valid checked value holding v. Construction from a raw value
// always starts with a clear failure flag; this is the only way (besides Set)
// to leave the failed state.
func New[T Integer](v T) Int[T] {
	return Int[T]{val: v}
}

// Make returns a checked value with an explicit failure flag. It is the
// boundary constructor: code that validated a value elsewhere, or that needs
// to inject an already-known failure, builds the state directly.
func Make[T Integer](v T, failed bool) Int[T] {
	return Int[T]{val: v, err: failed}
}

// Zero returns a valid zero of kind T.
func Zero[T Integer]() Int[T] {
	return Int[T]{}
}

// One returns a valid one of kind T.
func One[T Integer]() Int[T] {
	return Int[T]{val: 1}
}

// Failed returns a failed zero of kind T. Derived operations use it to
// propagate failure without touching a payload.
func Failed[T Integer]() Int[T] {
	return Int[T]{err: true}
}

// Get returns the payload, or zero if the value has failed. A failed payload
// is meaningless by contract and is never exposed.
func (x Int[T]) Get() T {
	if x.err {
		return 0
	}
	return x.val
}

// Failure reports whether the value has experienced an overflow, underflow,
// wrap, divide by zero, or consumed a failed operand.
func (x Int[T]) Failure() bool {
	return x.err
}

// Valid reports the opposite of Failure.
func (x Int[T]) Valid() bool {
	return !x.err
}

// SetFailure marks the value failed. Composite algorithms use it to inject a
// failure detected outside this package; the flag is sticky from then on.
func (x *Int[T]) SetFailure() {
	x.err = true
}

// Set replaces the payload with a raw value and clears the failure flag.
// Semantically identical to assigning New(v).
func (x *Int[T]) Set(v T) {
	x.val = v
	x.err = false
}

// Add returns x + rhs. The result is failed if either operand was failed or
// the sum does not fit in T.
func (x Int[T]) Add(rhs Int[T]) Int[T] {
	sum, over := AddOverflow(x.val, rhs.val)
	return Int[T]{val: sum, err: x.err || rhs.err || over}
}

// AddVal returns x + v for a raw operand of the same kind.
func (x Int[T]) AddVal(v T) Int[T] {
	sum, over := AddOverflow(x.val, v)
	return Int[T]{val: sum, err: x.err || over}
}

// Sub returns x - rhs. The result is failed if either operand was failed or
// the difference does not fit in T.
func (x Int[T]) Sub(rhs Int[T]) Int[T] {
	diff, over := SubOverflow(x.val, rhs.val)
	return Int[T]{val: diff, err: x.err || rhs.err || over}
}

// SubVal returns x - v for a raw operand of the same kind.
func (x Int[T]) SubVal(v T) Int[T] {
	diff, over := SubOverflow(x.val, v)
	return Int[T]{val: diff, err: x.err || over}
}

// Mul returns x * rhs. The result is failed if either operand was failed or
// the product does not fit in T.
func (x Int[T]) Mul(rhs Int[T]) Int[T] {
	prod, over := MulOverflow(x.val, rhs.val)
	return Int[T]{val: prod, err: x.err || rhs.err || over}
}

// MulVal returns x * v for a raw operand of the same kind.
func (x Int[T]) MulVal(v T) Int[T] {
	prod, over := MulOverflow(x.val, v)
	return Int[T]{val: prod, err: x.err || over}
}

// Div returns x / rhs.
//
// The result is failed if either operand was failed, rhs is zero, or, for
// signed kinds, the division is MIN / -1, the one signed quotient that does
// not fit. A zero divisor is an in-band failure, never a panic.
func (x Int[T]) Div(rhs Int[T]) Int[T] {
	if x.err || rhs.err {
		return Int[T]{val: x.val, err: true}
	}
	if rhs.val == 0 {
		return Int[T]{val: x.val, err: true}
	}
	if IsSigned[T]() && x.val == MinOf[T]() && rhs.val == ^T(0) {
		return Int[T]{val: x.val, err: true}
	}
	return Int[T]{val: x.val / rhs.val}
}

// DivVal returns x / v for a raw operand of the same kind.
func (x Int[T]) DivVal(v T) Int[T] {
	return x.Div(New(v))
}

// Mod returns x % rhs, with the same failure ladder as Div. MIN % -1 is
// rejected alongside MIN / -1 even though its remainder is representable: the
// operation pair is treated as one overflowing division.
func (x Int[T]) Mod(rhs Int[T]) Int[T] {
	if x.err || rhs.err {
		return Int[T]{val: x.val, err: true}
	}
	if rhs.val == 0 {
		return Int[T]{val: x.val, err: true}
	}
	if IsSigned[T]() && x.val == MinOf[T]() && rhs.val == ^T(0) {
		return Int[T]{val: x.val, err: true}
	}
	return Int[T]{val: x.val % rhs.val}
}

// ModVal returns x % v for a raw operand of the same kind.
func (x Int[T]) ModVal(v T) Int[T] {
	return x.Mod(New(v))
}

// Inc adds one in place. Overflow at MaxOf marks the value failed.
func (x *Int[T]) Inc() {
	sum, over := AddOverflow(x.val, 1)
	x.val = sum
	x.err = x.err || over
}

// Dec subtracts one in place. Underflow at MinOf marks the value failed.
func (x *Int[T]) Dec() {
	diff, over := SubOverflow(x.val, 1)
	x.val = diff
	x.err = x.err || over
}

// Max returns the larger of x and o by value, or a failed zero if either
// side has failed.
func (x Int[T]) Max(o Int[T]) Int[T] {
	if x.err || o.err {
		return Failed[T]()
	}
	if x.val < o.val {
		return o
	}
	return x
}

// Min returns the smaller of x and o by value, or a failed zero if either
// side has failed.
func (x Int[T]) Min(o Int[T]) Int[T] {
	if x.err || o.err {
		return Failed[T]()
	}
	if x.val < o.val {
		return x
	}
	return o
}

// IsZero reports whether the value reads as zero. A failed value reads as
// zero by contract, so IsZero is true for it.
func (x Int[T]) IsZero() bool {
	if x.err {
		return true
	}
	return x.Get() == 0
}

// IsPos reports whether the value is strictly positive. Always false for a
// failed value.
func (x Int[T]) IsPos() bool {
	return x.Gt(Zero[T]())
}

// IsNeg reports whether the value is strictly negative. Always false for
// unsigned kinds and for a failed value.
func (x Int[T]) IsNeg() bool {
	if !IsSigned[T]() {
		return false
	}
	return x.Lt(Zero[T]())
}

// IsMax reports whether the value equals MaxOf. Always false for a failed
// value.
func (x Int[T]) IsMax() bool {
	return x.EqVal(MaxOf[T]())
}

// IsMin reports whether the value equals MinOf. Always false for a failed
// value.
func (x Int[T]) IsMin() bool {
	return x.EqVal(MinOf[T]())
}

// Neg returns -x for signed kinds, computed as zero minus x. Negating MinOf
// fails, since its positive counterpart does not fit. Unsigned kinds have no
// negation; the constraint rejects them at compile time.
func Neg[T Signed](x Int[T]) Int[T] {
	return Zero[T]().Sub(x)
}
