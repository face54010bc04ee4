package safeint

// Bitwise and shift operations are defined for unsigned kinds only; the
// Unsigned constraint turns a signed instantiation into a compile error
// rather than a runtime check. None of these can produce a new failure: the
// value is computed on the masked Get() result (zero when failed) and the
// failure flag is inherited from the checked operand(s) unchanged.

// And returns a & b. The result is failed if either operand was.
func And[T Unsigned](a, b Int[T]) Int[T] {
	return Make(a.Get()&b.Get(), a.err || b.err)
}

// AndVal returns a & v for a raw operand.
func AndVal[T Unsigned](a Int[T], v T) Int[T] {
	return Make(a.Get()&v, a.err)
}

// Or returns a | b. The result is failed if either operand was.
func Or[T Unsigned](a, b Int[T]) Int[T] {
	return Make(a.Get()|b.Get(), a.err || b.err)
}

// OrVal returns a | v for a raw operand.
func OrVal[T Unsigned](a Int[T], v T) Int[T] {
	return Make(a.Get()|v, a.err)
}

// Xor returns a ^ b. The result is failed if either operand was.
func Xor[T Unsigned](a, b Int[T]) Int[T] {
	return Make(a.Get()^b.Get(), a.err || b.err)
}

// XorVal returns a ^ v for a raw operand.
func XorVal[T Unsigned](a Int[T], v T) Int[T] {
	return Make(a.Get()^v, a.err)
}

// Not returns the complement MaxOf ^ x.
func Not[T Unsigned](x Int[T]) Int[T] {
	return XorVal(x, MaxOf[T]())
}

// Shl returns x << n. Any shift amount is total in Go: n >= the width of T
// yields zero, so no range check is needed or performed.
func Shl[T Unsigned](x Int[T], n uint) Int[T] {
	return Make(x.Get()<<n, x.err)
}

// Shr returns x >> n. Any shift amount is total in Go: n >= the width of T
// yields zero, so no range check is needed or performed.
func Shr[T Unsigned](x Int[T], n uint) Int[T] {
	return Make(x.Get()>>n, x.err)
}
