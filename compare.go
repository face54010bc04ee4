package safeint

// Comparisons between checked values poison on failure: if either operand has
// failed, every comparison reports false except Ne, which reports true. This
// holds even against the literal the payload once equaled: a failed 42 is
// not equal to 42, and not even equal to itself.
//
// The broken reflexivity is deliberate and load-bearing. Failure destroys
// numeric identity, so no failed value can slip through an equality guard:
//
//	if idx.Lt(length) {        // false whenever idx has failed
//	    use(buf[idx.Get()])
//	}
//
// Do not "repair" these into an equivalence relation; code that needs to ask
// "did both fail" compares Failure() flags directly.

// Eq reports x == y. False if either operand has failed.
func (x Int[T]) Eq(y Int[T]) bool {
	return x.Get() == y.Get() && !x.err && !y.err
}

// EqVal reports x == v for a raw operand. False if x has failed.
func (x Int[T]) EqVal(v T) bool {
	return x.Get() == v && !x.err
}

// Ne reports x != y. True if either operand has failed.
func (x Int[T]) Ne(y Int[T]) bool {
	return !x.Eq(y)
}

// NeVal reports x != v for a raw operand. True if x has failed.
func (x Int[T]) NeVal(v T) bool {
	return !x.EqVal(v)
}

// Lt reports x < y. False if either operand has failed.
func (x Int[T]) Lt(y Int[T]) bool {
	return x.Get() < y.Get() && !x.err && !y.err
}

// LtVal reports x < v for a raw operand. False if x has failed.
func (x Int[T]) LtVal(v T) bool {
	return x.Get() < v && !x.err
}

// Le reports x <= y. False if either operand has failed.
func (x Int[T]) Le(y Int[T]) bool {
	return x.Get() <= y.Get() && !x.err && !y.err
}

// LeVal reports x <= v for a raw operand. False if x has failed.
func (x Int[T]) LeVal(v T) bool {
	return x.Get() <= v && !x.err
}

// Gt reports x > y. False if either operand has failed.
func (x Int[T]) Gt(y Int[T]) bool {
	return x.Get() > y.Get() && !x.err && !y.err
}

// GtVal reports x > v for a raw operand. False if x has failed.
func (x Int[T]) GtVal(v T) bool {
	return x.Get() > v && !x.err
}

// Ge reports x >= y. False if either operand has failed.
func (x Int[T]) Ge(y Int[T]) bool {
	return x.Get() >= y.Get() && !x.err && !y.err
}

// GeVal reports x >= v for a raw operand. False if x has failed.
func (x Int[T]) GeVal(v T) bool {
	return x.Get() >= v && !x.err
}
