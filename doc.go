// Package safeint provides checked integer values with sticky, in-band
// failure.
//
// # Overview
//
// safeint wraps the fixed-width integer kinds in a value type, Int[T], that
// performs every arithmetic, comparison, and bitwise operation with explicit
// overflow, underflow, and divide-by-zero detection. Failures never panic and
// never surface as wrapped garbage: they are recorded on the value itself and
// propagate virally through every subsequent operation. Code on top of it can
// write unchecked-looking chains and test once at the end:
//
//	total := safeint.New(base).Add(safeint.New(header)).Mul(safeint.New(count))
//	if total.Failure() {
//	    return errInputTooLarge
//	}
//	buf := make([]byte, total.Get())
//
// # The failure contract
//
// Three rules define the type; everything else follows from them:
//
//   - Sticky: once a value has failed, no arithmetic can un-fail it. Only
//     reconstruction from a fresh literal (New, Set) clears the flag.
//   - Zero-masking: a failed value reads as zero through Get. An ignored
//     failure becomes a harmless zero, never an out-of-range index.
//   - Poisoning: a failed operand forces every comparison to report false
//     (and Ne to report true). A failed 42 is not equal to 42, and not
//     equal to itself. Failure destroys numeric identity on purpose.
//
// # Package components
//
//   - overflow.go    - checked add/sub/mul primitives and per-kind bounds
//   - safeint.go     - the Int[T] value type and its arithmetic
//   - compare.go     - poisoning comparisons
//   - bits.go        - unsigned-only bitwise and shift operations
//   - conv.go        - range-checked conversion between kinds
//   - aliases.go     - I8..I64, U8..U64, Uptr
//   - assertions.go  - test helpers for the contract
//
// # Kind restrictions
//
// Bitwise and shift operations exist only for unsigned kinds, and unary
// negation only for signed ones. Both restrictions are enforced by the type
// system (the Unsigned and Signed constraints), so a wrong-kind operand is a
// compile error, not a runtime surprise.
//
// # Concurrency
//
// Int is a plain scalar: no allocation, no shared state, no locking.
// Distinct values are safe to use from any number of goroutines; mutating
// one value concurrently is a data race, exactly as with a bare int.
package safeint
