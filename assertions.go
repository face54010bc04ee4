package safeint

import "testing"

// Test helpers for the checked-value contract. They ship with the package so
// that code built on top of it can assert the same invariants against its own
// composite operations.

// AssertValid fails the test unless x is valid and holds want.
func AssertValid[T Integer](t *testing.T, x Int[T], want T) {
	t.Helper()

	if x.Failure() {
		t.Errorf("value failed, want valid %v", want)
		return
	}
	if got := x.Get(); got != want {
		t.Errorf("Get() = %v, want %v", got, want)
	}
}

// AssertFailed fails the test unless x has failed and masks its payload to
// zero (a failed value that still exposes data is a contract violation).
func AssertFailed[T Integer](t *testing.T, x Int[T]) {
	t.Helper()

	if !x.Failure() {
		t.Errorf("value valid (%v), want failed", x.Get())
		return
	}
	if got := x.Get(); got != 0 {
		t.Errorf("failed value Get() = %v, want 0", got)
	}
}

// AssertSticky verifies that op propagates failure from either operand: for
// every combination with at least one failed input, the output must be
// failed. a and b are ordinary payloads for which op succeeds on valid
// inputs.
func AssertSticky[T Integer](t *testing.T, a, b T, op func(Int[T], Int[T]) Int[T]) {
	t.Helper()

	if out := op(Make(a, true), New(b)); !out.Failure() {
		t.Errorf("op(failed %v, %v) = %v, want failed", a, b, out)
	}
	if out := op(New(a), Make(b, true)); !out.Failure() {
		t.Errorf("op(%v, failed %v) = %v, want failed", a, b, out)
	}
	if out := op(Make(a, true), Make(b, true)); !out.Failure() {
		t.Errorf("op(failed %v, failed %v) = %v, want failed", a, b, out)
	}
}
