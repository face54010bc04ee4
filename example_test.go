package safeint_test

import (
	"fmt"

	"github.com/connojd/safeint"
)

func Example() {
	// An untrusted element count times a fixed record size. The chain is
	// written as if nothing could go wrong; the flag is checked once.
	count := safeint.New(uint32(1 << 30))
	size := safeint.New(uint32(16))

	total := count.Mul(size).AddVal(64) // payload + header

	fmt.Println(total.Failure(), total.Get())

	// A sane count goes through untouched.
	total = safeint.New(uint32(1000)).Mul(size).AddVal(64)
	fmt.Println(total.Failure(), total.Get())

	// Output:
	// true 0
	// false 16064
}

func ExampleInt_Div() {
	// Division by zero is an in-band failure, not a panic.
	q := safeint.New(int32(10)).Div(safeint.Zero[int32]())
	fmt.Println(q.Failure(), q.Get())
	// Output: true 0
}

func ExampleTo() {
	// Narrowing at a trust boundary: the out-of-range value fails instead
	// of truncating.
	wide := safeint.New(uint64(70000))
	fmt.Println(safeint.To[uint16](wide).Failure())
	fmt.Println(safeint.To[uint32](wide).Get())
	// Output:
	// true
	// 70000
}
