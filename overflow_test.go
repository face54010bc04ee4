package safeint

import (
	"math"
	"testing"
)

type binCase[T Integer] struct {
	name string
	a, b T
	want T // wrapped result, asserted even on overflow
	over bool
}

func runBinCases[T Integer](t *testing.T, op func(a, b T) (T, bool), cases []binCase[T]) {
	t.Helper()

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, over := op(tc.a, tc.b)
			if over != tc.over {
				t.Errorf("overflow = %v, want %v", over, tc.over)
			}
			if got != tc.want {
				t.Errorf("wrapped result = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAddOverflow_Uint8(t *testing.T) {
	runBinCases(t, AddOverflow[uint8], []binCase[uint8]{
		{"zero", 0, 0, 0, false},
		{"plain", 100, 55, 155, false},
		{"at max", 254, 1, 255, false},
		{"carry", 255, 1, 0, true},
		{"big carry", 200, 200, 144, true},
	})
}

func TestAddOverflow_Int8(t *testing.T) {
	runBinCases(t, AddOverflow[int8], []binCase[int8]{
		{"plain", 100, 27, 127, false},
		{"negatives", -100, -28, -128, false},
		{"max plus one", 127, 1, -128, true},
		{"min plus minus one", -128, -1, 127, true},
		{"mixed signs never overflow", 127, -128, -1, false},
	})
}

func TestAddOverflow_Int64(t *testing.T) {
	runBinCases(t, AddOverflow[int64], []binCase[int64]{
		{"plain", 1 << 40, 1 << 40, 1 << 41, false},
		{"max plus one", math.MaxInt64, 1, math.MinInt64, true},
		{"min plus minus one", math.MinInt64, -1, math.MaxInt64, true},
	})
}

func TestSubOverflow_Uint16(t *testing.T) {
	runBinCases(t, SubOverflow[uint16], []binCase[uint16]{
		{"plain", 500, 300, 200, false},
		{"to zero", 300, 300, 0, false},
		{"borrow", 0, 1, 65535, true},
		{"big borrow", 100, 65535, 101, true},
	})
}

func TestSubOverflow_Int32(t *testing.T) {
	runBinCases(t, SubOverflow[int32], []binCase[int32]{
		{"plain", 10, 3, 7, false},
		{"min minus one", math.MinInt32, 1, math.MaxInt32, true},
		{"max minus minus one", math.MaxInt32, -1, math.MinInt32, true},
		{"min minus min", math.MinInt32, math.MinInt32, 0, false},
	})
}

func TestMulOverflow_Uint8(t *testing.T) {
	runBinCases(t, MulOverflow[uint8], []binCase[uint8]{
		{"zero", 0, 255, 0, false},
		{"plain", 15, 17, 255, false},
		{"carry", 16, 16, 0, true},
		{"large", 200, 3, 88, true},
	})
}

func TestMulOverflow_Int8(t *testing.T) {
	runBinCases(t, MulOverflow[int8], []binCase[int8]{
		{"zero", 0, -128, 0, false},
		{"plain", -8, 16, -128, false},
		{"positive overflow", 64, 2, -128, true},
		{"min times minus one", -128, -1, -128, true},
		{"minus one times min", -1, -128, -128, true},
		{"min times one", -128, 1, -128, false},
		{"two times min", 2, -128, 0, true},
	})
}

func TestMulOverflow_Uint64(t *testing.T) {
	runBinCases(t, MulOverflow[uint64], []binCase[uint64]{
		{"plain", 1 << 32, 1 << 31, 1 << 63, false},
		{"carry", 1 << 32, 1 << 32, 0, true},
		{"max times one", math.MaxUint64, 1, math.MaxUint64, false},
	})
}

func TestBounds(t *testing.T) {
	if got := MaxOf[int8](); got != math.MaxInt8 {
		t.Errorf("MaxOf[int8] = %d", got)
	}
	if got := MinOf[int8](); got != math.MinInt8 {
		t.Errorf("MinOf[int8] = %d", got)
	}
	if got := MaxOf[int64](); got != math.MaxInt64 {
		t.Errorf("MaxOf[int64] = %d", got)
	}
	if got := MinOf[int64](); got != math.MinInt64 {
		t.Errorf("MinOf[int64] = %d", got)
	}
	if got := MaxOf[uint8](); got != math.MaxUint8 {
		t.Errorf("MaxOf[uint8] = %d", got)
	}
	if got := MinOf[uint32](); got != 0 {
		t.Errorf("MinOf[uint32] = %d", got)
	}
	if got := MaxOf[uint64](); got != math.MaxUint64 {
		t.Errorf("MaxOf[uint64] = %d", got)
	}
	if got := MaxOf[uintptr](); got != ^uintptr(0) {
		t.Errorf("MaxOf[uintptr] = %d", got)
	}
}

func TestIsSigned(t *testing.T) {
	if !IsSigned[int8]() || !IsSigned[int64]() {
		t.Error("signed kinds reported unsigned")
	}
	if IsSigned[uint8]() || IsSigned[uint64]() || IsSigned[uintptr]() {
		t.Error("unsigned kinds reported signed")
	}
}
