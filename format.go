package safeint

import (
	"log/slog"
	"strconv"
)

// failedToken is what a failed value renders as. Rendering exposes the
// failure, never the stale payload.
const failedToken = "error"

// String renders the value in decimal, or the failure token if the value has
// failed. The method performs no I/O; it only produces the text.
func (x Int[T]) String() string {
	if x.err {
		return failedToken
	}
	if IsSigned[T]() {
		return strconv.FormatInt(int64(x.val), 10)
	}
	return strconv.FormatUint(uint64(x.val), 10)
}

// LogValue makes checked values log structurally through log/slog: a valid
// value logs as its number, a failed one as the failure token.
func (x Int[T]) LogValue() slog.Value {
	if x.err {
		return slog.StringValue(failedToken)
	}
	if IsSigned[T]() {
		return slog.Int64Value(int64(x.val))
	}
	return slog.Uint64Value(uint64(x.val))
}
