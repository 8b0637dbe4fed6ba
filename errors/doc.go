// Package errors provides structured error types for the borsh-go library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries a field path, the offending value, and a
// cause chain for diagnostics.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTruncated).
//		Detail("read of 4 bytes at cursor 10 exceeds length 12").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(cursor, n, length)
//	err := errors.OutOfRange(errors.PhaseValidate, path, v, "u16")
//
// All errors implement the standard error interface and support errors.Is/As;
// two *Error values match when their Phase and Kind agree.
package errors
