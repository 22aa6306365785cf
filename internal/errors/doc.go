// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// input validation, verification mismatches) and for carrying the underlying
// cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All wrapping error types implement the Unwrap() method to support errors.Is()
// and errors.As().
//
// Programming errors inside the arithmetic kernel (an undersized accumulator
// buffer, for instance) are not represented here: they panic at the call site.
package apperrors
