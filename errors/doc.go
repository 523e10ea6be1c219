// Package errors provides structured error types for the synthetic provider library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: value path, offending type name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
//		Path("buf", "inner").
//		TypeName("alloc::raw_vec::RawVecInner").
//		Detail("unexpected wrapper layout").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseDecode, path, 10, 5)
//	err := errors.ReadFailed(path, addr, length, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
