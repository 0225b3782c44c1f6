// Package errors provides structured error types for the struct-lint library.
//
// Errors are categorized by Phase (where in the pipeline the error occurred)
// and Kind (error category). The Error type includes rich context: the
// artifact path, the struct/member path inside the debug info, and a cause
// chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseOpen, errors.KindInvalidContainer).
//		Artifact("build/proto.o").
//		Detail("bad ELF magic").
//		Cause(underlying).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(path, cause)
//	err := errors.NoDebugInfo(path, cause)
//	err := errors.InvalidPattern(expr, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two Errors match under errors.Is when their Phase and Kind are equal, so
// callers can classify failures without string matching.
package errors
