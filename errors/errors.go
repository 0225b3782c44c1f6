package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the pipeline the error occurred
type Phase string

const (
	PhaseOpen    Phase = "open"    // container/file access
	PhaseExtract Phase = "extract" // debug-info extraction
	PhaseAnalyze Phase = "analyze" // layout analysis
	PhaseScan    Phase = "scan"    // multi-artifact scan driver
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound         Kind = "not_found"
	KindInvalidContainer Kind = "invalid_container"
	KindNoDebugInfo      Kind = "no_debug_info"
	KindInvalidPattern   Kind = "invalid_pattern"
	KindNoInput          Kind = "no_input"
	KindUnresolvedType   Kind = "unresolved_type"
)

// Error is the structured error type used throughout struct-lint
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Artifact string
	Path     []string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Artifact != "" {
		b.WriteString(" in ")
		b.WriteString(e.Artifact)
	}

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Artifact sets the artifact path the error relates to
func (b *Builder) Artifact(path string) *Builder {
	b.err.Artifact = path
	return b
}

// Path sets the struct/member path inside the debug info
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NotFound creates an error for a missing artifact
func NotFound(artifact string, cause error) *Error {
	return &Error{
		Phase:    PhaseOpen,
		Kind:     KindNotFound,
		Artifact: artifact,
		Cause:    cause,
	}
}

// InvalidContainer creates an error for an unrecognized container format
func InvalidContainer(artifact string, cause error) *Error {
	return &Error{
		Phase:    PhaseOpen,
		Kind:     KindInvalidContainer,
		Artifact: artifact,
		Cause:    cause,
	}
}

// NoDebugInfo creates an error for an artifact without loadable debug sections
func NoDebugInfo(artifact string, cause error) *Error {
	return &Error{
		Phase:    PhaseOpen,
		Kind:     KindNoDebugInfo,
		Artifact: artifact,
		Cause:    cause,
	}
}

// InvalidPattern creates an error for an unparsable name-pattern expression
func InvalidPattern(expr string, cause error) *Error {
	return &Error{
		Phase:  PhaseScan,
		Kind:   KindInvalidPattern,
		Detail: fmt.Sprintf("invalid pattern %q", expr),
		Cause:  cause,
	}
}

// NoInput creates an error for a scan that found nothing to process
func NoInput(detail string) *Error {
	return &Error{
		Phase:  PhaseScan,
		Kind:   KindNoInput,
		Detail: detail,
	}
}
