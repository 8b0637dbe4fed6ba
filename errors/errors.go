package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseAlloc    Phase = "alloc"    // buffer creation and growth
	PhaseEncode   Phase = "encode"   // value to wire bytes
	PhaseDecode   Phase = "decode"   // wire bytes to value
	PhaseValidate Phase = "validate" // host-value validation in the binding layer
)

// Kind categorizes the error
type Kind string

const (
	KindAllocation  Kind = "allocation"   // storage request beyond what can be served
	KindOverflow    Kind = "overflow"     // arithmetic overflow during capacity sizing
	KindTruncated   Kind = "truncated"    // read past the valid length
	KindOutOfRange  Kind = "out_of_range" // host value outside the wire type's domain
	KindInvalidUTF8 Kind = "invalid_utf8"
	KindInvalidData Kind = "invalid_data"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

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

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// Truncated creates an error for a read past the valid length
func Truncated(cursor, n, length int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTruncated,
		Detail: fmt.Sprintf("read of %d bytes at cursor %d exceeds length %d", n, cursor, length),
	}
}

// Allocation creates an error for a storage request that cannot be served
func Allocation(size, limit int) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("cannot allocate %d bytes (limit %d)", size, limit),
	}
}

// SizeOverflow creates an error for arithmetic overflow during capacity sizing
func SizeOverflow(length, additional int) *Error {
	return &Error{
		Phase:  PhaseAlloc,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("capacity overflow sizing %d additional bytes at length %d", additional, length),
	}
}

// LengthOverflow creates an error for a collection that exceeds the u32 length prefix
func LengthOverflow(phase Phase, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("collection length %d exceeds u32 prefix", length),
		Value:  length,
	}
}

// OutOfRange creates an error for a host value outside the wire type's domain
func OutOfRange(phase Phase, path []string, value any, wireType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfRange,
		Path:   path,
		Detail: fmt.Sprintf("value %v out of range for %s", value, wireType),
		Value:  value,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(phase Phase, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
