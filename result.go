package gltexture

import "fmt"

// Code classifies a texture operation failure.
type Code uint8

const (
	// CodeOk indicates success. A nil error always maps to CodeOk.
	CodeOk Code = iota

	// CodeArgumentInvalid indicates a malformed descriptor or a
	// format/usage combination absent from the backend catalog.
	CodeArgumentInvalid

	// CodeArgumentOutOfRange indicates an upload or readback region
	// exceeding the resource's extent at the addressed mip level.
	CodeArgumentOutOfRange

	// CodeUnsupported indicates the backend or GPU lacks a required
	// capability (immutable storage, a compressed transfer path, a
	// dimensionality).
	CodeUnsupported

	// CodeInvalidOperation indicates a structurally wrong call for the
	// resource's actual type, such as a cube-face upload on a non-cube
	// texture.
	CodeInvalidOperation

	// CodeUnimplemented indicates a request shape not currently handled,
	// such as a multi-level single-call upload.
	CodeUnimplemented

	// CodeInternal indicates an internal consistency failure, such as a
	// non-positive computed compressed byte length.
	CodeInternal
)

// String returns the code's name.
func (c Code) String() string {
	switch c {
	case CodeOk:
		return "ok"
	case CodeArgumentInvalid:
		return "argument invalid"
	case CodeArgumentOutOfRange:
		return "argument out of range"
	case CodeUnsupported:
		return "unsupported"
	case CodeInvalidOperation:
		return "invalid operation"
	case CodeUnimplemented:
		return "unimplemented"
	case CodeInternal:
		return "internal"
	}
	return fmt.Sprintf("code(%d)", uint8(c))
}

// Error is the error type returned by all texture operations. It carries
// a classification code and a human-readable message.
//
// Error works with the errors package: errors.Is(err, ErrUnsupported)
// matches any error carrying CodeUnsupported.
type Error struct {
	Code    Code
	Message string
}

// Sentinel errors, one per code, for use with errors.Is.
var (
	ErrArgumentInvalid    = &Error{Code: CodeArgumentInvalid}
	ErrArgumentOutOfRange = &Error{Code: CodeArgumentOutOfRange}
	ErrUnsupported        = &Error{Code: CodeUnsupported}
	ErrInvalidOperation   = &Error{Code: CodeInvalidOperation}
	ErrUnimplemented      = &Error{Code: CodeUnimplemented}
	ErrInternal           = &Error{Code: CodeInternal}
)

// NewError returns an error with the given code and message.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf returns an error with the given code and formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" {
		return "gltexture: " + e.Code.String()
	}
	return "gltexture: " + e.Code.String() + ": " + e.Message
}

// Is reports whether target carries the same code. A sentinel (an Error
// with an empty message) matches any error with its code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// CodeOf extracts the classification code from err. A nil error yields
// CodeOk; a non-nil error that is not an *Error yields CodeInternal.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOk
	}
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return CodeInternal
}
