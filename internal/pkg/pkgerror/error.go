package pkgerror

import (
	"errors"
	"log/slog"
	"net/http"
)

var (
	// ErrNotFound indicates that the requested resource could not be found.
	ErrNotFound = errors.New("resource not found")
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	TypeServer     Type = iota // Server-side errors (I/O, encoding setup).
	TypeBusiness               // Domain rule violations (missing directory, unusable file).
	TypeValidation             // Input validation failures.
)

func (t Type) String() string {
	switch t {
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeBusiness:
		return "ERROR_TYPE_BUSINESS"
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier used for mapping errors to HTTP status codes.
type Code int

const (
	CodeInternal     Code = iota // Internal or unspecified error.
	CodeInvalidInput             // Bad query parameters or arguments.
	CodeNotFound                 // Missing directory, file or report.
	CodeMalformed                // Unreadable price-list content.
	CodeUnsupported              // Unknown encoding or file format.
)

func (c Code) String() string {
	switch c {
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	case CodeMalformed:
		return "ERROR_CODE_MALFORMED"
	case CodeUnsupported:
		return "ERROR_CODE_UNSUPPORTED"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error is a structured error used across the application.
//
// It can wrap an underlying error while also carrying a user-facing message,
// a high-level type, and a stable error code.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.err != nil && e.msg != "" && e.errType != TypeServer:
		return e.msg + ": " + e.err.Error()
	case e.err != nil:
		return e.err.Error()
	case e.msg != "":
		return e.msg
	}

	switch e.errType {
	case TypeValidation:
		return "Validation violation"
	case TypeBusiness:
		return "Logical business not meet with requirement"
	case TypeServer:
		return "Internal error"
	default:
		return "Unknown error"
	}
}

// LogValue groups type, code, message and cause when the error is logged
// with slog.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", e.errType.String()),
		slog.String("code", e.code.String()),
	}
	if e.msg != "" {
		attrs = append(attrs, slog.String("msg", e.msg))
	}
	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}
	return slog.GroupValue(attrs...)
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the error code to an HTTP status code.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeMalformed, CodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.code
	}
	return CodeInternal
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer creates a server-type error with the provided error.
func NewServer(err error) error {
	return new(err, "Internal server error", TypeServer, CodeInternal)
}

// NewBusiness creates a business-type error with the specified message and code.
func NewBusiness(msg string, code Code) error {
	return new(nil, msg, TypeBusiness, code)
}

// WrapBusiness is NewBusiness that keeps err as the cause.
func WrapBusiness(err error, msg string, code Code) error {
	return new(err, msg, TypeBusiness, code)
}

// NewInvalidInput creates a validation error for invalid input.
func NewInvalidInput(err error) error {
	return new(err, "validation error", TypeValidation, CodeInvalidInput)
}
