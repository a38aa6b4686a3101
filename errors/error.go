package errors

import (
	"fmt"

	"github.com/oasislabs/decoder-client/log"
	pkgerrors "github.com/pkg/errors"
)

type Err interface {
	Error() string
	log.Loggable
}

var (
	ErrInternalError = ErrorCode{
		category: InternalError,
		code:     1000,
		desc:     "Internal Error.",
	}

	ErrSerializePayload = ErrorCode{
		category: InternalError,
		code:     1001,
		desc:     "Failed to serialize request payload as JSON.",
	}

	ErrReadContract = ErrorCode{
		category: InputError,
		code:     2001,
		desc:     "Failed to read contract source file.",
	}

	ErrReadABI = ErrorCode{
		category: InputError,
		code:     2002,
		desc:     "Failed to read ABI file.",
	}

	ErrDeserializeABI = ErrorCode{
		category: InputError,
		code:     2003,
		desc:     "Failed to deserialize ABI as a JSON array.",
	}

	ErrUnknownABISource = ErrorCode{
		category: ConfigError,
		code:     3001,
		desc:     "Unknown ABI source.",
	}

	ErrInvalidURL = ErrorCode{
		category: ConfigError,
		code:     3002,
		desc:     "Invalid decoder URL.",
	}

	ErrNewHttpRequest = ErrorCode{
		category: TransportError,
		code:     4001,
		desc:     "Failed to create http request.",
	}

	ErrSendHttpRequest = ErrorCode{
		category: TransportError,
		code:     4002,
		desc:     "Failed to deliver http request to decoder.",
	}

	ErrReadHttpResponse = ErrorCode{
		category: TransportError,
		code:     4003,
		desc:     "Failed to read http response body.",
	}

	ErrPrometheusPush = ErrorCode{
		category: InternalError,
		code:     1002,
		desc:     "Failed to push metrics to prometheus.",
	}
)

// Category defines error categories that logically group them
type Category string

const (
	// InternalError refers to unexpected errors in the normal
	// execution of the client
	InternalError Category = "InternalError"

	// InputError refers to errors caused by the contract or ABI
	// inputs being missing, unreadable or malformed
	InputError Category = "InputError"

	// ConfigError refers to an invalid configuration value
	ConfigError Category = "ConfigError"

	// TransportError refers to failures reaching the decoder, such
	// as a refused connection or a failed DNS resolution
	TransportError Category = "TransportError"
)

// Error is the implementation of an error for this package. It contains
// an instance of an ErrorCode which provides information about the error
// and a cause which might be nil if there's no underlying cause for
// the error
type Error struct {
	Cause     error
	ErrorCode ErrorCode
}

// Error is the implementation of error for Error
func (e Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%d] %s: %s",
			e.ErrorCode.Code(), e.ErrorCode.Category(), e.ErrorCode.Desc())
	}

	return fmt.Sprintf("[%d] %s: %s: %s",
		e.ErrorCode.Code(), e.ErrorCode.Category(), e.ErrorCode.Desc(), e.Cause.Error())
}

// Unwrap implements the standard library unwrapping protocol
func (e Error) Unwrap() error {
	return e.Cause
}

// Log implementation of log.Loggable
func (e Error) Log(fields log.Fields) {
	fields.Add("err", e.ErrorCode.Desc())
	fields.Add("errorCode", e.ErrorCode.Code())
	fields.Add("errorCategory", string(e.ErrorCode.Category()))

	if e.Cause != nil {
		fields.Add("cause", e.Cause.Error())
	}
}

// New creates a new instance of an error
func New(errorCode ErrorCode, cause error) Error {
	return Error{Cause: cause, ErrorCode: errorCode}
}

// Wrap creates a new error adding msg as context to the cause
func Wrap(errorCode ErrorCode, cause error, msg string) Error {
	return Error{Cause: pkgerrors.Wrap(cause, msg), ErrorCode: errorCode}
}

// CodeOf returns the ErrorCode of err if err is an Error, and
// ErrInternalError otherwise
func CodeOf(err error) ErrorCode {
	e, ok := err.(Error)
	if !ok {
		return ErrInternalError
	}

	return e.ErrorCode
}

// ErrorCode holds the necessary information to uniquely identify an error
type ErrorCode struct {
	// category is the type of the error
	category Category

	// code is a unique identifier for the error
	code int

	// desc is a human readable description of the error
	desc string
}

// Category getter for category
func (e ErrorCode) Category() Category {
	return e.category
}

// Code getter for code
func (e ErrorCode) Code() int {
	return e.code
}

// Desc getter for desc
func (e ErrorCode) Desc() string {
	return e.desc
}
