package ax

import (
	"errors"
	"fmt"
)

// Code is a status code returned by the accessibility API. Success is 0; every
// other value is a failure and is surfaced unchanged as an error.
type Code int32

// Status codes reported by the accessibility API.
const (
	Success                                Code = 0
	ErrorFailure                           Code = -25200
	ErrorIllegalArgument                   Code = -25201
	ErrorInvalidUIElement                  Code = -25202
	ErrorInvalidUIElementObserver          Code = -25203
	ErrorCannotComplete                    Code = -25204
	ErrorAttributeUnsupported              Code = -25205
	ErrorActionUnsupported                 Code = -25206
	ErrorNotificationUnsupported           Code = -25207
	ErrorNotImplemented                    Code = -25208
	ErrorNotificationAlreadyRegistered     Code = -25209
	ErrorNotificationNotRegistered         Code = -25210
	ErrorAPIDisabled                       Code = -25211
	ErrorNoValue                           Code = -25212
	ErrorParameterizedAttributeUnsupported Code = -25213
	ErrorNotEnoughPrecision                Code = -25214
)

var codeNames = map[Code]string{
	Success:                                "success",
	ErrorFailure:                           "failure",
	ErrorIllegalArgument:                   "illegal argument",
	ErrorInvalidUIElement:                  "invalid UI element",
	ErrorInvalidUIElementObserver:          "invalid UI element observer",
	ErrorCannotComplete:                    "cannot complete",
	ErrorAttributeUnsupported:              "attribute unsupported",
	ErrorActionUnsupported:                 "action unsupported",
	ErrorNotificationUnsupported:           "notification unsupported",
	ErrorNotImplemented:                    "not implemented",
	ErrorNotificationAlreadyRegistered:     "notification already registered",
	ErrorNotificationNotRegistered:         "notification not registered",
	ErrorAPIDisabled:                       "API disabled",
	ErrorNoValue:                           "no value",
	ErrorParameterizedAttributeUnsupported: "parameterized attribute unsupported",
	ErrorNotEnoughPrecision:                "not enough precision",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%d)", int32(c))
}

// Error implements error. A Code is only ever returned as an error when it is
// not Success.
func (c Code) Error() string {
	return fmt.Sprintf("accessibility error %d: %s", int32(c), c.String())
}

// Retryable reports whether the code usually describes a transient condition
// (the target app was busy or slow to answer). Callers decide whether to retry.
func (c Code) Retryable() bool {
	return c == ErrorCannotComplete || c == ErrorFailure
}

// check converts a foreign status code to an error.
func check(c Code) error {
	if c == Success {
		return nil
	}
	return c
}

// ErrNotFound is returned when a search runs out of time without a match, or
// when a process cannot be located by bundle identifier.
var ErrNotFound = errors.New("element not found")

// UnexpectedTypeError reports that the value stored under an attribute did not
// have the kind the attribute declares.
type UnexpectedTypeError struct {
	Attribute string
	Expected  ValueKind
	Received  ValueKind
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("attribute %s: expected %s value, got %s", e.Attribute, e.Expected, e.Received)
}

// IsCode reports whether err carries the given accessibility status code.
func IsCode(err error, code Code) bool {
	var c Code
	return errors.As(err, &c) && c == code
}
