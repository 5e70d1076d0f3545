/*
Package kerr defines the error values shared by every stage of the
Kaleidoscope front-end pipeline.

Every error carries a Kind (what went wrong), a human-readable message,
an optional source Position, and an optional wrapped cause so that
errors.Is/errors.As compose across package boundaries the normal Go way.
No stage panics on a recoverable input error; errors are returned and
propagate upward until the driver decides to abort or resync.
*/
package kerr

import (
	"fmt"
)

// Position is satisfied by charstream.Position without this package
// importing charstream, which itself reports read failures as *Error.
type Position interface {
	String() string
}

// Kind classifies an Error by which failure mode produced it.
type Kind int

const (
	// Other is the catch-all kind for failures that do not fit any
	// of the named categories below.
	Other Kind = iota

	// FileIO marks a char stream read failure.
	FileIO
	// InvalidChar marks a character the lexer cannot classify.
	InvalidChar
	// BadChar marks a character appearing in the wrong lexer state
	// (e.g. a trailing '.' with no fractional digits).
	BadChar
	// InvalidToken marks a lex-level structural failure.
	InvalidToken
	// InvalidCombo marks an unrecognized run of operator characters.
	InvalidCombo
	// ExcessiveChars marks a token that ran on longer than its grammar allows.
	ExcessiveChars
	// LexerFatal marks an internal lexer inconsistency.
	LexerFatal
	// TypeCasting marks an AST construction failure from a malformed token.
	TypeCasting
	// WrongTokenKind marks a token of the wrong kind reaching AST construction.
	WrongTokenKind
	// ParsingError marks a general parser failure.
	ParsingError
	// SyntaxError marks a grammar violation.
	SyntaxError
	// UndefinedName marks a reference to an unbound identifier during emission.
	UndefinedName
	// UnknownOperation marks an operator the emitter does not implement.
	UnknownOperation
	// TypeError marks an operand of the wrong type during emission.
	TypeError
	// NotBasicValue marks a call result that is not a usable value.
	NotBasicValue
	// CouldNotMakeFunction marks a failed function declaration or verification.
	CouldNotMakeFunction
	// BitWidth marks an integer literal that does not fit the emitter's width.
	BitWidth
)

var kindNames = map[Kind]string{
	Other:                 "Other",
	FileIO:                "FileIO",
	InvalidChar:           "InvalidChar",
	BadChar:               "BadChar",
	InvalidToken:          "InvalidToken",
	InvalidCombo:          "InvalidCombo",
	ExcessiveChars:        "ExcessiveChars",
	LexerFatal:            "LexerFatal",
	TypeCasting:           "TypeCasting",
	WrongTokenKind:        "WrongTokenKind",
	ParsingError:          "ParsingError",
	SyntaxError:           "SyntaxError",
	UndefinedName:         "UndefinedName",
	UnknownOperation:      "UnknownOperation",
	TypeError:             "TypeError",
	NotBasicValue:         "NotBasicValue",
	CouldNotMakeFunction:  "CouldNotMakeFunction",
	BitWidth:              "BitWidth",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Other"
}

// Error is the error type returned by every package in this module.
type Error struct {
	Kind    Kind
	Message string
	Pos     Position
	Cause   error
}

// New creates an Error with no position information.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At creates an Error positioned at pos.
func At(kind Kind, pos Position, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// Wrap creates an Error that chains cause.
func Wrap(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("[%s] %s: %s", e.Pos.String(), e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}
