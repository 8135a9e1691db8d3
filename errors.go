package lazyrpn

import (
	"errors"
	"strconv"
)

var (
	// ErrSyntax is reported when the stack does not hold exactly one value at
	// the end of the input, or an operator finds fewer than two operands.
	ErrSyntax = errors.New("syntax error")
	// ErrUnknownOperator is reported for a token with no registration.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrAlreadyDefined is reported when a token is registered twice.
	ErrAlreadyDefined = errors.New("operator already defined")
	// ErrInvalidToken is reported when a token lies outside 0..MaxToken.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNilFunc is reported when a nil literal or function is registered.
	ErrNilFunc = errors.New("nil function")
)

// TokenError is an error found while parsing input. It unwraps to ErrSyntax or
// ErrUnknownOperator.
type TokenError struct {
	// Pos is the 1-based rune offset of the token, or the input length plus
	// one when the error was found at the end of the input.
	Pos int
	// Token is the offending token, or 0 at the end of the input.
	Token rune
	// Depth is the stack height when the error was found.
	Depth int
	Err   error
}

func (err *TokenError) Error() string {
	s := strconv.Itoa(err.Pos) + ": " + err.Err.Error()
	if err.Token != 0 {
		s += " at " + strconv.QuoteRune(err.Token)
	}
	switch {
	case err.Err != ErrSyntax:
	case err.Token != 0:
		s += " (stack underflow)"
	case err.Depth == 0:
		s += " (no expression)"
	default:
		s += " (" + strconv.Itoa(err.Depth) + " values left on stack)"
	}
	return s
}

func (err *TokenError) Unwrap() error {
	return err.Err
}

// DefineError is an error from registering a token. It unwraps to
// ErrAlreadyDefined, ErrInvalidToken or ErrNilFunc.
type DefineError struct {
	Token rune
	// Kind is the kind of the registration that was rejected.
	Kind Ft
	Err  error
}

func (err *DefineError) Error() string {
	return "define " + err.Kind.String() + " " + strconv.QuoteRune(err.Token) + ": " + err.Err.Error()
}

func (err *DefineError) Unwrap() error {
	return err.Err
}
