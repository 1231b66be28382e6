package calc

import (
	"errors"
	"strconv"
)

// Kinds of errors. Every error returned by this package unwraps to one of
// these, so callers can distinguish them with errors.Is.
var (
	// ErrEmptyExpression is the error for input which is empty or contains
	// only whitespace.
	ErrEmptyExpression = errors.New("no expression")
	// ErrInvalidCharacter is the error for a character which cannot appear in
	// an expression.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrMalformedNumber is the error for a number with more than one decimal
	// point or with no digits.
	ErrMalformedNumber = errors.New("malformed number")
	// ErrDanglingSign is the error for a unary sign which is not immediately
	// followed by a number.
	ErrDanglingSign = errors.New("sign without number")
	// ErrMisplacedOperator is the error for a binary operator with nothing
	// valid on its left.
	ErrMisplacedOperator = errors.New("operator in invalid position")
	// ErrMisplacedClose is the error for a close bracket that does not follow
	// a complete term.
	ErrMisplacedClose = errors.New("close bracket in invalid position")
	// ErrUnbalanced is the error for an open or close bracket with no match.
	ErrUnbalanced = errors.New("unbalanced brackets")
	// ErrIncompleteExpression is the error for input which ends after an
	// operator or open bracket.
	ErrIncompleteExpression = errors.New("incomplete expression")
	// ErrMissingOperands is the error for a postfix operator applied with
	// fewer than two values available.
	ErrMissingOperands = errors.New("missing operands")
	// ErrInvalidExpression is the error for a postfix program which does not
	// leave exactly one value.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrDivisionByZero is the error for dividing by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// ExprError is an error in an expression. It implements InputError.
type ExprError struct {
	// Col is the column of the start of the token that caused the error, in
	// runes counted from 1. It is 0 when the error has no single location,
	// such as for an empty expression.
	Col int
	// Text is the offending token or character, if any.
	Text string
	// Err is the kind of error, one of the Err variables in this package.
	Err error
}

func (err *ExprError) Error() string {
	msg := err.Err.Error()
	if err.Text != "" {
		msg += " " + strconv.Quote(err.Text)
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *ExprError) Unwrap() error {
	return err.Err
}

func (err *ExprError) Pos() int {
	return err.Col
}

// exprerr is a shortcut to create an error located at a token.
func exprerr(kind error, tok Token) error {
	return &ExprError{Col: tok.Pos, Text: tok.Text, Err: kind}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error, or 0 if the
	// error has no position.
	Pos() int
}

var _ InputError = (*ExprError)(nil)
