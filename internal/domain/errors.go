package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSourceMissing = errors.New("source does not exist")
	ErrSourceRead    = errors.New("cannot read source")
	ErrSourceClose   = errors.New("cannot close source")

	ErrRecordParse        = errors.New("cannot parse record")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInsufficientFields = errors.New("insufficient fields")
)

// ParseError describes why a line did not yield a Transaction.
// Kind is one of ErrInvalidAmount, ErrInvalidDate or ErrInsufficientFields.
type ParseError struct {
	Kind error
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s in line %q: %v", e.Kind, e.Line, e.Err)
	}
	return fmt.Sprintf("%s in line %q", e.Kind, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports a match against the kind sentinel and against ErrRecordParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrRecordParse || target == e.Kind
}
