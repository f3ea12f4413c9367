package domain

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	fieldDelimiter = ","
	fieldCount     = 3
)

// ParseTransaction converts one delimited line into a Transaction.
// Fields are positional: identifier, amount, date. Extra fields are ignored.
// The amount must be a finite number.
// Parsing is all-or-nothing; on failure a *ParseError is returned.
func ParseTransaction(line string) (Transaction, error) {
	values := splitFields(line)
	if len(values) < fieldCount {
		return Transaction{}, &ParseError{Kind: ErrInsufficientFields, Line: line}
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(values[1]), 64)
	if err != nil {
		return Transaction{}, &ParseError{Kind: ErrInvalidAmount, Line: line, Err: err}
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Transaction{}, &ParseError{Kind: ErrInvalidAmount, Line: line, Err: errors.New("amount is not a finite number")}
	}

	date, err := time.Parse(DateLayout, values[2])
	if err != nil {
		return Transaction{}, &ParseError{Kind: ErrInvalidDate, Line: line, Err: err}
	}

	return Transaction{
		Identifier: values[0],
		Amount:     amount,
		Date:       date,
	}, nil
}

// splitFields splits on the delimiter and drops trailing empty fields,
// so "Bob,45.50," has two fields, not three.
func splitFields(line string) []string {
	values := strings.Split(line, fieldDelimiter)
	for len(values) > 0 && values[len(values)-1] == "" {
		values = values[:len(values)-1]
	}
	return values
}
