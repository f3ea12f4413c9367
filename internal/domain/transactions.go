package domain

import (
	"fmt"
	"time"
)

// DateLayout is the fixed day-month-year layout of the date field.
const DateLayout = "02-01-2006"

// Transaction is one purchase read from a source line.
// Values are never mutated after ParseTransaction builds them.
type Transaction struct {
	Identifier string    `json:"identifier"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
}

func (t Transaction) String() string {
	return fmt.Sprintf("Transaction{identifier=%s, amount=%.2f, date=%s}", t.Identifier, t.Amount, t.Date.Format(DateLayout))
}
