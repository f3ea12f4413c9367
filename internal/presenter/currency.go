package presenter

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"transaction-merger/internal/domain"
)

// CurrencyFormatter renders amounts as localized currency values.
type CurrencyFormatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewCurrencyFormatter builds a formatter for an ISO 4217 code and a BCP 47 locale.
func NewCurrencyFormatter(code, locale string) (*CurrencyFormatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &CurrencyFormatter{unit: unit, printer: message.NewPrinter(tag)}, nil
}

// Format returns amount with the currency symbol for the configured locale.
func (f *CurrencyFormatter) Format(amount float64) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount)))
}

// SummaryLines returns the final report lines in output order.
func (f *CurrencyFormatter) SummaryLines(s domain.Summary) []string {
	return []string{
		fmt.Sprintf("%d transactions imported", s.Count),
		"total value: " + f.Format(s.Total),
		"max value: " + f.Format(s.Max),
	}
}
