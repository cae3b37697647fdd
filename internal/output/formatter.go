// Package output renders a TaxResult for the caller. Formatters are pluggable
// by name so the CLI can route a --format flag straight here.
package output

import (
	"github.com/shopspring/decimal"

	"github.com/visatax/visatax/internal/domain"
)

// Formatter renders one TaxResult.
type Formatter interface {
	Name() string
	Format(result *domain.TaxResult) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// GetFormatterByName returns the formatter registered under name, or nil.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}

// FormatCurrency renders a dollar amount for display.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatPercent renders a rate (0.062 -> "6.20%").
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
