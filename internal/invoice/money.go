package invoice

import (
	"github.com/Rhymond/go-money"
)

// DefaultCurrency is the ISO 4217 code all synthetic amounts are denominated in.
const DefaultCurrency = money.USD

// wholeUnitFormatter formats whole currency units without a fractional part.
//
//nolint:gochecknoglobals // Immutable formatter derived from the currency table.
var wholeUnitFormatter = func() *money.Formatter {
	cur := money.GetCurrency(DefaultCurrency)
	return money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
}()

// FormatAmount renders a whole-unit amount with grouping, e.g. 12345 -> "$12,345".
func FormatAmount(amount int64) string {
	return wholeUnitFormatter.Format(amount)
}

// FormatCents renders an amount given in minor units, e.g. 4523189 -> "$45,231.89".
func FormatCents(cents int64) string {
	return money.New(cents, DefaultCurrency).Display()
}
