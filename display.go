package wager

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// displayLocale is the locale used by [Money.Display].
var displayLocale = language.AmericanEnglish

// Display formats the amount for end users: currency symbol, grouping
// separators, and exactly 2 decimal places, e.g. "$4,500.00".
// Formatting is delegated to the golang.org/x/text locale facilities using
// the en-US locale; see [Money.DisplayIn] for other locales.
func (m Money) Display() string {
	return m.DisplayIn(displayLocale, number.MinFractionDigits(2), number.MaxFractionDigits(2))
}

// DisplayIn formats the amount in the given locale with caller-supplied
// number-formatting options. It is a thin pass-through to the
// golang.org/x/text message printer: no validation is performed beyond what
// the printer itself performs.
//
// The currency symbol is looked up from the ISO 4217 registry; currencies
// outside the registry are prefixed with their raw code instead.
func (m Money) DisplayIn(tag language.Tag, opts ...number.Option) string {
	p := message.NewPrinter(tag)
	major, _ := m.MajorUnits().Float64()
	unit, err := currency.ParseISO(m.Curr().Code())
	if err != nil {
		return p.Sprintf("%v %v", m.Curr().Code(), number.Decimal(major, opts...))
	}
	return p.Sprintf("%v%v", currency.Symbol(unit), number.Decimal(major, opts...))
}
