package wager

import "errors"

// Money errors.
// All of them are returned wrapped, so callers should test with [errors.Is].
var (
	// ErrInvalidCurrency is returned when a currency code is not a 3-letter code.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrNotANumber is returned when a numeric string cannot be parsed.
	ErrNotANumber = errors.New("not a number")

	// ErrNonFiniteAmount is returned for NaN and infinite float inputs.
	ErrNonFiniteAmount = errors.New("amount is not finite")

	// ErrAmountOverflow is returned when a subunit amount does not fit into int64.
	ErrAmountOverflow = errors.New("amount overflow")

	// ErrCurrencyMismatch is returned by arithmetic between amounts
	// denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrCurrencyComparison is returned by ordering comparisons between
	// amounts denominated in different currencies.
	// There is no implicit conversion.
	ErrCurrencyComparison = errors.New("cannot compare amounts in different currencies")

	// ErrDivisionByZero is returned by [Money.Quo] when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNoPortions is returned by [Money.Split] when the portion sequence
	// is nil or empty.
	ErrNoPortions = errors.New("no portions")

	// ErrPortionsSum is returned by [Money.Split] when the portions do not
	// sum to exactly 100.
	ErrPortionsSum = errors.New("portions must sum to 100")
)

// Odds errors.
var (
	// ErrUnknownFormat is returned when the format selector is not
	// decimal, fractional, or american.
	ErrUnknownFormat = errors.New("unknown odds format")

	// ErrInvalidPrice is returned when a price string cannot be parsed
	// in the requested format.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrNonPositiveOdds is returned when decimal odds are zero, negative,
	// or not finite.
	ErrNonPositiveOdds = errors.New("decimal odds must be greater than zero")

	// ErrOddsOverflow is returned when a price is too large for its derived
	// notations.
	ErrOddsOverflow = errors.New("odds overflow")

	// ErrInvalidFractionalOdds is returned when a price is not of the form
	// "numerator/denominator".
	ErrInvalidFractionalOdds = errors.New("invalid fractional odds")

	// ErrInvalidAmericanOdds is returned when a price is not a signed
	// american quote such as "+125" or "-500".
	ErrInvalidAmericanOdds = errors.New("invalid american odds")
)
