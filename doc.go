/*
Package wager implements immutable value types for betting-style financial
computation: monetary amounts tied to a currency, and betting price quotes
expressible in decimal, fractional, and american notation.

# Representation

The package consists of three main types: Money, Currency, and Odds.

A [Money] value holds a signed integer number of currency subunits (cents)
together with a [Currency]. The subunit amount is always integral: every
constructor and operation rounds fractional results to the nearest subunit,
with halves rounded away from zero. Fractional factors, divisors, and
percentages are expressed with the [decimal] package's decimal type.

An [Odds] value is a betting price normalized at construction into all three
standard notations, mutually consistent to the 2-decimal precision of the
decimal form.

# Immutability

All three types are pure values: every operation returns a new value and the
receiver is never modified, so values are safe for concurrent use by
multiple goroutines without locking.

# Operations

Money supports arithmetic between same-currency amounts (Add, Sub), scaling
(Mul, Quo, Percent), proportional allocation across percentage portions
(Split), comparison (Equal, Cmp, Less, Greater and friends), and locale-aware
display formatting (Display, DisplayIn) delegated to golang.org/x/text.

Odds supports construction from any of the three notations (ParseOdds,
NewOdds) and conversion between them via the accessors Decimal, Fractional,
and American. Re-parsing a quote from its own decimal representation is
idempotent; round trips through the american notation may lose precision
relative to a direct fractional input, which is accepted behavior.

# Errors

All failures are synchronous, sentinel-based errors carrying a descriptive
message with the offending value interpolated; callers branch on the kind
with [errors.Is]. Every validation failure aborts the operation immediately,
so partially constructed values never escape. Arithmetic between different
currencies fails with [ErrCurrencyMismatch], ordering across currencies with
[ErrCurrencyComparison], and there is no implicit conversion of any kind.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package wager
