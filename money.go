package wager

import (
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	oneHundred = decimal.MustParse("100")
	oneHalf    = decimal.MustParse("0.5")
)

// Money type represents a monetary amount.
// It stores the amount as a signed number of currency subunits (e.g. cents),
// which is always integral: every constructor and operation rounds fractional
// results to the nearest subunit, with halves rounded away from zero.
// Its zero value corresponds to "USD 0.00".
// Money is designed to be safe for concurrent use by multiple goroutines.
type Money struct {
	curr     Currency // 3-letter currency code
	subunits int64    // amount in currency subunits
}

// newMoney creates a new amount without validation.
// Use it only if you are absolutely sure that the arguments are valid.
func newMoney(c Currency, subunits int64) Money {
	if c == "" {
		c = DefaultCurrency
	}
	return Money{curr: c, subunits: subunits}
}

// NewMoney returns an amount of the given number of subunits.
// A blank currency code resolves to [DefaultCurrency].
//
// NewMoney returns an error if the currency code is not valid.
func NewMoney(curr string, subunits int64) (Money, error) {
	c, err := ParseCurrency(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	return newMoney(c, subunits), nil
}

// NewMoneyFromSubunits converts a float, representing a possibly fractional
// number of subunits, to an amount.
// The value is rounded to the nearest subunit, with halves rounded away
// from zero.
//
// NewMoneyFromSubunits returns an error if:
//   - the currency code is not valid;
//   - the float is NaN or infinite;
//   - the rounded value does not fit into int64.
func NewMoneyFromSubunits(curr string, subunits float64) (Money, error) {
	c, err := ParseCurrency(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	if math.IsNaN(subunits) {
		return Money{}, fmt.Errorf("converting %v subunits: %w", subunits, ErrNotANumber)
	}
	if math.IsInf(subunits, 0) {
		return Money{}, fmt.Errorf("converting %v subunits: %w", subunits, ErrNonFiniteAmount)
	}
	r := math.Round(subunits)
	if r < math.MinInt64 || r >= math.MaxInt64 {
		return Money{}, fmt.Errorf("converting %v subunits: %w", subunits, ErrAmountOverflow)
	}
	return newMoney(c, int64(r)), nil
}

// ParseMoney converts currency and decimal strings to an amount.
// The amount string is a major-unit value (e.g. dollars and cents, "19.99"),
// which is converted to subunits by multiplying by 100 and rounding to the
// nearest subunit, with halves rounded away from zero.
// This is the constructor for the common "user typed dollars and cents" case.
//
// ParseMoney returns an error if:
//   - the currency code is not valid;
//   - the amount string is not a decimal number;
//   - the resulting subunit amount does not fit into int64.
func ParseMoney(curr, amount string) (Money, error) {
	c, err := ParseCurrency(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.Parse(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", amount, ErrNotANumber)
	}
	scaled, err := d.Mul(oneHundred)
	if err != nil {
		return Money{}, fmt.Errorf("converting amount %q: %w", amount, ErrAmountOverflow)
	}
	subunits, err := roundedSubunits(scaled)
	if err != nil {
		return Money{}, fmt.Errorf("converting amount %q: %w", amount, err)
	}
	return newMoney(c, subunits), nil
}

// MustParseMoney is like [ParseMoney] but panics if any of the strings cannot
// be parsed. It simplifies safe initialization of global variables holding
// amounts.
func MustParseMoney(curr, amount string) Money {
	m, err := ParseMoney(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %q) failed: %v", curr, amount, err))
	}
	return m
}

// NewMoneyFromFloat64 converts a float, representing a major-unit value,
// to an amount. See also constructor [ParseMoney].
//
// NewMoneyFromFloat64 returns an error if:
//   - the currency code is not valid;
//   - the float is NaN or infinite;
//   - the resulting subunit amount does not fit into int64.
func NewMoneyFromFloat64(curr string, amount float64) (Money, error) {
	if math.IsNaN(amount) {
		return Money{}, fmt.Errorf("converting float %v: %w", amount, ErrNotANumber)
	}
	if math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf("converting float %v: %w", amount, ErrNonFiniteAmount)
	}
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	m, err := ParseMoney(curr, s)
	if err != nil {
		return Money{}, fmt.Errorf("converting float: %w", err)
	}
	return m, nil
}

// roundedSubunits rounds d to the nearest integer, with halves rounded away
// from zero, and returns the result as an int64 subunit count.
func roundedSubunits(d decimal.Decimal) (int64, error) {
	t := d.Trunc(0)
	frac, err := d.Sub(t)
	if err != nil {
		return 0, err
	}
	if frac.Abs().Cmp(oneHalf) >= 0 {
		t, err = t.Add(t.One().CopySign(d))
		if err != nil {
			return 0, err
		}
	}
	whole, _, ok := t.Int64(0)
	if !ok {
		return 0, ErrAmountOverflow
	}
	return whole, nil
}

// Subunits returns the amount as a signed number of currency subunits.
func (m Money) Subunits() int64 {
	return m.subunits
}

// MajorUnits returns the amount in major units of the currency
// (e.g. dollars), as a decimal with 2 digits after the decimal point.
func (m Money) MajorUnits() decimal.Decimal {
	return decimal.MustNew(m.subunits, 2)
}

// Curr returns the currency of the amount.
func (m Money) Curr() Currency {
	if m.curr == "" {
		return DefaultCurrency
	}
	return m.curr
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	switch {
	case m.subunits < 0:
		return -1
	case m.subunits > 0:
		return 1
	}
	return 0
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.subunits == 0
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.subunits < 0
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.subunits > 0
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	if m.subunits < 0 {
		return m.Neg()
	}
	return newMoney(m.curr, m.subunits)
}

// Neg returns an amount with the opposite sign.
func (m Money) Neg() Money {
	return newMoney(m.curr, -m.subunits)
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Money.Curr].
func (m Money) SameCurr(b Money) bool {
	return m.Curr() == b.Curr()
}

// Add returns the sum of amounts m and b.
//
// Add returns an error if:
//   - amounts are denominated in different currencies;
//   - the result does not fit into int64 subunits.
func (m Money) Add(b Money) (Money, error) {
	r, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return r, nil
}

func (m Money) add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	sum := m.subunits + b.subunits
	if (b.subunits > 0 && sum < m.subunits) || (b.subunits < 0 && sum > m.subunits) {
		return Money{}, ErrAmountOverflow
	}
	return newMoney(m.Curr(), sum), nil
}

// Sub returns the difference between amounts m and b.
//
// Sub returns an error if:
//   - amounts are denominated in different currencies;
//   - the result does not fit into int64 subunits.
func (m Money) Sub(b Money) (Money, error) {
	r, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return r, nil
}

func (m Money) sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	diff := m.subunits - b.subunits
	if (b.subunits < 0 && diff < m.subunits) || (b.subunits > 0 && diff > m.subunits) {
		return Money{}, ErrAmountOverflow
	}
	return newMoney(m.Curr(), diff), nil
}

// Mul returns the product of amount m and factor e, rounded to the nearest
// subunit with halves rounded away from zero.
// A zero factor is valid and returns a zero amount.
//
// Mul returns an error if the result does not fit into int64 subunits.
func (m Money) Mul(e decimal.Decimal) (Money, error) {
	r, err := m.mul(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return r, nil
}

func (m Money) mul(e decimal.Decimal) (Money, error) {
	d := decimal.MustNew(m.subunits, 0)
	prod, err := d.Mul(e)
	if err != nil {
		return Money{}, err
	}
	subunits, err := roundedSubunits(prod)
	if err != nil {
		return Money{}, err
	}
	return newMoney(m.Curr(), subunits), nil
}

// Quo returns the quotient of amount m and divisor e, rounded to the nearest
// subunit with halves rounded away from zero.
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the result does not fit into int64 subunits.
func (m Money) Quo(e decimal.Decimal) (Money, error) {
	r, err := m.quo(e)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return r, nil
}

func (m Money) quo(e decimal.Decimal) (Money, error) {
	if e.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	d := decimal.MustNew(m.subunits, 0)
	q, err := d.Quo(e)
	if err != nil {
		return Money{}, err
	}
	subunits, err := roundedSubunits(q)
	if err != nil {
		return Money{}, err
	}
	return newMoney(m.Curr(), subunits), nil
}

// Percent returns the given percentage of the amount, computed as
// m * p / 100 and rounded to the nearest subunit with halves rounded away
// from zero. Fractional percentages are supported.
func (m Money) Percent(p decimal.Decimal) (Money, error) {
	r, err := m.percent(p)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v%% of %v]: %w", p, m, err)
	}
	return r, nil
}

func (m Money) percent(p decimal.Decimal) (Money, error) {
	d := decimal.MustNew(m.subunits, 0)
	prod, err := d.Mul(p)
	if err != nil {
		return Money{}, err
	}
	q, err := prod.Quo(oneHundred)
	if err != nil {
		return Money{}, err
	}
	subunits, err := roundedSubunits(q)
	if err != nil {
		return Money{}, err
	}
	return newMoney(m.Curr(), subunits), nil
}

// Split allocates the amount across the given percentage portions and
// returns one amount per portion, in order.
// The portions must sum to exactly 100; the sum is checked in decimal
// arithmetic on the raw values, with no floating-point tolerance.
//
// Each share is computed as m * portion / 100 rounded to the nearest subunit,
// against a running balance that starts at the full amount. A share that
// would exceed the remaining balance is clamped to it, so the allocations
// always sum to the original amount: rounding slack is absorbed by whichever
// portion triggers the clamp, and any portions after it receive zero.
// The clamp is strictly order-dependent and no slack is redistributed.
//
// Split returns an error if:
//   - the portion sequence is nil or empty;
//   - the portions do not sum to exactly 100.
func (m Money) Split(portions []decimal.Decimal) ([]Money, error) {
	res, err := m.split(portions)
	if err != nil {
		return nil, fmt.Errorf("splitting %v by %v: %w", m, portions, err)
	}
	return res, nil
}

func (m Money) split(portions []decimal.Decimal) ([]Money, error) {
	if len(portions) == 0 {
		return nil, ErrNoPortions
	}
	sum := decimal.MustNew(0, 0)
	var err error
	for _, p := range portions {
		sum, err = sum.Add(p)
		if err != nil {
			return nil, err
		}
	}
	if sum.Cmp(oneHundred) != 0 {
		return nil, fmt.Errorf("%w, got %v", ErrPortionsSum, sum)
	}

	total := decimal.MustNew(m.subunits, 0)
	available := m.subunits
	res := make([]Money, len(portions))
	for i, p := range portions {
		prod, err := total.Mul(p)
		if err != nil {
			return nil, err
		}
		q, err := prod.Quo(oneHundred)
		if err != nil {
			return nil, err
		}
		share, err := roundedSubunits(q)
		if err != nil {
			return nil, err
		}
		if share > available {
			share = available
		}
		available -= share
		res[i] = newMoney(m.Curr(), share)
	}
	return res, nil
}

// Equal reports whether amounts have the same displayed value and currency.
// Amounts in different currencies are unequal, never an error.
// See also method [Money.Cmp].
func (m Money) Equal(b Money) bool {
	return m.SameCurr(b) && m.subunits == b.subunits
}

// Cmp compares amounts and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (m Money) Cmp(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyComparison)
	}
	switch {
	case m.subunits < b.subunits:
		return -1, nil
	case m.subunits > b.subunits:
		return 1, nil
	}
	return 0, nil
}

// Less reports whether m is less than b.
//
// Less returns an error if amounts are denominated in different currencies.
func (m Money) Less(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// LessOrEqual reports whether m is less than or equal to b.
//
// LessOrEqual returns an error if amounts are denominated in different currencies.
func (m Money) LessOrEqual(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// Greater reports whether m is greater than b.
//
// Greater returns an error if amounts are denominated in different currencies.
func (m Money) Greater(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// GreaterOrEqual reports whether m is greater than or equal to b.
//
// GreaterOrEqual returns an error if amounts are denominated in different currencies.
func (m Money) GreaterOrEqual(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// Min returns the smaller amount.
//
// Min returns an error if amounts are denominated in different currencies.
func (m Money) Min(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c <= 0: // m <= b
		return m, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if amounts are denominated in different currencies.
func (m Money) Max(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c >= 0: // m >= b
		return m, nil
	default:
		return b, nil
	}
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, e.g. "USD 19.99".
// For locale-aware formatting see methods [Money.Display] and [Money.DisplayIn].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.Curr().Code() + " " + m.MajorUnits().String()
}
