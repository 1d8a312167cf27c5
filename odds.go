package wager

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// evenMoneyAmerican is the american sentinel for decimal odds of exactly
// 1.00: a price that returns the stake with no profit is not backed by a
// real american quote.
const evenMoneyAmerican = "-"

// maxDecimalOdds bounds decimal prices so the hundredths of profit backing
// the fractional and american notations always fit into int64.
const maxDecimalOdds = math.MaxInt64 / 100.0

// Odds type represents a betting price quote.
// A quote is normalized on construction into all three standard notations:
//
//   - decimal: payout multiple per unit staked, as a fixed 2-decimal string
//     (e.g. "3.75");
//   - fractional: profit relative to stake as a fraction reduced to lowest
//     terms (e.g. "11/4");
//   - american: signed profit per 100 staked, "+N" for underdogs and "-N"
//     for favorites, or "-" for decimal odds of exactly 1.00.
//
// All three representations are computed once at construction and are
// mutually consistent to the 2-decimal precision of the decimal form.
// The zero value is not a valid quote; use [ParseOdds] or [NewOdds].
// Odds is designed to be safe for concurrent use by multiple goroutines.
type Odds struct {
	decimal    string // fixed 2-decimal price
	fractional string // "num/den" in lowest terms
	american   string // "+N", "-N", or the even-money sentinel
}

// NewOdds returns a quote constructed from a decimal price.
//
// NewOdds returns an error if the price is not finite, not strictly greater
// than zero, or too large for the fractional and american notations.
func NewOdds(price float64) (Odds, error) {
	o, err := oddsFromDecimal(price)
	if err != nil {
		return Odds{}, fmt.Errorf("constructing odds from %v: %w", price, err)
	}
	return o, nil
}

// ParseOdds converts a price string to a quote.
// The format selector is read case-insensitively from its first character:
// "d" for decimal, "f" for fractional ("num/den"), "a" for american
// ("+125", "-500"). A blank selector defaults to decimal.
//
// ParseOdds returns an error if:
//   - the format selector starts with any other character;
//   - the price does not parse in the selected format;
//   - the resulting decimal price is not strictly greater than zero;
//   - the price is too large for the fractional and american notations.
func ParseOdds(price, format string) (Odds, error) {
	o, err := parseOdds(price, format)
	if err != nil {
		return Odds{}, fmt.Errorf("parsing odds %q: %w", price, err)
	}
	return o, nil
}

func parseOdds(price, format string) (Odds, error) {
	sel := byte('d')
	if format != "" {
		sel = format[0]
		if sel >= 'A' && sel <= 'Z' {
			sel += 'a' - 'A'
		}
	}
	switch sel {
	case 'd':
		v, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
		if err != nil {
			return Odds{}, ErrInvalidPrice
		}
		return oddsFromDecimal(v)
	case 'f':
		return oddsFromFraction(price)
	case 'a':
		return oddsFromAmerican(price)
	}
	return Odds{}, fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
}

// MustParseOdds is like [ParseOdds] but panics if the price cannot be parsed.
// It simplifies safe initialization of global variables holding quotes.
func MustParseOdds(price, format string) Odds {
	o, err := ParseOdds(price, format)
	if err != nil {
		panic(fmt.Sprintf("ParseOdds(%q, %q) failed: %v", price, format, err))
	}
	return o
}

// oddsFromDecimal normalizes a decimal price.
// The stored decimal is the price fixed to 2 decimals, the fraction is
// derived from the 3-decimal-rounded price, and the american quote is
// derived from the 2-decimal value.
func oddsFromDecimal(v float64) (Odds, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Odds{}, ErrNonPositiveOdds
	}
	if v >= maxDecimalOdds {
		return Odds{}, ErrOddsOverflow
	}
	dec := strconv.FormatFloat(v, 'f', 2, 64)
	return Odds{
		decimal:    dec,
		fractional: fractionOf(v),
		american:   americanOf(fixedValue(dec)),
	}, nil
}

// oddsFromFraction normalizes a "num/den" price.
// The stored fraction keeps the input's own numerator and denominator,
// reduced to lowest terms when both are integral, so direct fractional
// input does not lose precision through the 2-decimal value.
func oddsFromFraction(price string) (Odds, error) {
	s := strings.TrimSpace(price)
	i := strings.IndexByte(s, '/')
	if i < 0 {
		// A bare number is not a fraction, even though it parses.
		return Odds{}, ErrInvalidFractionalOdds
	}
	num, err1 := strconv.ParseFloat(s[:i], 64)
	den, err2 := strconv.ParseFloat(s[i+1:], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return Odds{}, ErrInvalidFractionalOdds
	}
	v := num/den + 1
	// ParseFloat accepts "nan" and "inf" parts, so the value needs the same
	// screening as a direct decimal price.
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Odds{}, ErrNonPositiveOdds
	}
	if v >= maxDecimalOdds {
		return Odds{}, ErrOddsOverflow
	}
	dec := strconv.FormatFloat(v, 'f', 2, 64)
	return Odds{
		decimal:    dec,
		fractional: reducedFraction(s[:i], s[i+1:], s),
		american:   americanOf(fixedValue(dec)),
	}, nil
}

// oddsFromAmerican normalizes a signed american quote.
// The fraction and the stored american quote are both re-derived from the
// 2-decimal-rounded value, not from the original input, so exotic forms like
// "+1.5e2" are normalized and "+0" maps to the even-money sentinel; the
// round trip may lose precision relative to a direct fractional input.
func oddsFromAmerican(price string) (Odds, error) {
	s := strings.TrimSpace(price)
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return Odds{}, ErrInvalidAmericanOdds
	}
	n, err := strconv.ParseFloat(s[1:], 64)
	if err != nil {
		return Odds{}, ErrInvalidAmericanOdds
	}
	var v float64
	if s[0] == '+' {
		v = 1 + n/100
	} else {
		v = 1 - 100/(-n)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Odds{}, ErrInvalidAmericanOdds
	}
	if v >= maxDecimalOdds {
		return Odds{}, ErrOddsOverflow
	}
	dec := strconv.FormatFloat(v, 'f', 2, 64)
	return Odds{
		decimal:    dec,
		fractional: fractionOf(fixedValue(dec)),
		american:   americanOf(fixedValue(dec)),
	}, nil
}

// fixedValue parses a fixed 2-decimal string back to a float, so every
// derivation starts from the same rounded value the Decimal accessor reports.
func fixedValue(dec string) float64 {
	v, _ := strconv.ParseFloat(dec, 64)
	return v
}

// fractionOf derives the profit fraction from a decimal price:
// the 3-decimal-rounded price is converted to hundredths of profit over a
// denominator of 100, then reduced to lowest terms.
func fractionOf(v float64) string {
	v3 := math.Round(v*1000) / 1000
	num := int64(math.Round(v3*100)) - 100
	den := int64(100)
	g := gcd(num, den)
	return strconv.FormatInt(num/g, 10) + "/" + strconv.FormatInt(den/g, 10)
}

// americanOf derives the american quote from a 2-decimal price.
func americanOf(v float64) string {
	switch {
	case v == 1:
		return evenMoneyAmerican
	case v < 2:
		return strconv.FormatInt(int64(math.Round(-100/(v-1))), 10)
	}
	return "+" + strconv.FormatInt(int64(math.Round((v-1)*100)), 10)
}

// reducedFraction reduces num/den to lowest terms when both parts are
// integral; otherwise the raw input is kept verbatim.
func reducedFraction(numS, denS, raw string) string {
	num, err1 := strconv.ParseInt(numS, 10, 64)
	den, err2 := strconv.ParseInt(denS, 10, 64)
	if err1 != nil || err2 != nil || den == 0 {
		return raw
	}
	g := gcd(num, den)
	return strconv.FormatInt(num/g, 10) + "/" + strconv.FormatInt(den/g, 10)
}

// gcd returns the greatest common divisor of |a| and |b| by the iterative
// Euclidean algorithm. gcd(0, b) is |b|.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// Decimal returns the price in decimal notation as a fixed 2-decimal string.
func (o Odds) Decimal() string {
	return o.decimal
}

// Fractional returns the price in fractional notation, reduced to lowest
// terms, e.g. "11/4".
func (o Odds) Fractional() string {
	return o.fractional
}

// American returns the price in american notation, e.g. "+275" or "-500".
// For decimal odds of exactly 1.00 it returns the "-" sentinel.
func (o Odds) American() string {
	return o.american
}

// ImpliedProbability returns the probability implied by the price,
// computed as 1 over the decimal value.
func (o Odds) ImpliedProbability() float64 {
	return 1 / fixedValue(o.decimal)
}

// String implements the [fmt.Stringer] interface and returns the decimal
// form of the quote.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (o Odds) String() string {
	return o.decimal
}

// MarshalJSON implements the [json.Marshaler] interface and emits all three
// notations.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (o Odds) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Decimal    string `json:"decimal"`
		Fractional string `json:"fractional"`
		American   string `json:"american"`
	}{o.decimal, o.fractional, o.american})
}
