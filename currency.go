package wager

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Currency type represents a currency in the global financial system.
// It holds a normalized 3-letter code such as "USD" or "GBP".
//
// Unlike ISO 4217 registries, the set of codes is open: any 3-letter code is
// accepted after trimming and uppercasing, so private bookmaker currencies
// and test codes work without a lookup table.
// All currencies are treated as having 2-digit minor units (subunits).
type Currency string

// DefaultCurrency is the currency assumed when a code is absent or blank.
var DefaultCurrency = Currency("USD")

// ParseCurrency converts a string to a currency.
// The input is trimmed and uppercased, so "usd", " USD " and "USD" are
// equivalent. A blank input resolves to [DefaultCurrency].
//
// ParseCurrency returns an error if the normalized input is not exactly
// 3 ASCII letters.
func ParseCurrency(code string) (Currency, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultCurrency, nil
	}
	code = strings.ToUpper(code)
	if len(code) != 3 {
		return "", fmt.Errorf("parsing %q: %w", code, ErrInvalidCurrency)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return "", fmt.Errorf("parsing %q: %w", code, ErrInvalidCurrency)
		}
	}
	return Currency(code), nil
}

// MustParseCurrency is like [ParseCurrency] but panics if the string cannot
// be parsed. It simplifies safe initialization of global variables holding
// currencies.
func MustParseCurrency(code string) Currency {
	c, err := ParseCurrency(code)
	if err != nil {
		panic(fmt.Sprintf("ParseCurrency(%q) failed: %v", code, err))
	}
	return c
}

// Code returns the 3-letter code of the currency.
func (c Currency) Code() string {
	return string(c)
}

// String method implements the [fmt.Stringer] interface and returns
// the 3-letter code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return string(c)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurrency].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurrency(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", DefaultCurrency, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurrency].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurrency(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", DefaultCurrency, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurrency(value)
	case []byte:
		*c, err = ParseCurrency(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values", DefaultCurrency)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, DefaultCurrency, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}
