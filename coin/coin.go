package coin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/iov-one/ledger/errors"
)

// IsCC is the RegExp to ensure valid currency codes.
var IsCC = regexp.MustCompile(`^[A-Z]{3,4}$`).MatchString

const (
	// MaxInt is the largest whole value we accept.
	MaxInt int64 = 999999999999999 // 10^15-1
	// MinInt is the lowest whole value we accept.
	MinInt = -MaxInt

	// FracUnit is the smallest numbers we divide by.
	FracUnit int64 = 1000000000 // fractional units = 10^9
	// MaxFrac is the highest possible fractional value.
	MaxFrac = FracUnit - 1
	// MinFrac is the lowest possible fractional value.
	MinFrac = -MaxFrac
)

// Coin is an amount of a given currency. The currency is identified by the
// ticker. The amount is split into the whole part and the fractional part,
// expressed in 10^-9 units of the whole.
type Coin struct {
	// Whole coins, -10^15 < whole < 10^15
	Whole int64 `json:"whole,omitempty"`
	// Fractional part of a coin in 10^-9 units of the whole.
	Fractional int64 `json:"fractional,omitempty"`
	// Ticker is 3-4 upper-case letters identifying the currency.
	Ticker string `json:"ticker,omitempty"`
}

// NewCoin creates a new coin object.
func NewCoin(whole int64, fractional int64, ticker string) Coin {
	return Coin{
		Whole:      whole,
		Fractional: fractional,
		Ticker:     ticker,
	}
}

// NewCoinp returns a pointer to a new coin.
func NewCoinp(whole, fractional int64, ticker string) *Coin {
	c := NewCoin(whole, fractional, ticker)
	return &c
}

// ID returns a coin ticker name.
func (c Coin) ID() string {
	return c.Ticker
}

// Marshal implements the Persistent contract.
func (c *Coin) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

// Unmarshal implements the Persistent contract.
func (c *Coin) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

// Add combines two coins.
// Returns error if they are of different
// currencies, or if the combination would cause
// an overflow.
func (c Coin) Add(o Coin) (Coin, error) {
	// If any of the coins represents no value and does not have a ticker
	// set then it has no influence on the addition result.
	if c.Ticker == "" && c.IsZero() {
		return o, nil
	}
	if o.Ticker == "" && o.IsZero() {
		return c, nil
	}

	if !c.SameType(o) {
		err := errors.Wrapf(errors.ErrCurrency, "adding %s to %s", c.Ticker, o.Ticker)
		return Coin{}, err
	}

	c.Whole += o.Whole
	c.Fractional += o.Fractional
	return c.normalize()
}

// Negative returns the opposite coins value.
//   c.Add(c.Negative()).IsZero() == true
func (c Coin) Negative() Coin {
	return Coin{
		Ticker:     c.Ticker,
		Whole:      -1 * c.Whole,
		Fractional: -1 * c.Fractional,
	}
}

// Subtract given amount.
func (c Coin) Subtract(amount Coin) (Coin, error) {
	return c.Add(amount.Negative())
}

// Compare will check values of two coins, without
// inspecting the currency code. It is up to the caller
// to determine if they want to check this.
// It also assumes they were already normalized.
//
// Returns 1 if c is larger, -1 if o is larger, 0 if equal.
func (c Coin) Compare(o Coin) int {
	if c.Whole > o.Whole {
		return 1
	}
	if c.Whole < o.Whole {
		return -1
	}
	// same integer, compare fractional
	if c.Fractional > o.Fractional {
		return 1
	}
	if c.Fractional < o.Fractional {
		return -1
	}
	// actually the same...
	return 0
}

// Equals returns true if all fields are identical.
func (c Coin) Equals(o Coin) bool {
	return c.Ticker == o.Ticker &&
		c.Whole == o.Whole &&
		c.Fractional == o.Fractional
}

// IsEmpty returns true on null or zero amount.
func IsEmpty(c *Coin) bool {
	return c == nil || c.IsZero()
}

// IsZero returns true if amounts are 0.
func (c Coin) IsZero() bool {
	return c.Whole == 0 && c.Fractional == 0
}

// IsPositive returns true if the value is greater than 0.
func (c Coin) IsPositive() bool {
	return c.Whole > 0 ||
		(c.Whole == 0 && c.Fractional > 0)
}

// IsNonNegative returns true if the value is 0 or higher.
func (c Coin) IsNonNegative() bool {
	return c.Whole >= 0 && c.Fractional >= 0
}

// IsWhole returns true if there is no fractional part.
func (c Coin) IsWhole() bool {
	return c.Fractional == 0
}

// IsGTE returns true if c is same type and at least
// as large as o.
// It assumes they were already normalized.
func (c Coin) IsGTE(o Coin) bool {
	if !c.SameType(o) || c.Whole < o.Whole {
		return false
	}
	if (c.Whole == o.Whole) &&
		(c.Fractional < o.Fractional) {
		return false
	}
	return true
}

// SameType returns true if they have the same currency.
func (c Coin) SameType(o Coin) bool {
	return c.Ticker == o.Ticker
}

// Clone provides an independent copy of a coin pointer.
func (c *Coin) Clone() *Coin {
	if c == nil {
		return nil
	}
	return &Coin{
		Ticker:     c.Ticker,
		Whole:      c.Whole,
		Fractional: c.Fractional,
	}
}

// Validate ensures that the coin is in the valid range
// and valid currency code. It accepts negative values,
// so you may want to make other checks in your business
// logic.
func (c Coin) Validate() error {
	if !IsCC(c.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", c.Ticker)
	}
	if c.Whole < MinInt || c.Whole > MaxInt {
		return errors.Wrap(errors.ErrOverflow, "whole")
	}
	if c.Fractional < MinFrac || c.Fractional > MaxFrac {
		return errors.Wrap(errors.ErrOverflow, "fractional")
	}
	// make sure signs match
	if c.Whole != 0 && c.Fractional != 0 &&
		((c.Whole > 0) != (c.Fractional > 0)) {
		return errors.Wrap(errors.ErrState, "mismatched sign")
	}
	return nil
}

// normalize will adjust the fractional parts to
// correspond to the range and the integer parts.
//
// If the normalized coin is outside of the range,
// returns an error.
func (c Coin) normalize() (Coin, error) {
	// keep fraction in range
	for c.Fractional < MinFrac {
		c.Whole--
		c.Fractional += FracUnit
	}
	for c.Fractional > MaxFrac {
		c.Whole++
		c.Fractional -= FracUnit
	}

	// make sure the signs correspond
	if (c.Whole > 0) && (c.Fractional < 0) {
		c.Whole--
		c.Fractional += FracUnit
	} else if (c.Whole < 0) && (c.Fractional > 0) {
		c.Whole++
		c.Fractional -= FracUnit
	}

	// return error if integer is out of range
	if c.Whole < MinInt || c.Whole > MaxInt {
		return Coin{}, errors.Wrap(errors.ErrOverflow, "whole")
	}
	return c, nil
}

// String provides a human readable representation of the coin. This function
// is meant mostly for testing and debugging. For a valid coin the result is a
// valid human readable format that can be parsed back. For an invalid coin
// (ie. without a ticker) a readable representation is returned but it cannot
// be parsed back using the human readable format parser.
func (c Coin) String() string {
	var b bytes.Buffer

	if n, err := c.normalize(); err == nil {
		c = n
	}

	io.WriteString(&b, strconv.FormatInt(c.Whole, 10))

	if f := c.Fractional; f != 0 {
		if f < 0 {
			f = -f
		}
		s := strconv.FormatInt(f, 10)
		// Add leading zeros to convert it to a floating point number.
		s = "." + strings.Repeat("0", 9-len(s)) + s
		// Remove trailing zeros as they provide no information.
		s = strings.TrimRight(s, "0")

		io.WriteString(&b, s)
	}

	if c.Ticker != "" {
		io.WriteString(&b, " "+c.Ticker)
	}

	return b.String()
}

// ParseHumanFormat parses a human readable coin representation. Accepted
// format is a string:
//   "<whole>[.<fractional>] <ticker>"
func ParseHumanFormat(h string) (Coin, error) {
	var c Coin
	results := humanCoinFormatRx.FindAllStringSubmatch(h, -1)
	if len(results) != 1 {
		return c, fmt.Errorf("invalid format")
	}

	result := results[0][1:]

	whole, err := strconv.ParseInt(result[1], 10, 64)
	if err != nil {
		return c, fmt.Errorf("invalid whole value: %s", err)
	}

	var fract int64
	if result[2] != "" {
		val, err := strconv.ParseFloat(result[2], 64)
		if err != nil {
			return c, fmt.Errorf("invalid fractional value: %s", err)
		}
		// Max float64 value is around 1.7e+308 so I do not think we
		// should bother with the overflow issue.
		fract = int64(val * float64(FracUnit))
	}

	ticker := result[3]

	if result[0] == "-" {
		whole = -whole
		fract = -fract
	}

	return Coin{
		Ticker:     ticker,
		Whole:      whole,
		Fractional: fract,
	}, nil
}

var humanCoinFormatRx = regexp.MustCompile(`^(\-?)\s*(\d+)(\.\d+)?\s*([A-Z]{3,4})$`)
