package coin

import (
	"sort"
	"strings"

	"github.com/iov-one/ledger/errors"
)

// Coins is a set of coins. It is sorted by currency code and contains at
// most one coin per currency. All coins in the set are non-zero.
type Coins []*Coin

// CombineCoins creates a Coins containing all given coins.
// It will sort them and combine duplicates to create a valid
// canonical form.
func CombineCoins(cs ...Coin) (Coins, error) {
	// Maybe more efficient...
	s := Coins{}
	for _, c := range cs {
		err := s.Add(c)
		if err != nil {
			return nil, err
		}
	}
	return s, s.Validate()
}

// Clone returns a copy that can be safely modified.
func (cs Coins) Clone() Coins {
	res := make(Coins, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}

// Add modifies the set, to increase the holdings by c.
func (cs *Coins) Add(c Coin) error {
	// We ignore zero values coins.
	if c.IsZero() {
		return nil
	}

	has, i := cs.findCoin(c.Ticker)
	// add to existing coin
	if has != nil {
		sum, err := has.Add(c)
		if err != nil {
			return err
		}
		if sum.IsZero() {
			cs.remove(i)
			return nil
		}
		*has = sum
		return nil
	}

	// special case append to end
	if i == len(*cs) {
		*cs = append(*cs, &c)
		return nil
	}

	// insert in beginning or middle (with one alloc)
	res := append(*cs, nil)
	copy(res[i+1:], res[i:])
	res[i] = &c
	*cs = res
	return nil
}

// Subtract modifies the set, to decrease the holdings by c.
// The resulting set may contain negative amounts.
func (cs *Coins) Subtract(c Coin) error {
	return cs.Add(c.Negative())
}

// remove the coin at the given index.
func (cs *Coins) remove(i int) {
	res := *cs
	res = append(res[:i], res[i+1:]...)
	*cs = res
}

// Contains returns true if there is at least that much
// coin in the set. If it returns true, then:
//   cs.Remove(c) should work without error
func (cs Coins) Contains(c Coin) bool {
	has, _ := cs.findCoin(c.Ticker)
	if has == nil {
		return false
	}
	return has.IsGTE(c)
}

// findCoin returns a pointer to the coin with the given currency code,
// along with the index where it was found, or nil and the index where it
// would be inserted.
func (cs Coins) findCoin(ticker string) (*Coin, int) {
	i := sort.Search(len(cs), func(n int) bool {
		return cs[n].Ticker >= ticker
	})
	if i == len(cs) {
		return nil, i
	}
	if c := cs[i]; c.Ticker == ticker {
		return c, i
	}
	return nil, i
}

// Coin returns a copy of the coin with this currency code in the set,
// or a zero value coin of this currency if none is present.
func (cs Coins) Coin(ticker string) Coin {
	has, _ := cs.findCoin(ticker)
	if has == nil {
		return Coin{Ticker: ticker}
	}
	return *has
}

// IsEmpty returns true on empty set.
func (cs Coins) IsEmpty() bool {
	return len(cs) == 0
}

// IsPositive returns true there is at least one coin
// and all coins are positive.
func (cs Coins) IsPositive() bool {
	return !cs.IsEmpty() && cs.IsNonNegative()
}

// IsNonNegative returns true if all coins are positive,
// but also accepts an empty set.
func (cs Coins) IsNonNegative() bool {
	for _, c := range cs {
		if !c.IsPositive() {
			return false
		}
	}
	return true
}

// Equals returns true if both sets contain the same coins.
func (cs Coins) Equals(o Coins) bool {
	if len(cs) != len(o) {
		return false
	}
	for i := range cs {
		if !cs[i].Equals(*o[i]) {
			return false
		}
	}
	return true
}

// Count returns the number of unique currencies in the set.
func (cs Coins) Count() int {
	return len(cs)
}

// Validate requires that all coins are in alphabetical
// order and that each coin is valid and non-zero.
func (cs Coins) Validate() error {
	last := ""
	for _, c := range cs {
		if c == nil {
			return errors.Wrap(errors.ErrState, "nil coin")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if c.IsZero() {
			return errors.Wrap(errors.ErrState, "zero coin")
		}
		if c.Ticker <= last {
			return errors.Wrap(errors.ErrCurrency, "not sorted")
		}
		last = c.Ticker
	}
	return nil
}

// String provides a human readable representation of the set.
func (cs Coins) String() string {
	reps := make([]string, len(cs))
	for i, c := range cs {
		reps[i] = c.String()
	}
	return strings.Join(reps, ", ")
}
