package coin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	cases := []struct {
		input    []Coin
		expected Coins
		isErr    bool
	}{
		// empty
		{
			input:    nil,
			expected: Coins{},
		},
		// out of order, gets sorted
		{
			input: []Coin{
				NewCoin(2, 0, "FOO"),
				NewCoin(1, 0, "BAR"),
			},
			expected: Coins{
				NewCoinp(1, 0, "BAR"),
				NewCoinp(2, 0, "FOO"),
			},
		},
		// combine duplicates
		{
			input: []Coin{
				NewCoin(2, 0, "FOO"),
				NewCoin(1, 500000000, "FOO"),
			},
			expected: Coins{
				NewCoinp(3, 500000000, "FOO"),
			},
		},
		// cancel each other out
		{
			input: []Coin{
				NewCoin(2, 0, "FOO"),
				NewCoin(-2, 0, "FOO"),
			},
			expected: Coins{},
		},
		// invalid currency
		{
			input: []Coin{
				NewCoin(2, 0, "fooo"),
			},
			isErr: true,
		},
	}

	for _, tc := range cases {
		res, err := CombineCoins(tc.input...)
		if tc.isErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.True(t, tc.expected.Equals(res))
	}
}

func TestCoinsAdd(t *testing.T) {
	var cs Coins
	require.NoError(t, cs.Add(NewCoin(5, 0, "BBB")))
	require.NoError(t, cs.Add(NewCoin(1, 0, "AAA")))
	require.NoError(t, cs.Add(NewCoin(3, 0, "CCC")))

	// set stays sorted
	require.NoError(t, cs.Validate())
	assert.Equal(t, 3, cs.Count())
	assert.Equal(t, "AAA", cs[0].Ticker)
	assert.Equal(t, "BBB", cs[1].Ticker)
	assert.Equal(t, "CCC", cs[2].Ticker)

	// adding into existing slot
	require.NoError(t, cs.Add(NewCoin(2, 0, "BBB")))
	assert.Equal(t, NewCoin(7, 0, "BBB"), cs.Coin("BBB"))
	assert.Equal(t, 3, cs.Count())

	// draining a coin removes it from the set
	require.NoError(t, cs.Subtract(NewCoin(7, 0, "BBB")))
	assert.Equal(t, 2, cs.Count())
	assert.True(t, cs.Coin("BBB").IsZero())
	require.NoError(t, cs.Validate())
}

func TestCoinsContains(t *testing.T) {
	cs, err := CombineCoins(
		NewCoin(10, 0, "FOO"),
		NewCoin(2, 500000000, "BAR"),
	)
	require.NoError(t, err)

	assert.True(t, cs.Contains(NewCoin(10, 0, "FOO")))
	assert.True(t, cs.Contains(NewCoin(2, 0, "BAR")))
	assert.False(t, cs.Contains(NewCoin(11, 0, "FOO")))
	assert.False(t, cs.Contains(NewCoin(1, 0, "MISS")))
}

func TestCoinsNonNegative(t *testing.T) {
	empty := Coins{}
	assert.True(t, empty.IsNonNegative())
	assert.False(t, empty.IsPositive())

	pos, err := CombineCoins(NewCoin(1, 0, "FOO"))
	require.NoError(t, err)
	assert.True(t, pos.IsPositive())

	neg, err := CombineCoins(NewCoin(-1, 0, "FOO"))
	require.NoError(t, err)
	assert.False(t, neg.IsNonNegative())
}

func TestCoinsClone(t *testing.T) {
	cs, err := CombineCoins(NewCoin(5, 0, "FOO"))
	require.NoError(t, err)

	cp := cs.Clone()
	require.NoError(t, cp.Add(NewCoin(3, 0, "FOO")))

	// original unchanged
	assert.Equal(t, NewCoin(5, 0, "FOO"), cs.Coin("FOO"))
	assert.Equal(t, NewCoin(8, 0, "FOO"), cp.Coin("FOO"))
}
