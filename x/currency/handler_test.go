package currency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/coin"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/ledgertest"
	"github.com/iov-one/ledger/store"
	"github.com/iov-one/ledger/x"
)

func TestCreateTokenInfo(t *testing.T) {
	ownerCond := ledgertest.NewCondition()
	owner := ownerCond.Address()
	issuer := ledgertest.NewAddress()
	stranger := ledgertest.NewCondition()

	cases := map[string]struct {
		signer  ledger.Condition
		msg     *CreateMsg
		wantErr *errors.Error
	}{
		"happy path": {
			signer: ownerCond,
			msg:    &CreateMsg{Ticker: "NFT", Issuer: issuer},
		},
		"invalid ticker": {
			signer:  ownerCond,
			msg:     &CreateMsg{Ticker: "nft", Issuer: issuer},
			wantErr: errors.ErrCurrency,
		},
		"not the contract owner": {
			signer:  stranger,
			msg:     &CreateMsg{Ticker: "NFT", Issuer: issuer},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			auth := &ledgertest.Auth{Signer: tc.signer}
			h := newCreateTokenInfoHandler(auth, owner, x.AnyAccount{})
			tx := &ledgertest.Tx{Msg: tc.msg}
			ctx := context.Background()

			_, err := h.Check(ctx, db, tx)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "%+v", err)
				return
			}
			require.NoError(t, err)
			_, err = h.Deliver(ctx, db, tx)
			require.NoError(t, err)

			obj, err := NewTokenInfoBucket().Get(db, tc.msg.Ticker)
			require.NoError(t, err)
			require.NotNil(t, obj)
			info := obj.Value().(*TokenInfo)
			assert.True(t, info.Supply.IsZero())
			assert.Equal(t, issuer, info.Issuer)
		})
	}
}

func TestCreateTokenInfoRequiresOwner(t *testing.T) {
	auth := &ledgertest.Auth{Signer: ledgertest.NewCondition()}

	// wiring the handler without a contract owner must not silently
	// disable the authorization check
	assert.Panics(t, func() {
		newCreateTokenInfoHandler(auth, nil, x.AnyAccount{})
	})
	assert.Panics(t, func() {
		newCreateTokenInfoHandler(auth, ledger.Address{1, 2, 3}, x.AnyAccount{})
	})
}

func TestCreateTokenInfoDuplicate(t *testing.T) {
	db := store.MemStore()
	ownerCond := ledgertest.NewCondition()
	auth := &ledgertest.Auth{Signer: ownerCond}
	h := newCreateTokenInfoHandler(auth, ownerCond.Address(), x.AnyAccount{})
	ctx := context.Background()

	tx := &ledgertest.Tx{Msg: &CreateMsg{Ticker: "NFT", Issuer: ledgertest.NewAddress()}}
	_, err := h.Deliver(ctx, db, tx)
	require.NoError(t, err)

	// registering the same symbol twice must fail
	_, err = h.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrDuplicate.Is(err))
}

func TestSupplyUpdates(t *testing.T) {
	db := store.MemStore()
	bucket := NewTokenInfoBucket()
	issuer := ledgertest.NewAddress()

	require.NoError(t, bucket.Save(db, NewTokenInfo("NFT", issuer)))

	// unknown symbol cannot be minted against
	err := bucket.AddSupply(db, "MISS", coin.NewCoin(1, 0, "MISS"))
	assert.True(t, errors.ErrNotFound.Is(err))

	require.NoError(t, bucket.AddSupply(db, "NFT", coin.NewCoin(5, 0, "NFT")))
	require.NoError(t, bucket.SubtractSupply(db, "NFT", coin.NewCoin(2, 0, "NFT")))

	obj, err := bucket.Get(db, "NFT")
	require.NoError(t, err)
	info := obj.Value().(*TokenInfo)
	assert.Equal(t, coin.NewCoin(3, 0, "NFT"), info.Supply)

	// supply may never go negative
	err = bucket.SubtractSupply(db, "NFT", coin.NewCoin(4, 0, "NFT"))
	assert.True(t, errors.ErrAmount.Is(err))
}
