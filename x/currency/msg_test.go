package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/ledgertest"
)

func TestCreateMsgValidate(t *testing.T) {
	addr := ledgertest.NewAddress()

	cases := map[string]struct {
		msg     *CreateMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &CreateMsg{Ticker: "NFT", Issuer: addr},
		},
		"four letter ticker": {
			msg: &CreateMsg{Ticker: "WINE", Issuer: addr},
		},
		"lowercase ticker": {
			msg:     &CreateMsg{Ticker: "nft", Issuer: addr},
			wantErr: errors.ErrCurrency,
		},
		"too short ticker": {
			msg:     &CreateMsg{Ticker: "NF", Issuer: addr},
			wantErr: errors.ErrCurrency,
		},
		"missing issuer": {
			msg:     &CreateMsg{Ticker: "NFT"},
			wantErr: errors.ErrInput,
		},
		"truncated issuer": {
			msg:     &CreateMsg{Ticker: "NFT", Issuer: ledger.Address{0x01, 0x02}},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, tc.wantErr.Is(err), "%+v", err)
			}
		})
	}
}
