package nft

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/coin"
	"github.com/iov-one/ledger/errors"
	"github.com/iov-one/ledger/ledgertest"
)

func TestIssueMsgValidate(t *testing.T) {
	addr := ledgertest.NewAddress()

	cases := map[string]struct {
		msg     *IssueMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &IssueMsg{
				To:       addr,
				Quantity: coin.NewCoin(2, 0, "NFT"),
				URIs:     []string{"uri1", "uri2"},
				Name:     "nft1",
				Memo:     "hola",
			},
		},
		"invalid to address": {
			msg: &IssueMsg{
				To:       ledger.Address{0x01},
				Quantity: coin.NewCoin(1, 0, "NFT"),
				URIs:     []string{"uri1"},
				Name:     "nft1",
			},
			wantErr: errors.ErrInput,
		},
		"invalid symbol": {
			msg: &IssueMsg{
				To:       addr,
				Quantity: coin.NewCoin(1, 0, "nft"),
				URIs:     []string{"uri1"},
				Name:     "nft1",
			},
			wantErr: errors.ErrCurrency,
		},
		"fractional quantity": {
			msg: &IssueMsg{
				To:       addr,
				Quantity: coin.NewCoin(1, 5, "NFT"),
				URIs:     []string{"uri1"},
				Name:     "nft1",
			},
			wantErr: errors.ErrAmount,
		},
		"negative quantity": {
			msg: &IssueMsg{
				To:       addr,
				Quantity: coin.NewCoin(-1, 0, "NFT"),
				URIs:     []string{"uri1"},
				Name:     "nft1",
			},
			wantErr: errors.ErrAmount,
		},
		"zero quantity": {
			msg: &IssueMsg{
				To:       addr,
				Quantity: coin.NewCoin(0, 0, "NFT"),
				URIs:     nil,
				Name:     "nft1",
			},
			wantErr: errors.ErrAmount,
		},
		"empty name": {
			msg: &IssueMsg{
				To:       addr,
				Quantity: coin.NewCoin(1, 0, "NFT"),
				URIs:     []string{"uri1"},
				Name:     "",
			},
			wantErr: errors.ErrEmpty,
		},
		"name too long": {
			msg: &IssueMsg{
				To:       addr,
				Quantity: coin.NewCoin(1, 0, "NFT"),
				URIs:     []string{"uri1"},
				Name:     strings.Repeat("n", 33),
			},
			wantErr: errors.ErrInput,
		},
		"memo too long": {
			msg: &IssueMsg{
				To:       addr,
				Quantity: coin.NewCoin(1, 0, "NFT"),
				URIs:     []string{"uri1"},
				Name:     "nft1",
				Memo:     strings.Repeat("m", 257),
			},
			wantErr: errors.ErrInput,
		},
		"uri count mismatch": {
			msg: &IssueMsg{
				To:       addr,
				Quantity: coin.NewCoin(3, 0, "NFT"),
				URIs:     []string{"uri1", "uri2"},
				Name:     "nft1",
			},
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

func TestTransferMsgValidate(t *testing.T) {
	from := ledgertest.NewAddress()
	to := ledgertest.NewAddress()
	id := make([]byte, 8)

	cases := map[string]struct {
		msg     *TransferMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &TransferMsg{From: from, To: to, ID: id, Memo: "memo"},
		},
		"transfer to self": {
			msg:     &TransferMsg{From: from, To: from, ID: id},
			wantErr: errors.ErrInput,
		},
		"short id": {
			msg:     &TransferMsg{From: from, To: to, ID: []byte{1, 2, 3}},
			wantErr: errors.ErrInput,
		},
		"memo too long": {
			msg:     &TransferMsg{From: from, To: to, ID: id, Memo: strings.Repeat("m", 257)},
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

func TestTransferByAmountMsgValidate(t *testing.T) {
	from := ledgertest.NewAddress()
	to := ledgertest.NewAddress()

	cases := map[string]struct {
		msg     *TransferByAmountMsg
		wantErr *errors.Error
	}{
		"valid": {
			msg: &TransferByAmountMsg{From: from, To: to, Quantity: coin.NewCoin(1, 0, "NFT")},
		},
		"transfer to self": {
			msg:     &TransferByAmountMsg{From: from, To: from, Quantity: coin.NewCoin(1, 0, "NFT")},
			wantErr: errors.ErrInput,
		},
		"more than one unit": {
			msg:     &TransferByAmountMsg{From: from, To: to, Quantity: coin.NewCoin(2, 0, "NFT")},
			wantErr: errors.ErrAmount,
		},
		"fractional unit": {
			msg:     &TransferByAmountMsg{From: from, To: to, Quantity: coin.NewCoin(1, 1, "NFT")},
			wantErr: errors.ErrAmount,
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

func TestBurnMsgValidate(t *testing.T) {
	owner := ledgertest.NewAddress()

	assert.NoError(t, (&BurnMsg{Owner: owner, ID: make([]byte, 8)}).Validate())
	assert.Error(t, (&BurnMsg{Owner: owner, ID: nil}).Validate())
	assert.Error(t, (&BurnMsg{Owner: nil, ID: make([]byte, 8)}).Validate())
}

func TestReassignPayerMsgValidate(t *testing.T) {
	payer := ledgertest.NewAddress()

	assert.NoError(t, (&ReassignPayerMsg{Payer: payer, ID: make([]byte, 8)}).Validate())
	assert.Error(t, (&ReassignPayerMsg{Payer: payer, ID: []byte{1}}).Validate())
	assert.Error(t, (&ReassignPayerMsg{Payer: nil, ID: make([]byte, 8)}).Validate())
}
