package nft

import (
	"encoding/json"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/coin"
	"github.com/iov-one/ledger/errors"
)

const tokenIDLength = 8

var (
	_ ledger.Msg = (*IssueMsg)(nil)
	_ ledger.Msg = (*TransferMsg)(nil)
	_ ledger.Msg = (*TransferByAmountMsg)(nil)
	_ ledger.Msg = (*BurnMsg)(nil)
	_ ledger.Msg = (*ReassignPayerMsg)(nil)
)

func validateTokenID(id []byte) error {
	if len(id) != tokenIDLength {
		return errors.Wrapf(errors.ErrInput, "token id must be %d bytes", tokenIDLength)
	}
	return nil
}

func validateMemo(memo string) error {
	if len(memo) > MaxMemoLength {
		return errors.Wrap(errors.ErrInput, "memo has more than 256 bytes")
	}
	return nil
}

// IssueMsg mints new tokens against a registered currency. One token is
// created per entry in URIs and the whole batch is credited to To.
type IssueMsg struct {
	To       ledger.Address `json:"to"`
	Quantity coin.Coin      `json:"quantity"`
	URIs     []string       `json:"uris"`
	Name     string         `json:"name"`
	Memo     string         `json:"memo,omitempty"`
}

func (IssueMsg) Path() string {
	return "nft/issue"
}

func (m *IssueMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *IssueMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *IssueMsg) Validate() error {
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if !coin.IsCC(m.Quantity.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid symbol name: %s", m.Quantity.Ticker)
	}
	if !m.Quantity.IsWhole() {
		return errors.Wrap(errors.ErrAmount, "quantity must be a whole number")
	}
	if !m.Quantity.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "must issue positive quantity of NFT")
	}
	if err := validateMemo(m.Memo); err != nil {
		return err
	}
	if m.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	if len(m.Name) > MaxNameLength {
		return errors.Wrap(errors.ErrInput, "name has more than 32 bytes")
	}
	if int64(len(m.URIs)) != m.Quantity.Whole {
		return errors.Wrap(errors.ErrInput, "mismatch between number of tokens and uris provided")
	}
	return nil
}

// TransferMsg moves a single token, referenced by id, between two accounts.
type TransferMsg struct {
	From ledger.Address `json:"from"`
	To   ledger.Address `json:"to"`
	ID   []byte         `json:"id"`
	Memo string         `json:"memo,omitempty"`
}

func (TransferMsg) Path() string {
	return "nft/transfer"
}

func (m *TransferMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *TransferMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *TransferMsg) Validate() error {
	if m.From.Equals(m.To) {
		return errors.Wrap(errors.ErrInput, "cannot transfer to self")
	}
	if err := m.From.Validate(); err != nil {
		return errors.Wrap(err, "from")
	}
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if err := validateMemo(m.Memo); err != nil {
		return err
	}
	return validateTokenID(m.ID)
}

// TransferByAmountMsg moves exactly one token of the given currency, picking
// the owned token with the lowest id.
type TransferByAmountMsg struct {
	From     ledger.Address `json:"from"`
	To       ledger.Address `json:"to"`
	Quantity coin.Coin      `json:"quantity"`
	Memo     string         `json:"memo,omitempty"`
}

func (TransferByAmountMsg) Path() string {
	return "nft/transfer_amount"
}

func (m *TransferByAmountMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *TransferByAmountMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *TransferByAmountMsg) Validate() error {
	if m.From.Equals(m.To) {
		return errors.Wrap(errors.ErrInput, "cannot transfer to self")
	}
	if err := m.From.Validate(); err != nil {
		return errors.Wrap(err, "from")
	}
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if !coin.IsCC(m.Quantity.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid symbol name: %s", m.Quantity.Ticker)
	}
	if m.Quantity.Whole != 1 || m.Quantity.Fractional != 0 {
		return errors.Wrap(errors.ErrAmount, "cannot transfer quantity, not equal to 1")
	}
	return validateMemo(m.Memo)
}

// BurnMsg deletes a token and retires its value from supply.
type BurnMsg struct {
	Owner ledger.Address `json:"owner"`
	ID    []byte         `json:"id"`
}

func (BurnMsg) Path() string {
	return "nft/burn"
}

func (m *BurnMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *BurnMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *BurnMsg) Validate() error {
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return validateTokenID(m.ID)
}

// ReassignPayerMsg rewrites a token so that its storage cost is attributed
// to the payer. Content of the token does not change.
type ReassignPayerMsg struct {
	Payer ledger.Address `json:"payer"`
	ID    []byte         `json:"id"`
}

func (ReassignPayerMsg) Path() string {
	return "nft/reassign_payer"
}

func (m *ReassignPayerMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *ReassignPayerMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *ReassignPayerMsg) Validate() error {
	if err := m.Payer.Validate(); err != nil {
		return errors.Wrap(err, "payer")
	}
	return validateTokenID(m.ID)
}
