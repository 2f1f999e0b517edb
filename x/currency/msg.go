package currency

import (
	"encoding/json"

	"github.com/iov-one/ledger"
	"github.com/iov-one/ledger/coin"
	"github.com/iov-one/ledger/errors"
)

var _ ledger.Msg = (*CreateMsg)(nil)

// CreateMsg registers a new currency. The issuer is recorded as the only
// account allowed to mint against the new entry. It is not the issuer but
// the contract owner who must authorize this message.
type CreateMsg struct {
	Ticker string         `json:"ticker"`
	Issuer ledger.Address `json:"issuer"`
}

func (CreateMsg) Path() string {
	return "currency/create"
}

func (m *CreateMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func (m *CreateMsg) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, m)
}

func (m *CreateMsg) Validate() error {
	if !coin.IsCC(m.Ticker) {
		return errors.Wrapf(errors.ErrCurrency, "invalid ticker: %s", m.Ticker)
	}
	return m.Issuer.Validate()
}
