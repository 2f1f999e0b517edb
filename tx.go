package ledger

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/iov-one/ledger/errors"
)

// AddressLength is the length of all addresses
// You can modify it in init() before any addresses are calculated,
// but it must not change during the lifetime of the kvstore.
var AddressLength = 20

// Msg is a message for the ledger to take an action
// (make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Validate returns an error when the message content is not valid on
	// its own. State dependent checks belong to the handler.
	Validate() error

	// Path returns the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to
	// them.
	//
	// Multiple types may have the same value, and will end up at the
	// same Handler.
	//
	// Must be alphanumeric [0-9A-Za-z_/]+
	Path() string
}

// Marshaller is anything that can be represented in binary.
//
// Marshal may validate the data before serializing it and
// unless you previously validated the struct,
// errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
//
// As with Marshaller, this may do internal validation on the data
// and errors should be expected.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents the data sent from the user to the chain.
// It includes the actual message, along with information needed
// to authenticate the sender (cryptographic signatures),
// and anything else needed to pass through middleware.
type Tx interface {
	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// Address represents a collision-free, one-way digest
// of data (usually a public key) that can be used to identify a signer.
//
// It will be of size AddressLength.
type Address []byte

// Equals checks if two addresses are the same.
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Clone provides an independent copy of an address.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	return append(Address{}, a...)
}

// MarshalJSON provides a hex representation for JSON,
// to override the standard base64 []byte encoding.
func (a Address) MarshalJSON() ([]byte, error) {
	s := strings.ToUpper(hex.EncodeToString(a))
	return []byte(`"` + s + `"`), nil
}

// UnmarshalJSON parses JSON in hex representation,
// to override the standard base64 []byte encoding.
func (a *Address) UnmarshalJSON(src []byte) error {
	var raw string
	if len(src) >= 2 && src[0] == '"' && src[len(src)-1] == '"' {
		raw = string(src[1 : len(src)-1])
	} else {
		return errors.Wrap(errors.ErrInput, "address must be a json string")
	}
	if raw == "" {
		*a = nil
		return nil
	}
	bz, err := hex.DecodeString(strings.ToLower(raw))
	if err != nil {
		return errors.Wrap(errors.ErrInput, "address must be hex encoded")
	}
	*a = bz
	return nil
}

// String returns a human readable string.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Validate returns an error if the address is not the valid size.
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address: %X", []byte(a))
	}
	return nil
}

// NewAddress hashes and truncates into the proper size.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AddressLength]
}
