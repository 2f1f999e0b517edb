package ledger

import (
	"reflect"

	"github.com/iov-one/ledger/errors"
)

// LoadMsg extracts the message from given transaction, ensures it is valid
// and loads it into given destination structure.
// The destination must be a non-nil pointer to a message implementation.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dval := reflect.ValueOf(destination)
	if dval.Kind() != reflect.Ptr || dval.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non-nil pointer")
	}

	mval := reflect.ValueOf(msg)
	if got, want := mval.Type(), dval.Type(); got != want {
		return errors.Wrapf(errors.ErrType, "want %s message, got %s", want, got)
	}

	dval.Elem().Set(mval.Elem())
	return nil
}
