package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind    *Error
		err     error
		wantHit bool
	}{
		"direct instance": {
			kind:    ErrNotFound,
			err:     ErrNotFound,
			wantHit: true,
		},
		"wrapped once": {
			kind:    ErrNotFound,
			err:     Wrap(ErrNotFound, "token"),
			wantHit: true,
		},
		"wrapped multiple times": {
			kind:    ErrDuplicate,
			err:     Wrap(Wrap(ErrDuplicate, "ticker"), "cannot create"),
			wantHit: true,
		},
		"different kind": {
			kind:    ErrNotFound,
			err:     Wrap(ErrDuplicate, "ticker"),
			wantHit: false,
		},
		"stdlib error": {
			kind:    ErrNotFound,
			err:     fmt.Errorf("not found"),
			wantHit: false,
		},
		"nil error": {
			kind:    ErrNotFound,
			err:     nil,
			wantHit: false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantHit, tc.kind.Is(tc.err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "whatever"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrapfMessage(t *testing.T) {
	err := Wrapf(ErrAmount, "got %d", -4)
	assert.Equal(t, "got -4: invalid amount", err.Error())
	assert.True(t, ErrAmount.Is(err))
}

func TestRecover(t *testing.T) {
	var err error
	func() {
		defer Recover(&err)
		panic("totally unexpected")
	}()
	assert.True(t, ErrPanic.Is(err))
}

func TestRegisterDuplicateCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("reusing an error code must panic")
		}
	}()
	Register(ErrNotFound.Code(), "conflicting registration")
}
