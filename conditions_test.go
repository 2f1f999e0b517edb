package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionParse(t *testing.T) {
	cases := map[string]struct {
		cond     Condition
		wantErr  bool
		wantExt  string
		wantTyp  string
		wantData []byte
	}{
		"valid": {
			cond:     NewCondition("sigs", "ed25519", []byte{1, 2, 3}),
			wantExt:  "sigs",
			wantTyp:  "ed25519",
			wantData: []byte{1, 2, 3},
		},
		"data with newline": {
			cond:     NewCondition("sigs", "ed25519", []byte("foo\nbar")),
			wantExt:  "sigs",
			wantTyp:  "ed25519",
			wantData: []byte("foo\nbar"),
		},
		"extension too short": {
			cond:    NewCondition("ab", "ed25519", []byte{1}),
			wantErr: true,
		},
		"missing data": {
			cond:    Condition("sigs/ed25519/"),
			wantErr: true,
		},
		"garbage": {
			cond:    Condition("frobnicate"),
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ext, typ, data, err := tc.cond.Parse()
			if tc.wantErr {
				assert.Error(t, err)
				assert.Error(t, tc.cond.Validate())
				return
			}
			assert.NoError(t, err)
			assert.NoError(t, tc.cond.Validate())
			assert.Equal(t, tc.wantExt, ext)
			assert.Equal(t, tc.wantTyp, typ)
			assert.Equal(t, tc.wantData, data)
		})
	}
}

func TestConditionAddress(t *testing.T) {
	a := NewCondition("sigs", "ed25519", []byte{1, 2, 3})
	b := NewCondition("sigs", "ed25519", []byte{1, 2, 4})

	assert.NoError(t, a.Address().Validate())
	assert.NoError(t, b.Address().Validate())
	assert.False(t, a.Address().Equals(b.Address()))
	assert.True(t, a.Address().Equals(a.Address()))
	assert.True(t, a.Equals(NewCondition("sigs", "ed25519", []byte{1, 2, 3})))
}
