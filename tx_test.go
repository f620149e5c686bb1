package redeem

import (
	"testing"

	"github.com/iov-one/redeem/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxValidate(t *testing.T) {
	dest := NewAddress([]byte("payout key"))

	cases := map[string]struct {
		tx        *Tx
		wantField string
		wantErr   *errors.Error
	}{
		"valid": {
			tx: NewTx(1000, NewOutput(200, dest)),
		},
		"no inputs": {
			tx:        &Tx{Outputs: []*Output{NewOutput(1, dest)}},
			wantField: "Inputs",
			wantErr:   errors.ErrEmpty,
		},
		"nil input": {
			tx:        &Tx{Inputs: []*Input{nil}, Outputs: []*Output{NewOutput(1, dest)}},
			wantField: "Inputs.0",
			wantErr:   errors.ErrEmpty,
		},
		"negative input": {
			tx:        NewTx(-1, NewOutput(1, dest)),
			wantField: "Inputs.0.Value",
			wantErr:   errors.ErrAmount,
		},
		"no outputs": {
			tx:        NewTx(10),
			wantField: "Outputs",
			wantErr:   errors.ErrEmpty,
		},
		"negative output": {
			tx:        NewTx(10, NewOutput(1, dest), NewOutput(-1, dest)),
			wantField: "Outputs.1.Value",
			wantErr:   errors.ErrAmount,
		},
		"short destination": {
			tx:        NewTx(10, NewOutput(1, Address("short"))),
			wantField: "Outputs.0.Destination",
			wantErr:   errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.tx.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			errs := errors.FieldErrors(err, tc.wantField)
			require.Len(t, errs, 1, "errors: %v", err)
			assert.True(t, tc.wantErr.Is(errs[0]))
		})
	}
}

func TestTxTotals(t *testing.T) {
	dest := NewAddress([]byte("payout key"))
	tx := &Tx{
		Inputs:  []*Input{{Value: 10}, {Value: 15}},
		Outputs: []*Output{NewOutput(3, dest), NewOutput(4, dest)},
	}

	in, err := tx.InputTotal()
	require.NoError(t, err)
	assert.Equal(t, int64(25), in)

	out, err := tx.OutputTotal()
	require.NoError(t, err)
	assert.Equal(t, int64(7), out)
}

func TestTxEncoding(t *testing.T) {
	tx := NewTx(101900,
		NewOutput(100000, NewAddress([]byte("buyer payout"))),
		NewOutput(1000, NewAddress([]byte("arbiter"))),
	)

	raw, err := EncodeTx(tx)
	require.NoError(t, err)

	got, err := DecodeTx(raw)
	require.NoError(t, err)
	require.Len(t, got.Inputs, 1)
	require.Len(t, got.Outputs, 2)
	assert.Equal(t, int64(101900), got.Inputs[0].Value)
	assert.Equal(t, int64(100000), got.Outputs[0].Value)
	assert.True(t, tx.Outputs[1].Destination.Equals(got.Outputs[1].Destination))

	_, err = DecodeTx([]byte{0xff, 0xff})
	assert.True(t, errors.ErrInput.Is(err))
}
