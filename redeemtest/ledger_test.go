package redeemtest

import (
	"sync"
	"testing"

	"github.com/iov-one/redeem"
	"github.com/iov-one/redeem/errors"
	"github.com/iov-one/redeem/redeemtest/assert"
	"github.com/iov-one/redeem/x/escrow"
)

func TestLedgerRedeem(t *testing.T) {
	c := NewContract(1000)
	v := c.Validator(t)
	ledger := NewLedger()
	assert.Nil(t, ledger.Lock(v.Address(), 101900))
	assert.IsErr(t, errors.ErrDuplicate, ledger.Lock(v.Address(), 5))

	locked, err := ledger.Locked(v.Address())
	assert.Nil(t, err)
	assert.Equal(t, int64(101900), locked)

	claim := c.Claim(t, escrow.Execute)
	check := func(tx *redeem.Tx) error { return v.Validate(claim, tx) }

	// A rejected redemption leaves the output locked.
	bad := c.Tx(t, escrow.Execute, 101900)
	bad.Outputs[0].Value++
	assert.IsErr(t, escrow.ErrAmountMismatch, ledger.Redeem(v.Address(), bad, check))
	_, err = ledger.Locked(v.Address())
	assert.Nil(t, err)

	// Input must match what is locked.
	assert.IsErr(t, errors.ErrInput, ledger.Redeem(v.Address(), c.Tx(t, escrow.Execute, 200000), check))

	tx := c.Tx(t, escrow.Execute, 101900)
	assert.Nil(t, ledger.Redeem(v.Address(), tx, check))

	buyer, err := ledger.Balance(c.BuyerPayout.PublicKey().Address())
	assert.Nil(t, err)
	assert.Equal(t, int64(100000), buyer)
	arbiter, err := ledger.Balance(c.Arbiter.PublicKey().Address())
	assert.Nil(t, err)
	assert.Equal(t, int64(1000), arbiter)

	_, err = ledger.Locked(v.Address())
	assert.IsErr(t, errors.ErrNotFound, err)
	assert.IsErr(t, errors.ErrNotFound, ledger.Redeem(v.Address(), tx, check))
}

func TestLedgerRejectsMalformedTransactions(t *testing.T) {
	c := NewContract(1000)
	v := c.Validator(t)
	ledger := NewLedger()
	assert.Nil(t, ledger.Lock(v.Address(), 10000))
	acceptAll := func(*redeem.Tx) error { return nil }

	cases := map[string]struct {
		Tx      *redeem.Tx
		WantErr *errors.Error
	}{
		"nil output": {
			Tx:      &redeem.Tx{Inputs: []*redeem.Input{{Value: 10000}}, Outputs: []*redeem.Output{nil}},
			WantErr: errors.ErrEmpty,
		},
		"output without destination": {
			Tx:      redeem.NewTx(10000, redeem.NewOutput(100, nil)),
			WantErr: errors.ErrInput,
		},
		"outputs exceed the input": {
			Tx:      redeem.NewTx(10000, redeem.NewOutput(10001, NewAddress())),
			WantErr: errors.ErrAmount,
		},
		"two inputs": {
			Tx: &redeem.Tx{
				Inputs:  []*redeem.Input{{Value: 5000}, {Value: 5000}},
				Outputs: []*redeem.Output{redeem.NewOutput(100, NewAddress())},
			},
			WantErr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := ledger.Redeem(v.Address(), tc.Tx, func(tx *redeem.Tx) error {
				return v.Validate(c.Claim(t, escrow.Cancel), tx)
			})
			if tc.WantErr == nil {
				// Only the validator can reject this one.
				assert.IsErr(t, escrow.ErrInputShape, err)
			} else {
				assert.IsErr(t, tc.WantErr, err)
				assert.IsErr(t, tc.WantErr, ledger.Redeem(v.Address(), tc.Tx, acceptAll))
			}
			locked, err := ledger.Locked(v.Address())
			assert.Nil(t, err)
			assert.Equal(t, int64(10000), locked)
		})
	}
}

func TestLedgerConcurrentRedeem(t *testing.T) {
	c := NewMixedContract(1000)
	v := c.Validator(t)
	ledger := NewLedger()
	assert.Nil(t, ledger.Lock(v.Address(), 50000))

	// Every path races for the same output.
	codes := []escrow.ReasonCode{escrow.Execute, escrow.Cancel, escrow.ResolveBuyer, escrow.ResolveSeller}
	const rounds = 8

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		errs     []error
	)
	for i := 0; i < rounds; i++ {
		for _, code := range codes {
			claim := c.Claim(t, code)
			tx := c.Tx(t, code, 50000)
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := ledger.Redeem(v.Address(), tx, func(tx *redeem.Tx) error {
					return v.Validate(claim, tx)
				})
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					accepted++
				} else {
					errs = append(errs, err)
				}
			}()
		}
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	for _, err := range errs {
		assert.IsErr(t, errors.ErrNotFound, err)
	}
}
