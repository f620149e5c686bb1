package redeemtest

import (
	"testing"

	"github.com/iov-one/redeem/redeemtest/assert"
	"github.com/iov-one/redeem/x/escrow"
)

func TestContractFixture(t *testing.T) {
	for _, c := range []*Contract{NewContract(7), NewMixedContract(7)} {
		params := c.Params()
		assert.Nil(t, params.Validate())
		v := c.Validator(t)

		for _, code := range []escrow.ReasonCode{escrow.Execute, escrow.Cancel, escrow.ResolveBuyer, escrow.ResolveSeller} {
			t.Run(code.String(), func(t *testing.T) {
				claim := c.Claim(t, code)
				assert.Equal(t, len(c.Signers(code)), len(claim.Signatures))
				assert.Nil(t, claim.Validate())
				assert.Nil(t, v.Validate(claim, c.Tx(t, code, 10000)))
			})
		}
	}
}
