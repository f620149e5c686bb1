package redeemtest

import (
	"testing"

	"github.com/iov-one/redeem"
	"github.com/iov-one/redeem/crypto"
	"github.com/iov-one/redeem/x/escrow"
)

// Contract holds all private keys of an escrow contract, so that tests can
// sign any claim.
type Contract struct {
	Arbiter      *crypto.PrivateKey
	Buyer        *crypto.PrivateKey
	Seller       *crypto.PrivateKey
	BuyerPayout  *crypto.PrivateKey
	SellerPayout *crypto.PrivateKey
	ArbiterFee   int64
}

// NewContract returns a contract with fresh ed25519 keys.
func NewContract(arbiterFee int64) *Contract {
	return &Contract{
		Arbiter:      NewKey(),
		Buyer:        NewKey(),
		Seller:       NewKey(),
		BuyerPayout:  NewKey(),
		SellerPayout: NewKey(),
		ArbiterFee:   arbiterFee,
	}
}

// NewMixedContract returns a contract where the arbiter and the seller use
// secp256k1 keys and everyone else ed25519.
func NewMixedContract(arbiterFee int64) *Contract {
	return &Contract{
		Arbiter:      NewSecp256k1Key(),
		Buyer:        NewKey(),
		Seller:       NewSecp256k1Key(),
		BuyerPayout:  NewKey(),
		SellerPayout: NewSecp256k1Key(),
		ArbiterFee:   arbiterFee,
	}
}

// Params returns the public contract parameters.
func (c *Contract) Params() escrow.ContractParams {
	return escrow.ContractParams{
		Arbiter:      c.Arbiter.PublicKey(),
		Buyer:        c.Buyer.PublicKey(),
		Seller:       c.Seller.PublicKey(),
		BuyerPayout:  c.BuyerPayout.PublicKey(),
		SellerPayout: c.SellerPayout.PublicKey(),
		ArbiterFee:   c.ArbiterFee,
	}
}

// Validator returns a validator for this contract or fails the test.
func (c *Contract) Validator(t testing.TB) *escrow.Validator {
	t.Helper()
	v, err := escrow.NewValidator(c.Params())
	if err != nil {
		t.Fatalf("cannot create validator: %+v", err)
	}
	return v
}

// Signers returns the keys that must sign a claim with given code, in
// order.
func (c *Contract) Signers(code escrow.ReasonCode) []crypto.Signer {
	switch code {
	case escrow.Execute:
		return []crypto.Signer{c.Seller}
	case escrow.Cancel:
		return []crypto.Signer{c.Buyer}
	case escrow.ResolveBuyer:
		return []crypto.Signer{c.Buyer, c.Arbiter}
	case escrow.ResolveSeller:
		return []crypto.Signer{c.Seller, c.Arbiter}
	}
	return nil
}

// Claim returns a claim with given code signed by every party the path
// requires.
func (c *Contract) Claim(t testing.TB, code escrow.ReasonCode) *escrow.Claim {
	t.Helper()
	return SignClaim(t, code, c.Signers(code)...)
}

// SignClaim returns a claim with given code signed by the signers in the
// order given.
func SignClaim(t testing.TB, code escrow.ReasonCode, signers ...crypto.Signer) *escrow.Claim {
	t.Helper()
	claim := escrow.NewClaim(code)
	for _, s := range signers {
		sig, err := escrow.Sign(s, code)
		if err != nil {
			t.Fatalf("cannot sign %s: %+v", code, err)
		}
		claim.Signatures = append(claim.Signatures, sig)
	}
	return claim
}

// Tx returns the transaction the path of given code accepts for a locked
// output of inputValue.
func (c *Contract) Tx(t testing.TB, code escrow.ReasonCode, inputValue int64) *redeem.Tx {
	t.Helper()
	outs, err := c.Validator(t).ExpectedOutputs(code, inputValue)
	if err != nil {
		t.Fatalf("cannot compute outputs: %+v", err)
	}
	return redeem.NewTx(inputValue, outs...)
}
