package redeemtest

import (
	"github.com/iov-one/redeem"
	"github.com/iov-one/redeem/crypto"
)

// NewKey returns a new random ed25519 private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewSecp256k1Key returns a new random secp256k1 private key.
func NewSecp256k1Key() *crypto.PrivateKey {
	return crypto.GenPrivKeySecp256k1()
}

// NewAddress returns the address of a new random key.
func NewAddress() redeem.Address {
	return NewKey().PublicKey().Address()
}
