package crypto

import (
	"github.com/iov-one/redeem/errors"
	"golang.org/x/crypto/ed25519"
)

const ed25519PrivateKeySize = ed25519.PrivateKeySize

func verifyEd25519(pub, message, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), message, sig)
}

func validateEd25519(pub []byte) error {
	if len(pub) != ed25519.PublicKeySize {
		return errors.Wrapf(errors.ErrInput, "invalid ed25519 public key length: %d", len(pub))
	}
	return nil
}

func signEd25519(priv, message []byte) ([]byte, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "invalid ed25519 private key length: %d", len(priv))
	}
	return ed25519.Sign(ed25519.PrivateKey(priv), message), nil
}

func publicEd25519(priv []byte) []byte {
	if len(priv) != ed25519.PrivateKeySize {
		return nil
	}
	return []byte(ed25519.PrivateKey(priv).Public().(ed25519.PublicKey))
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}
