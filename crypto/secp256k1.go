package crypto

import (
	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/iov-one/redeem/errors"
)

const (
	secp256k1PrivateKeySize = btcec.PrivKeyBytesLen
	secp256k1PublicKeySize  = btcec.PubKeyBytesLenCompressed
)

// Signatures are created over a single SHA-256 of the message, the same
// digest that OP_CHECKDATASIG uses.
func secp256k1Digest(message []byte) []byte {
	return chainhash.HashB(message)
}

func verifySecp256k1(pub, message, sig []byte) bool {
	key, err := btcec.ParsePubKey(pub, btcec.S256())
	if err != nil {
		return false
	}
	signature, err := btcec.ParseDERSignature(sig, btcec.S256())
	if err != nil {
		return false
	}
	return signature.Verify(secp256k1Digest(message), key)
}

func validateSecp256k1(pub []byte) error {
	if len(pub) != secp256k1PublicKeySize {
		return errors.Wrapf(errors.ErrInput, "secp256k1 public key must be compressed, got %d bytes", len(pub))
	}
	if _, err := btcec.ParsePubKey(pub, btcec.S256()); err != nil {
		return errors.Wrapf(errors.ErrInput, "invalid secp256k1 public key: %s", err)
	}
	return nil
}

func signSecp256k1(priv, message []byte) ([]byte, error) {
	if len(priv) != secp256k1PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "invalid secp256k1 private key length: %d", len(priv))
	}
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), priv)
	sig, err := key.Sign(secp256k1Digest(message))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "cannot sign: %s", err)
	}
	return sig.Serialize(), nil
}

func publicSecp256k1(priv []byte) []byte {
	if len(priv) != secp256k1PrivateKeySize {
		return nil
	}
	_, pub := btcec.PrivKeyFromBytes(btcec.S256(), priv)
	return pub.SerializeCompressed()
}

// GenPrivKeySecp256k1 returns a random new secp256k1 private key.
func GenPrivKeySecp256k1() *PrivateKey {
	key, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Secp256k1: key.Serialize()}
}

// PrivKeySecp256k1FromBytes returns a secp256k1 private key of given 32
// byte scalar.
func PrivKeySecp256k1FromBytes(raw []byte) (*PrivateKey, error) {
	if len(raw) != secp256k1PrivateKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "invalid secp256k1 private key length: %d", len(raw))
	}
	key, _ := btcec.PrivKeyFromBytes(btcec.S256(), raw)
	return &PrivateKey{Secp256k1: key.Serialize()}, nil
}
