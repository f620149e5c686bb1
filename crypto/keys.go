package crypto

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iov-one/redeem"
	"github.com/iov-one/redeem/errors"
)

const (
	// AlgoEd25519 is the name of the ed25519 signature algorithm.
	AlgoEd25519 = "ed25519"
	// AlgoSecp256k1 is the name of the secp256k1 ECDSA signature algorithm.
	AlgoSecp256k1 = "secp256k1"
)

// Signer is the functionality we use from a private key.
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() *PublicKey
}

// PublicKey holds a serialized public key of exactly one of the supported
// algorithms.
type PublicKey struct {
	Ed25519   []byte
	Secp256k1 []byte
}

// NewPublicKey returns a public key of given algorithm.
func NewPublicKey(algo string, data []byte) (*PublicKey, error) {
	var p PublicKey
	switch algo {
	case AlgoEd25519:
		p.Ed25519 = data
	case AlgoSecp256k1:
		p.Secp256k1 = data
	default:
		return nil, errors.Wrapf(errors.ErrInvalidType, "unknown algorithm %q", algo)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ParsePublicKey decodes a public key from its "<algorithm>/<hex>" form as
// returned by the String method.
func ParsePublicKey(s string) (*PublicKey, error) {
	chunks := strings.SplitN(s, "/", 2)
	if len(chunks) != 2 {
		return nil, errors.Wrapf(errors.ErrInput, "invalid public key format %q", s)
	}
	data, err := hex.DecodeString(chunks[1])
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "malformed public key data: %s", err)
	}
	return NewPublicKey(chunks[0], data)
}

// Algorithm returns the name of the signature algorithm of this key.
func (p *PublicKey) Algorithm() string {
	switch {
	case p == nil:
		return ""
	case p.Ed25519 != nil:
		return AlgoEd25519
	case p.Secp256k1 != nil:
		return AlgoSecp256k1
	}
	return ""
}

// Bytes returns the serialized key.
func (p *PublicKey) Bytes() []byte {
	switch p.Algorithm() {
	case AlgoEd25519:
		return p.Ed25519
	case AlgoSecp256k1:
		return p.Secp256k1
	}
	return nil
}

// Verify verifies the signature was created with this message and public
// key. Malformed signatures never verify.
func (p *PublicKey) Verify(message, sig []byte) bool {
	switch p.Algorithm() {
	case AlgoEd25519:
		return verifyEd25519(p.Ed25519, message, sig)
	case AlgoSecp256k1:
		return verifySecp256k1(p.Secp256k1, message, sig)
	}
	return false
}

// Address returns the hash of the serialized key that outputs paying to
// this key declare as their destination.
func (p *PublicKey) Address() redeem.Address {
	return redeem.NewAddress(p.Bytes())
}

// Validate returns an error if the key is not set, has more than one
// algorithm set or cannot be parsed.
func (p *PublicKey) Validate() error {
	if p == nil || (p.Ed25519 == nil && p.Secp256k1 == nil) {
		return errors.Wrap(errors.ErrEmpty, "public key")
	}
	if p.Ed25519 != nil && p.Secp256k1 != nil {
		return errors.Wrap(errors.ErrInput, "more than one algorithm set")
	}
	switch p.Algorithm() {
	case AlgoEd25519:
		return validateEd25519(p.Ed25519)
	case AlgoSecp256k1:
		return validateSecp256k1(p.Secp256k1)
	}
	return errors.Wrap(errors.ErrHuman, "unhandled algorithm")
}

// Equals returns true if both keys are of the same algorithm and value.
func (p *PublicKey) Equals(o *PublicKey) bool {
	return p.Algorithm() == o.Algorithm() && bytes.Equal(p.Bytes(), o.Bytes())
}

// Clone returns a deep copy of the key.
func (p *PublicKey) Clone() *PublicKey {
	if p == nil {
		return nil
	}
	return &PublicKey{
		Ed25519:   cloneBytes(p.Ed25519),
		Secp256k1: cloneBytes(p.Secp256k1),
	}
}

// String returns the key as "<algorithm>/<hex>".
func (p *PublicKey) String() string {
	if p.Algorithm() == "" {
		return "(nil)"
	}
	return fmt.Sprintf("%s/%X", p.Algorithm(), p.Bytes())
}

func (p *PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PublicKey) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot decode json: %s", err)
	}
	key, err := ParsePublicKey(s)
	if err != nil {
		return err
	}
	*p = *key
	return nil
}

// Set implements flag.Value interface.
func (p *PublicKey) Set(raw string) error {
	key, err := ParsePublicKey(raw)
	if err != nil {
		return err
	}
	*p = *key
	return nil
}

// PrivateKey holds a serialized private key of exactly one of the supported
// algorithms.
type PrivateKey struct {
	Ed25519   []byte
	Secp256k1 []byte
}

var _ Signer = (*PrivateKey)(nil)

// Algorithm returns the name of the signature algorithm of this key.
func (p *PrivateKey) Algorithm() string {
	switch {
	case p == nil:
		return ""
	case p.Ed25519 != nil:
		return AlgoEd25519
	case p.Secp256k1 != nil:
		return AlgoSecp256k1
	}
	return ""
}

// Sign returns a signature of given message that verifies against
// PublicKey().
func (p *PrivateKey) Sign(message []byte) ([]byte, error) {
	switch p.Algorithm() {
	case AlgoEd25519:
		return signEd25519(p.Ed25519, message)
	case AlgoSecp256k1:
		return signSecp256k1(p.Secp256k1, message)
	}
	return nil, errors.Wrap(errors.ErrEmpty, "private key")
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() *PublicKey {
	switch p.Algorithm() {
	case AlgoEd25519:
		return &PublicKey{Ed25519: publicEd25519(p.Ed25519)}
	case AlgoSecp256k1:
		return &PublicKey{Secp256k1: publicSecp256k1(p.Secp256k1)}
	}
	return nil
}

// Validate returns an error if the key is not set or malformed.
func (p *PrivateKey) Validate() error {
	if p == nil || (p.Ed25519 == nil && p.Secp256k1 == nil) {
		return errors.Wrap(errors.ErrEmpty, "private key")
	}
	if p.Ed25519 != nil && p.Secp256k1 != nil {
		return errors.Wrap(errors.ErrInput, "more than one algorithm set")
	}
	switch p.Algorithm() {
	case AlgoEd25519:
		if len(p.Ed25519) != ed25519PrivateKeySize {
			return errors.Wrapf(errors.ErrInput, "invalid ed25519 private key length: %d", len(p.Ed25519))
		}
	case AlgoSecp256k1:
		if len(p.Secp256k1) != secp256k1PrivateKeySize {
			return errors.Wrapf(errors.ErrInput, "invalid secp256k1 private key length: %d", len(p.Secp256k1))
		}
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	cpy := make([]byte, len(b))
	copy(cpy, b)
	return cpy
}
