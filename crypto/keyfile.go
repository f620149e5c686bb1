package crypto

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/iov-one/redeem/errors"
)

// KeyPerm is the file permissions for saved private keys
const KeyPerm = 0600

// EncodePrivateKey returns the private key as "<algorithm>/<hex>" string
// that can be saved and later loaded.
func EncodePrivateKey(key *PrivateKey) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}
	var data []byte
	switch key.Algorithm() {
	case AlgoEd25519:
		data = key.Ed25519
	case AlgoSecp256k1:
		data = key.Secp256k1
	}
	return fmt.Sprintf("%s/%s", key.Algorithm(), hex.EncodeToString(data)), nil
}

// DecodePrivateKey reads a string created by EncodePrivateKey and returns
// the original PrivateKey
func DecodePrivateKey(enc string) (*PrivateKey, error) {
	chunks := strings.SplitN(strings.TrimSpace(enc), "/", 2)
	if len(chunks) != 2 {
		return nil, errors.Wrap(errors.ErrInput, "invalid private key format")
	}
	data, err := hex.DecodeString(chunks[1])
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "malformed private key data: %s", err)
	}
	var key PrivateKey
	switch chunks[0] {
	case AlgoEd25519:
		key.Ed25519 = data
	case AlgoSecp256k1:
		key.Secp256k1 = data
	default:
		return nil, errors.Wrapf(errors.ErrInvalidType, "unknown algorithm %q", chunks[0])
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return &key, nil
}

// LoadPrivateKey will load a private key from a file,
// Which was previously writen by SavePrivateKey
func LoadPrivateKey(filename string) (*PrivateKey, error) {
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "cannot read private key file: %s", err)
	}
	return DecodePrivateKey(string(raw))
}

// SavePrivateKey will encode the private key and write it to the named file.
// It will refuse to overwrite a file unless force is set.
func SavePrivateKey(key *PrivateKey, filename string, force bool) error {
	if !force { // check before overwriting keys
		if _, err := os.Stat(filename); err == nil {
			return errors.Wrapf(errors.ErrDuplicate, "refusing to overwrite: %s", filename)
		}
	}

	enc, err := EncodePrivateKey(key)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filename, []byte(enc), KeyPerm)
}
