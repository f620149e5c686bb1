package redeem

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/iov-one/redeem/crypto/bech32"
	"github.com/iov-one/redeem/errors"
)

const (
	// AddressLength is the length of all addresses.
	AddressLength = 20

	// AddressHRP is the human readable part of a bech32 encoded address.
	AddressHRP = "esc"
)

// Address is a one-way digest of a serialized public key. Outputs declare
// the Address they pay to.
//
// It will be of size AddressLength
type Address []byte

// NewAddress hashes given serialized public key into an Address using
// RIPEMD160(SHA256(pubkey)).
func NewAddress(pubkey []byte) Address {
	if pubkey == nil {
		return nil
	}
	return btcutil.Hash160(pubkey)
}

// ParseAddress returns an address from its human readable form. Hex
// representation is used by default, a "hex:" or "bech32:" prefix selects
// the decoding explicitly.
func ParseAddress(enc string) (Address, error) {
	chunks := strings.SplitN(enc, ":", 2)
	format := "hex"
	if len(chunks) == 2 {
		format, enc = chunks[0], chunks[1]
	}

	// No value zero the address.
	if len(enc) == 0 {
		return nil, nil
	}

	var addr Address
	switch format {
	case "hex":
		val, err := hex.DecodeString(enc)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "cannot decode hex: %s", err)
		}
		addr = val
	case "bech32":
		hrp, payload, err := bech32.Decode(enc)
		if err != nil {
			return nil, errors.Wrap(err, "deserialize bech32")
		}
		if hrp != AddressHRP {
			return nil, errors.Wrapf(errors.ErrInput, "unexpected bech32 prefix %q", hrp)
		}
		addr = payload
	default:
		return nil, errors.Wrapf(errors.ErrInvalidType, "unknown format %q", format)
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}

// Equals checks if two addresses are the same
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Clone returns a copy that does not share the underlying array.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	cpy := make(Address, len(a))
	copy(cpy, a)
	return cpy
}

// String returns a human readable string.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Bech32 returns the address in bech32 encoding with AddressHRP prefix.
func (a Address) Bech32() (string, error) {
	return bech32.Encode(AddressHRP, a)
}

// Validate returns an error if the address is not the valid size
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address: %X", []byte(a))
	}
	return nil
}

// MarshalJSON provides a hex representation for JSON,
// to override the standard base64 []byte encoding
func (a Address) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot decode json: %s", err)
	}
	addr, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Set implements flag.Value so that an address can be used as a command
// line argument.
func (a *Address) Set(raw string) error {
	addr, err := ParseAddress(raw)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
