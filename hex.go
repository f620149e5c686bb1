package redeem

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/iov-one/redeem/errors"
)

// HexBytes is a byte slice that is represented in JSON as an upper case hex
// string instead of the default base64.
type HexBytes []byte

func (b HexBytes) String() string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *HexBytes) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrapf(errors.ErrInput, "parse string: %s", err)
	}
	val, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot decode hex: %s", err)
	}
	*b = val
	return nil
}
