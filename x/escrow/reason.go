package escrow

import (
	"encoding/json"
	"fmt"

	"github.com/iov-one/redeem/errors"
)

// ReasonCode selects the redemption path of a claim. The single byte is
// also the message that the required parties sign.
type ReasonCode byte

const (
	// Execute is declared by the seller when the trade is completed.
	Execute ReasonCode = 'x'
	// Cancel is declared by the buyer to return the funds.
	Cancel ReasonCode = 'c'
	// ResolveBuyer is an arbiter decision in favour of the buyer.
	ResolveBuyer ReasonCode = 'b'
	// ResolveSeller is an arbiter decision in favour of the seller.
	ResolveSeller ReasonCode = 's'
)

var reasonNames = map[ReasonCode]string{
	Execute:       "execute",
	Cancel:        "cancel",
	ResolveBuyer:  "resolve-buyer",
	ResolveSeller: "resolve-seller",
}

// ParseReasonCode accepts either the reason code character or the name of
// the path, as returned by String.
func ParseReasonCode(s string) (ReasonCode, error) {
	if len(s) == 1 {
		code := ReasonCode(s[0])
		if err := code.Validate(); err != nil {
			return 0, err
		}
		return code, nil
	}
	for code, name := range reasonNames {
		if name == s {
			return code, nil
		}
	}
	return 0, errors.Wrapf(ErrReasonCode, "unknown reason %q", s)
}

// Validate returns an error if this is not one of the declared codes.
func (r ReasonCode) Validate() error {
	if _, ok := reasonNames[r]; !ok {
		return errors.Wrapf(ErrReasonCode, "unknown reason code %#x", byte(r))
	}
	return nil
}

// Message returns the exact message that must be signed for this code.
func (r ReasonCode) Message() []byte {
	return []byte{byte(r)}
}

// Party returns the party a dispute resolution pays out to. The second
// value is false for codes that are not a dispute resolution.
func (r ReasonCode) Party() (Party, bool) {
	switch r {
	case ResolveBuyer:
		return Buyer, true
	case ResolveSeller:
		return Seller, true
	default:
		return 0, false
	}
}

func (r ReasonCode) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%#x)", byte(r))
}

// MarshalJSON encodes the code as a one character string.
func (r ReasonCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(string([]byte{byte(r)}))
}

// UnmarshalJSON accepts anything ParseReasonCode does.
func (r *ReasonCode) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot decode json: %s", err)
	}
	code, err := ParseReasonCode(s)
	if err != nil {
		return err
	}
	*r = code
	return nil
}

// Set implements flag.Value interface.
func (r *ReasonCode) Set(raw string) error {
	code, err := ParseReasonCode(raw)
	if err != nil {
		return err
	}
	*r = code
	return nil
}

// Party is one of the two trading sides of an escrow.
type Party uint8

const (
	Buyer Party = iota + 1
	Seller
)

func (p Party) String() string {
	switch p {
	case Buyer:
		return "buyer"
	case Seller:
		return "seller"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(p))
	}
}
