package escrow

import (
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/redeem"
	"github.com/iov-one/redeem/crypto"
	"github.com/iov-one/redeem/errors"
)

// maxSignatures is the most signatures any path requires.
const maxSignatures = 2

// SignedMessage is a signature together with the message it was created
// for.
type SignedMessage struct {
	Message   redeem.HexBytes `protobuf:"bytes,1,opt,name=message,proto3" json:"message"`
	Signature redeem.HexBytes `protobuf:"bytes,2,opt,name=signature,proto3" json:"signature"`
}

func (m *SignedMessage) Reset()         { *m = SignedMessage{} }
func (m *SignedMessage) String() string { return proto.CompactTextString(m) }
func (*SignedMessage) ProtoMessage()    {}

// Claim requests the release of locked funds along the path selected by
// ReasonCode. The signature of the party comes first. On a dispute
// resolution the arbiter signature is second.
type Claim struct {
	ReasonCode ReasonCode       `json:"reason_code"`
	Signatures []*SignedMessage `json:"signatures"`
}

// NewClaim is a helper to quickly build a claim.
func NewClaim(code ReasonCode, sigs ...*SignedMessage) *Claim {
	return &Claim{ReasonCode: code, Signatures: sigs}
}

// Sign returns the signature of signer over the message bound to code.
func Sign(signer crypto.Signer, code ReasonCode) (*SignedMessage, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}
	msg := code.Message()
	sig, err := signer.Sign(msg)
	if err != nil {
		return nil, errors.Wrap(err, "sign")
	}
	return &SignedMessage{Message: msg, Signature: sig}, nil
}

// Validate makes sure that this is sensible. It does not verify any
// signature.
func (c *Claim) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "ReasonCode", c.ReasonCode.Validate())
	switch n := len(c.Signatures); {
	case n == 0:
		errs = errors.AppendField(errs, "Signatures", errors.ErrEmpty)
	case n > maxSignatures:
		errs = errors.AppendField(errs, "Signatures", errors.Wrapf(errors.ErrInput, "%d signatures", n))
	}
	for i, s := range c.Signatures {
		field := fmt.Sprintf("Signatures.%d", i)
		if s == nil {
			errs = errors.AppendField(errs, field, errors.ErrEmpty)
			continue
		}
		if len(s.Message) == 0 {
			errs = errors.AppendField(errs, field+".Message", errors.ErrEmpty)
		}
		if len(s.Signature) == 0 {
			errs = errors.AppendField(errs, field+".Signature", errors.ErrEmpty)
		}
	}
	return errs
}

// claimWire is the protobuf representation of a Claim. Protobuf has no
// single byte scalar, the reason code travels as a varint.
type claimWire struct {
	ReasonCode uint32           `protobuf:"varint,1,opt,name=reason_code,json=reasonCode,proto3"`
	Signatures []*SignedMessage `protobuf:"bytes,2,rep,name=signatures,proto3"`
}

func (m *claimWire) Reset()         { *m = claimWire{} }
func (m *claimWire) String() string { return proto.CompactTextString(m) }
func (*claimWire) ProtoMessage()    {}

// EncodeClaim serializes the claim using protobuf encoding.
func EncodeClaim(c *Claim) ([]byte, error) {
	raw, err := proto.Marshal(&claimWire{
		ReasonCode: uint32(c.ReasonCode),
		Signatures: c.Signatures,
	})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "marshal claim: %s", err)
	}
	return raw, nil
}

// DecodeClaim deserializes a claim encoded with EncodeClaim.
func DecodeClaim(raw []byte) (*Claim, error) {
	var w claimWire
	if err := proto.Unmarshal(raw, &w); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "unmarshal claim: %s", err)
	}
	if w.ReasonCode > 0xff {
		return nil, errors.Wrapf(ErrReasonCode, "reason code %d does not fit a byte", w.ReasonCode)
	}
	return &Claim{
		ReasonCode: ReasonCode(w.ReasonCode),
		Signatures: w.Signatures,
	}, nil
}
