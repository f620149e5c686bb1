package escrow

import (
	"bytes"

	"github.com/iov-one/redeem"
	"github.com/iov-one/redeem/crypto"
	"github.com/iov-one/redeem/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Miner fees deducted from the input on each path.
const (
	ExecuteMinerFee int64 = 900
	CancelMinerFee  int64 = 800
	ResolveMinerFee int64 = 800
)

// Validator decides whether a proposed transaction releases the funds of
// a single contract according to a claim. A Validator is never modified
// after creation and is safe for concurrent use.
type Validator struct {
	params ContractParams

	arbiter      redeem.Address
	buyerPayout  redeem.Address
	sellerPayout redeem.Address

	logger log.Logger
}

// NewValidator returns a validator bound to a copy of given parameters.
func NewValidator(params ContractParams) (*Validator, error) {
	if err := params.Validate(); err != nil {
		return nil, errors.Wrap(err, "contract params")
	}
	p := params.Clone()
	return &Validator{
		params:       *p,
		arbiter:      p.Arbiter.Address(),
		buyerPayout:  p.BuyerPayout.Address(),
		sellerPayout: p.SellerPayout.Address(),
		logger:       log.NewNopLogger(),
	}, nil
}

// WithLogger returns a copy of the validator that logs every decision at
// debug level.
func (v *Validator) WithLogger(logger log.Logger) *Validator {
	cpy := *v
	cpy.logger = logger.With("module", "escrow")
	return &cpy
}

// Params returns a copy of the contract parameters.
func (v *Validator) Params() *ContractParams {
	return v.params.Clone()
}

// Address returns the address the contract funds are locked under.
func (v *Validator) Address() redeem.Address {
	return v.params.Address()
}

// Validate returns nil if tx is a valid release of the single contract
// input along the path chosen by the claim. Otherwise the returned error
// wraps one of the rejection errors declared by this package, or
// errors.ErrEmpty when the claim or the transaction is missing.
func (v *Validator) Validate(claim *Claim, tx *redeem.Tx) (err error) {
	defer func() { v.logDecision(claim, err) }()
	defer errors.Recover(&err)

	if claim == nil {
		return errors.ErrEmpty.New("claim")
	}
	if tx == nil {
		return errors.ErrEmpty.New("transaction")
	}
	req, err := v.requirement(claim.ReasonCode)
	if err != nil {
		return err
	}
	if len(tx.Inputs) != 1 || tx.Inputs[0] == nil {
		return ErrInputShape.Newf("want exactly one input, got %d", len(tx.Inputs))
	}
	want, err := v.outputs(req, tx.Inputs[0].Value)
	if err != nil {
		return err
	}
	if err := checkOutputs(want, tx.Outputs); err != nil {
		return err
	}
	return checkSignatures(claim, req.signers)
}

// ExpectedOutputs returns the outputs a transaction spending an input of
// given value must have to be accepted for given reason code.
func (v *Validator) ExpectedOutputs(code ReasonCode, inputValue int64) ([]*redeem.Output, error) {
	req, err := v.requirement(code)
	if err != nil {
		return nil, err
	}
	return v.outputs(req, inputValue)
}

func (v *Validator) logDecision(claim *Claim, err error) {
	path := "(none)"
	if claim != nil {
		path = claim.ReasonCode.String()
	}
	if err != nil {
		v.logger.Debug("redemption rejected", "path", path, "reason", Reason(err), "err", err.Error())
		return
	}
	v.logger.Debug("redemption accepted", "path", path)
}

// requirement is what a single redemption path demands from the
// transaction and the claim.
type requirement struct {
	minerFee int64
	payout   redeem.Address
	// payArbiter is false only on cancel, where no arbiter output exists.
	payArbiter bool
	// signers are listed in the order the signatures must appear.
	signers []signer
}

type signer struct {
	role string
	key  *crypto.PublicKey
}

func (v *Validator) requirement(code ReasonCode) (*requirement, error) {
	switch code {
	case Execute:
		return &requirement{
			minerFee:   ExecuteMinerFee,
			payout:     v.buyerPayout,
			payArbiter: true,
			signers:    []signer{{role: "seller", key: v.params.Seller}},
		}, nil
	case Cancel:
		return &requirement{
			minerFee: CancelMinerFee,
			payout:   v.sellerPayout,
			signers:  []signer{{role: "buyer", key: v.params.Buyer}},
		}, nil
	case ResolveBuyer, ResolveSeller:
		party, _ := code.Party()
		payout, key, err := v.party(party)
		if err != nil {
			return nil, err
		}
		return &requirement{
			minerFee:   ResolveMinerFee,
			payout:     payout,
			payArbiter: true,
			signers: []signer{
				{role: party.String(), key: key},
				{role: "arbiter", key: v.params.Arbiter},
			},
		}, nil
	}
	return nil, errors.Wrapf(ErrReasonCode, "unknown reason code %#x", byte(code))
}

// party returns the payout address and the signing key of p.
func (v *Validator) party(p Party) (redeem.Address, *crypto.PublicKey, error) {
	switch p {
	case Buyer:
		return v.buyerPayout, v.params.Buyer, nil
	case Seller:
		return v.sellerPayout, v.params.Seller, nil
	}
	return nil, nil, errors.Wrapf(errors.ErrHuman, "unknown party %s", p)
}

// outputs computes the canonical outputs of a path. The principal payout
// is always first, followed by the arbiter fee when the path pays one.
func (v *Validator) outputs(req *requirement, inputValue int64) ([]*redeem.Output, error) {
	fees := []int64{req.minerFee}
	if req.payArbiter {
		fees = append(fees, v.params.ArbiterFee)
	}
	spend, err := redeem.Deduct(inputValue, fees...)
	if err != nil {
		return nil, errors.Wrapf(ErrAmountMismatch, "input %d cannot cover fees: %s", inputValue, err)
	}
	out := []*redeem.Output{redeem.NewOutput(spend, req.payout)}
	if req.payArbiter {
		out = append(out, redeem.NewOutput(v.params.ArbiterFee, v.arbiter))
	}
	return out, nil
}

// checkOutputs compares the outputs at the positions the path defines.
// Outputs following them are not constrained.
func checkOutputs(want, got []*redeem.Output) error {
	if len(got) < len(want) {
		return ErrInputShape.Newf("want at least %d outputs, got %d", len(want), len(got))
	}
	for i, w := range want {
		g := got[i]
		if g == nil {
			return errors.Wrapf(ErrInputShape, "output %d missing", i)
		}
		if g.Value != w.Value {
			return errors.Wrapf(ErrAmountMismatch, "output %d: want %d, got %d", i, w.Value, g.Value)
		}
		if !g.Destination.Equals(w.Destination) {
			return errors.Wrapf(ErrDestinationMismatch, "output %d: want %s, got %s", i, w.Destination, g.Destination)
		}
	}
	return nil
}

func checkSignatures(claim *Claim, signers []signer) error {
	if len(claim.Signatures) != len(signers) {
		return errors.Wrapf(ErrSignatureInvalid, "want %d signatures, got %d", len(signers), len(claim.Signatures))
	}
	msg := claim.ReasonCode.Message()
	for i, s := range signers {
		sm := claim.Signatures[i]
		if sm == nil {
			return errors.Wrapf(ErrSignatureInvalid, "%s signature missing", s.role)
		}
		if !bytes.Equal(sm.Message, msg) {
			return errors.Wrapf(ErrReasonCode, "%s signed %q, want %q", s.role, []byte(sm.Message), msg)
		}
		if !s.key.Verify(msg, sm.Signature) {
			return errors.Wrapf(ErrSignatureInvalid, "%s signature does not verify", s.role)
		}
	}
	return nil
}
