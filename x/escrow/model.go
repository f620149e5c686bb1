package escrow

import (
	"bytes"
	"encoding/binary"

	"github.com/iov-one/redeem"
	"github.com/iov-one/redeem/crypto"
	"github.com/iov-one/redeem/errors"
)

// ContractParams are the parties and the fee of one escrow contract. They
// are fixed when the funds are locked and never change afterwards.
type ContractParams struct {
	// Arbiter, Buyer and Seller are the keys authorized to sign claims.
	Arbiter *crypto.PublicKey `json:"arbiter"`
	Buyer   *crypto.PublicKey `json:"buyer"`
	Seller  *crypto.PublicKey `json:"seller"`
	// BuyerPayout and SellerPayout are the keys whose address receives
	// the principal payout of the respective party.
	BuyerPayout  *crypto.PublicKey `json:"buyer_payout"`
	SellerPayout *crypto.PublicKey `json:"seller_payout"`
	// ArbiterFee is paid to the arbiter on every path but cancel.
	ArbiterFee int64 `json:"arbiter_fee"`
}

// Validate ensures all keys are present and well formed and the fee is in
// range.
func (p *ContractParams) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Arbiter", p.Arbiter.Validate())
	errs = errors.AppendField(errs, "Buyer", p.Buyer.Validate())
	errs = errors.AppendField(errs, "Seller", p.Seller.Validate())
	errs = errors.AppendField(errs, "BuyerPayout", p.BuyerPayout.Validate())
	errs = errors.AppendField(errs, "SellerPayout", p.SellerPayout.Validate())
	if p.ArbiterFee < 0 || p.ArbiterFee > redeem.MaxAmount {
		errs = errors.AppendField(errs, "ArbiterFee", errors.Wrapf(errors.ErrAmount, "%d out of range", p.ArbiterFee))
	}
	return errs
}

// Clone returns a deep copy.
func (p *ContractParams) Clone() *ContractParams {
	return &ContractParams{
		Arbiter:      p.Arbiter.Clone(),
		Buyer:        p.Buyer.Clone(),
		Seller:       p.Seller.Clone(),
		BuyerPayout:  p.BuyerPayout.Clone(),
		SellerPayout: p.SellerPayout.Clone(),
		ArbiterFee:   p.ArbiterFee,
	}
}

// Address returns the address funds are locked under. It is the hash of
// all parameters, so any change of a party or the fee results in a
// different address.
func (p *ContractParams) Address() redeem.Address {
	var buf bytes.Buffer
	for _, key := range []*crypto.PublicKey{p.Arbiter, p.Buyer, p.Seller, p.BuyerPayout, p.SellerPayout} {
		algo := key.Algorithm()
		raw := key.Bytes()
		buf.WriteByte(byte(len(algo)))
		buf.WriteString(algo)
		buf.WriteByte(byte(len(raw)))
		buf.Write(raw)
	}
	var fee [8]byte
	binary.BigEndian.PutUint64(fee[:], uint64(p.ArbiterFee))
	buf.Write(fee[:])
	return redeem.NewAddress(buf.Bytes())
}
