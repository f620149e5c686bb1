package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/redeem/crypto"
	"github.com/iov-one/redeem/gconf"
	"github.com/iov-one/redeem/x/escrow"
)

func cmdContract(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create the configuration of an escrow contract.

The configuration document is written to the output. Save it to a file and
use it with the payout and validate commands. The address funds must be
locked under is written to stderr.

Keys are given as printed by the keyaddr command, for example
ed25519/9A1F...
`)
		fl.PrintDefaults()
	}
	var (
		arbiterFl      crypto.PublicKey
		buyerFl        crypto.PublicKey
		sellerFl       crypto.PublicKey
		buyerPayoutFl  crypto.PublicKey
		sellerPayoutFl crypto.PublicKey
	)
	fl.Var(&arbiterFl, "arbiter", "Public key of the arbiter.")
	fl.Var(&buyerFl, "buyer", "Public key of the buyer.")
	fl.Var(&sellerFl, "seller", "Public key of the seller.")
	fl.Var(&buyerPayoutFl, "buyer-payout", "Public key whose address receives the buyer payout. Defaults to the buyer key.")
	fl.Var(&sellerPayoutFl, "seller-payout", "Public key whose address receives the seller payout. Defaults to the seller key.")
	feeFl := fl.Int64("fee", 0, "Arbiter fee paid on execute and dispute resolution.")
	fl.Parse(args)

	params := escrow.ContractParams{
		Arbiter:      &arbiterFl,
		Buyer:        &buyerFl,
		Seller:       &sellerFl,
		BuyerPayout:  &buyerPayoutFl,
		SellerPayout: &sellerPayoutFl,
		ArbiterFee:   *feeFl,
	}
	if params.BuyerPayout.Algorithm() == "" {
		params.BuyerPayout = params.Buyer
	}
	if params.SellerPayout.Algorithm() == "" {
		params.SellerPayout = params.Seller
	}

	opts := make(gconf.Options)
	if err := gconf.Save(opts, escrow.ConfigPackage, &params); err != nil {
		return fmt.Errorf("invalid contract: %s", err)
	}
	raw, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot serialize configuration: %s", err)
	}
	newLogger(false).Info("contract created", "address", params.Address())
	_, err = fmt.Fprintf(output, "%s\n", raw)
	return err
}
