package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/redeem"
	"github.com/iov-one/redeem/crypto"
	"github.com/iov-one/redeem/x/escrow"
)

func cmdPayout(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction that spends the locked funds along the path selected by
the reason code.

The outputs are computed from the contract configuration. The transaction
is written to the output.
`)
		fl.PrintDefaults()
	}
	var (
		configFl = fl.String("config", defaultConfigPath(),
			"Path to the contract configuration file. You can use ESCROWCLI_CONFIG environment variable to set it.")
		inputFl = fl.Int64("input", 0, "Value of the locked output that is spent.")
		reasonFl = escrow.Execute
	)
	fl.Var(&reasonFl, "reason", "Reason code: x (execute), c (cancel), b (resolve-buyer) or s (resolve-seller).")
	fl.Parse(args)

	v, err := loadValidator(*configFl)
	if err != nil {
		return fmt.Errorf("cannot load contract: %s", err)
	}
	outs, err := v.ExpectedOutputs(reasonFl, *inputFl)
	if err != nil {
		return fmt.Errorf("cannot compute outputs: %s", err)
	}
	return writeTx(output, redeem.NewTx(*inputFl, outs...))
}

func cmdClaim(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a transaction from the input and attach a claim without signatures.

Use the sign command to add the signatures the path requires.
`)
		fl.PrintDefaults()
	}
	reasonFl := escrow.Execute
	fl.Var(&reasonFl, "reason", "Reason code: x (execute), c (cancel), b (resolve-buyer) or s (resolve-seller).")
	fl.Parse(args)

	tx, err := readTx(input)
	if err != nil {
		return err
	}
	return writeRedemption(output, tx, escrow.NewClaim(reasonFl))
}

func cmdSign(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a transaction and a claim from the input and append the signature of
the reason code.

Signatures must be added in order: the buyer or the seller first, the
arbiter second.
`)
		fl.PrintDefaults()
	}
	keyPathFl := fl.String("key", defaultKeyPath(),
		"Path to the private key file that the claim should be signed with. You can use ESCROWCLI_PRIV_KEY environment variable to set it.")
	fl.Parse(args)

	key, err := crypto.LoadPrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}
	tx, claim, err := readRedemption(input)
	if err != nil {
		return err
	}
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %s", err)
	}
	sig, err := escrow.Sign(key, claim.ReasonCode)
	if err != nil {
		return fmt.Errorf("cannot sign: %s", err)
	}
	claim.Signatures = append(claim.Signatures, sig)
	if err := claim.Validate(); err != nil {
		return fmt.Errorf("invalid claim: %s", err)
	}
	return writeRedemption(output, tx, claim)
}

func cmdValidate(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a transaction and a claim from the input and check if the transaction
is a valid redemption of the contract.

"accepted" is written to the output on success. A rejection is returned as
an error naming the failed check.
`)
		fl.PrintDefaults()
	}
	var (
		configFl = fl.String("config", defaultConfigPath(),
			"Path to the contract configuration file. You can use ESCROWCLI_CONFIG environment variable to set it.")
		verboseFl = fl.Bool("v", false, "Log every check decision.")
	)
	fl.Parse(args)

	logger := newLogger(*verboseFl)
	v, err := loadValidator(*configFl)
	if err != nil {
		return fmt.Errorf("cannot load contract: %s", err)
	}
	v = v.WithLogger(logger)
	logger.Info("contract loaded", "address", v.Address())

	tx, claim, err := readRedemption(input)
	if err != nil {
		return err
	}
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %s", err)
	}
	if err := claim.Validate(); err != nil {
		return fmt.Errorf("invalid claim: %s", err)
	}
	if err := v.Validate(claim, tx); err != nil {
		return fmt.Errorf("rejected (%s): %s", escrow.Reason(err), err)
	}
	_, err = fmt.Fprintln(output, "accepted")
	return err
}
