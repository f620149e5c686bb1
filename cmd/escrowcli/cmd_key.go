package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/redeem/crypto"
)

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key.

When successful a new file containing the hex encoded private key is
created. This command fails if the private key file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use ESCROWCLI_PRIV_KEY environment variable to set it.")
		algoFl = fl.String("algo", crypto.AlgoEd25519,
			"Signature algorithm of the key, either "+crypto.AlgoEd25519+" or "+crypto.AlgoSecp256k1+".")
	)
	fl.Parse(args)

	var key *crypto.PrivateKey
	switch *algoFl {
	case crypto.AlgoEd25519:
		key = crypto.GenPrivKeyEd25519()
	case crypto.AlgoSecp256k1:
		key = crypto.GenPrivKeySecp256k1()
	default:
		return fmt.Errorf("unknown algorithm %q", *algoFl)
	}

	// Do not allow to overwrite an existing private key. User must
	// manually delete it first.
	if err := crypto.SavePrivateKey(key, *keyPathFl, false); err != nil {
		return fmt.Errorf("cannot save private key: %s", err)
	}
	_, err := fmt.Fprintln(output, key.PublicKey())
	return err
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the public key and the address associated with your private key.

The public key is printed in the form accepted by the contract command.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use ESCROWCLI_PRIV_KEY environment variable to set it.")
		bech32Fl = fl.Bool("bech32", false, "Print the address using bech32 encoding instead of hex.")
	)
	fl.Parse(args)

	key, err := crypto.LoadPrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}
	pub := key.PublicKey()
	addr := pub.Address().String()
	if *bech32Fl {
		if addr, err = pub.Address().Bech32(); err != nil {
			return fmt.Errorf("cannot serialize to bech32: %s", err)
		}
	}
	_, err = fmt.Fprintf(output, "%s\n%s\n", pub, addr)
	return err
}
