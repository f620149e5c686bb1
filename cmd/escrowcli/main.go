package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/redeem"
)

// commands is a register of all available commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is given stdin, stdout and the command line arguments
// without the program and the command name. It is the responsibility of the
// command function to parse the arguments using the flag package. A
// command function is expected to read and write only to provided input and
// output. Diagnostic messages go to os.Stderr.
//
// Each command provides a single functionality. A unix pipe is used to
// combine them. For example, a dispute resolved in favour of the seller is
// built, signed by both required parties and checked with:
//
//   $ escrowcli payout -reason s -input 101800 \
//       | escrowcli claim -reason s \
//       | escrowcli sign -key seller.key \
//       | escrowcli sign -key arbiter.key \
//       | escrowcli validate
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"claim":    cmdClaim,
	"contract": cmdContract,
	"keyaddr":  cmdKeyaddr,
	"keygen":   cmdKeygen,
	"payout":   cmdPayout,
	"sign":     cmdSign,
	"validate": cmdValidate,
	"version":  cmdVersion,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for escrow redemptions.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, redeem.Version())
	return err
}
