/*

Package escrow implements the redemption validator of a three party escrow.

> An escrow is a financial arrangement where a third party holds and regulates
> payment of the funds required for two parties involved in a given transaction.

Funds are locked under a single spending condition controlled by a buyer, a
seller and an arbiter. A transaction spending the locked balance is accepted
only if it follows one of the redemption paths below. The path is selected by
the reason code of the claim, which is also the exact message every required
party signs.

	code  path              signed by         pays
	'x'   execute           seller            buyer payout, arbiter fee
	'c'   cancel            buyer             seller payout
	'b'   resolve (buyer)   buyer, arbiter    buyer payout, arbiter fee
	's'   resolve (seller)  seller, arbiter   seller payout, arbiter fee

The miner fee deducted from the locked balance is 900 on execute and 800 on
the other paths. Outputs are checked by position: output 0 is the principal
payout and output 1, when present, is the arbiter fee.

There is no timeout path. If no pair of parties cooperates, the funds stay
locked.

*/
package escrow
