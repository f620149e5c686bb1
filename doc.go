/*

Package redeem defines the value types shared by the escrow redemption
validator and the tooling around it: payout addresses, the shape of a proposed
spending transaction and the fee arithmetic applied to a locked balance.

The validator itself lives in the x/escrow package. Key handling is
implemented by the crypto package.

*/
package redeem
