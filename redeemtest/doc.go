/*
Package redeemtest provides fixtures for testing code that builds or checks
escrow redemptions: fresh keys, a contract with every private key at hand
and an in-memory ledger that lets a locked output be spent only once.
*/
package redeemtest
