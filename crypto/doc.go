/*
Package crypto implements the public keys of escrow parties, signature
verification and signing.

Two algorithms are supported. ed25519 keys sign the raw message. secp256k1
keys produce DER encoded ECDSA signatures over the SHA-256 digest of the
message, following the data signature convention of bitcoin-like chains.

A public key is identified on chain by its Address, the hash of its
serialized form (see redeem.NewAddress).
*/
package crypto
