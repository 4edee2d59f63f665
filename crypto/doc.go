// Package crypto implements the cryptographic core for the peer-to-peer
// messaging protocol.
//
// This package is the thin layer above the NaCl primitive family
// (Curve25519 key agreement, XSalsa20-Poly1305 authenticated encryption,
// SHA-256/512, constant-time comparison, CSPRNG) consumed through Go's
// x/crypto packages. It fixes the wire-level invariants every higher
// protocol layer depends on: 32-byte keys, 24-byte nonces and a 16-byte
// Poly1305 MAC prepended to the ciphertext body.
//
// # Core Types
//
//   - [KeyPair]: NaCl crypto_box key pair (Curve25519)
//   - [Nonce]: 24-byte nonce with big-endian counter semantics
//   - [SharedKey]: precomputed crypto_box_beforenm output
//
// # Encryption and Decryption
//
// Authenticated public-key encryption delegates to the symmetric path
// through a precomputed shared key, so both produce identical wire bytes:
//
//	nonce, _ := crypto.GenerateNonce()
//	ciphertext, _ := crypto.Encrypt(plaintext, nonce, peerPublicKey, myPrivateKey)
//
//	shared, _ := crypto.PrecomputeSharedKey(peerPublicKey, myPrivateKey)
//	ciphertext, _ = crypto.EncryptSymmetric(plaintext, nonce, shared)
//
// # Nonce Discipline
//
// Nonces come only from the CSPRNG or from big-endian increment of a prior
// nonce. Callers own the increment between messages; no operation here
// mutates its nonce argument. A (key, nonce) pair must never encrypt two
// distinct plaintexts.
//
// All operations are pure functions of their inputs plus the injected
// random source, and are safe for concurrent use on disjoint buffers.
package crypto
