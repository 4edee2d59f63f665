package crypto

import (
	"errors"

	"golang.org/x/crypto/nacl/secretbox"
)

// Encrypt encrypts a message to a recipient using authenticated public-key
// encryption. The output is the 16-byte Poly1305 MAC followed by the
// ciphertext body, 16 bytes longer than the plaintext. Empty plaintext is
// accepted and yields a 16-byte ciphertext.
//
// The shared key is precomputed and the symmetric codec does the work, so
// the wire bytes are identical to EncryptSymmetric over
// PrecomputeSharedKey(recipientPK, senderSK).
func Encrypt(message []byte, nonce Nonce, recipientPK [PublicKeySize]byte, senderSK [SecretKeySize]byte) ([]byte, error) {
	shared, err := PrecomputeSharedKey(recipientPK, senderSK)
	if err != nil {
		return nil, err
	}
	defer WipeSharedKey(&shared)

	return EncryptSymmetric(message, nonce, shared)
}

// EncryptSymmetric encrypts a message with a precomputed or random
// symmetric key. The nonce argument is not mutated; callers increment
// nonces themselves between messages.
func EncryptSymmetric(message []byte, nonce Nonce, key SharedKey) ([]byte, error) {
	if len(message) > MaxEncryptionBuffer {
		return nil, errors.New("message too large")
	}

	out := secretbox.Seal(nil, message, (*[NonceSize]byte)(&nonce), (*[SharedKeySize]byte)(&key))

	return out, nil
}
