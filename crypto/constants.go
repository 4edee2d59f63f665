package crypto

const (
	// PublicKeySize is the size of a Curve25519 public key in bytes.
	PublicKeySize = 32

	// SecretKeySize is the size of a Curve25519 secret key in bytes.
	SecretKeySize = 32

	// SharedKeySize is the size of a precomputed crypto_box shared key in bytes.
	SharedKeySize = 32

	// NonceSize is the size of an XSalsa20 nonce in bytes.
	NonceSize = 24

	// MACSize is the size of the Poly1305 authenticator prepended to the
	// ciphertext body.
	MACSize = 16
)

// MaxEncryptionBuffer is the absolute maximum plaintext or ciphertext size
// accepted by any codec operation (1MB, prevents memory exhaustion).
const MaxEncryptionBuffer = 1024 * 1024
