package crypto

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/nacl/box"
)

// SharedKey is a precomputed crypto_box shared key. It is valid for the
// lifetime of its (own-secret, peer-public) pair and may be cached by the
// caller to skip the Diffie-Hellman step on repeated messages. Once
// constructed it is read-only and safe to share across goroutines.
type SharedKey [SharedKeySize]byte

// PrecomputeSharedKey computes the crypto_box_beforenm shared key between a
// peer's public key and our secret key. The result feeds EncryptSymmetric
// and DecryptSymmetric and is bit-compatible with the asymmetric codec.
func PrecomputeSharedKey(peerPublicKey [PublicKeySize]byte, secretKey [SecretKeySize]byte) (SharedKey, error) {
	if isZeroKey(peerPublicKey) {
		return SharedKey{}, fmt.Errorf("invalid peer public key: all zeros")
	}

	var shared [SharedKeySize]byte
	box.Precompute(&shared, (*[PublicKeySize]byte)(&peerPublicKey), (*[SecretKeySize]byte)(&secretKey))

	logrus.WithFields(logrus.Fields{
		"function":        "PrecomputeSharedKey",
		"peer_key_prefix": fmt.Sprintf("%x", peerPublicKey[:8]),
	}).Debug("Precomputed shared key")

	return SharedKey(shared), nil
}
