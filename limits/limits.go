package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxRequestPacket is the largest request envelope allowed on the wire.
	MaxRequestPacket = 1024

	// RequestHeaderSize is the plaintext header preceding the ciphertext:
	// 1 packet-type byte, two 32-byte public keys and a 24-byte nonce.
	RequestHeaderSize = 1 + 32 + 32 + 24

	// EncryptionOverhead is the Poly1305 MAC prepended to the ciphertext
	// body by the box codec.
	EncryptionOverhead = 16

	// MinRequestPacket is the floor below which a packet cannot possibly
	// carry a header plus an authenticated body.
	MinRequestPacket = 90

	// MaxRequestPayload is the largest payload a request envelope can
	// carry: the packet budget minus header, MAC and the request-id byte.
	MaxRequestPayload = MaxRequestPacket - RequestHeaderSize - EncryptionOverhead - 1
)

var (
	// ErrPacketTooSmall indicates a packet below the envelope floor.
	ErrPacketTooSmall = errors.New("packet too small")

	// ErrPacketTooLarge indicates a packet or payload over budget.
	ErrPacketTooLarge = errors.New("packet too large")
)

// ValidateRequestPacketSize checks a wire packet against the envelope
// bounds. The error carries the offending and limiting sizes.
func ValidateRequestPacketSize(length int) error {
	if length < MinRequestPacket {
		return fmt.Errorf("%w: %d bytes, minimum %d", ErrPacketTooSmall, length, MinRequestPacket)
	}
	if length > MaxRequestPacket {
		return fmt.Errorf("%w: %d bytes, maximum %d", ErrPacketTooLarge, length, MaxRequestPacket)
	}
	return nil
}

// ValidateRequestPayloadSize checks an outgoing payload against the
// envelope budget before encryption.
func ValidateRequestPayloadSize(length int) error {
	if length > MaxRequestPayload {
		return fmt.Errorf("%w: payload %d bytes, maximum %d", ErrPacketTooLarge, length, MaxRequestPayload)
	}
	return nil
}
