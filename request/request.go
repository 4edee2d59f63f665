package request

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/cryptocore/crypto"
	"github.com/opd-ai/cryptocore/limits"
)

// PacketTypeCryptoRequest is the wire marker in byte 0 of every request
// envelope; the packet dispatcher routes on it.
const PacketTypeCryptoRequest = 32

// Request id byte values carried inside the encrypted body. The value 48
// is shared between hardening and group-chat get-nodes packets; context
// outside this package disambiguates. The codec treats the byte as opaque
// beyond membership in this set.
const (
	RequestFriend             = 32
	RequestHardening          = 48
	RequestGroupChatGetNodes  = 48
	RequestGroupChatSendNodes = 49
	RequestGroupChatBroadcast = 50
	RequestNATPing            = 254
)

// ErrInvalidRequest is the single rejection returned by Handle. Wrong
// recipient, bad MAC, bad length and unknown request id are deliberately
// indistinguishable to avoid giving senders an oracle.
var ErrInvalidRequest = errors.New("invalid request packet")

// knownRequestID reports whether id is one of the reserved request bytes.
func knownRequestID(id byte) bool {
	switch id {
	case RequestFriend, RequestHardening, RequestGroupChatSendNodes,
		RequestGroupChatBroadcast, RequestNATPing:
		return true
	}
	return false
}

// Create builds a request envelope to a peer. It draws a fresh random
// nonce, encrypts the request id and payload to the recipient and
// assembles the fixed header. The payload may be empty; it is rejected
// over 918 bytes so the packet stays within the 1024-byte budget.
func Create(senderPK [crypto.PublicKeySize]byte, senderSK [crypto.SecretKeySize]byte, recipientPK [crypto.PublicKeySize]byte, payload []byte, requestID byte) ([]byte, error) {
	if err := limits.ValidateRequestPayloadSize(len(payload)); err != nil {
		return nil, err
	}

	nonce, err := crypto.GenerateNonce()
	if err != nil {
		return nil, err
	}

	plain := make([]byte, 1+len(payload))
	plain[0] = requestID
	copy(plain[1:], payload)

	encrypted, err := crypto.Encrypt(plain, nonce, recipientPK, senderSK)
	crypto.ZeroBytes(plain)
	if err != nil {
		return nil, err
	}

	packet := make([]byte, 0, limits.RequestHeaderSize+len(encrypted))
	packet = append(packet, PacketTypeCryptoRequest)
	packet = append(packet, recipientPK[:]...)
	packet = append(packet, senderPK[:]...)
	packet = append(packet, nonce[:]...)
	packet = append(packet, encrypted...)

	logrus.WithFields(logrus.Fields{
		"function":        "Create",
		"request_id":      requestID,
		"packet_length":   len(packet),
		"peer_key_prefix": fmt.Sprintf("%x", recipientPK[:8]),
	}).Debug("Created request packet")

	return packet, nil
}

// Handle validates and opens a request envelope addressed to us. On
// success it returns the sender's public key, the request id and the
// decrypted payload. Every failure is reported as ErrInvalidRequest.
func Handle(selfPK [crypto.PublicKeySize]byte, selfSK [crypto.SecretKeySize]byte, packet []byte) ([crypto.PublicKeySize]byte, byte, []byte, error) {
	var senderPK [crypto.PublicKeySize]byte

	if err := limits.ValidateRequestPacketSize(len(packet)); err != nil {
		return senderPK, 0, nil, ErrInvalidRequest
	}
	if packet[0] != PacketTypeCryptoRequest {
		return senderPK, 0, nil, ErrInvalidRequest
	}

	// Recipient check is constant time; the field is attacker controlled.
	if subtle.ConstantTimeCompare(packet[1:33], selfPK[:]) != 1 {
		return senderPK, 0, nil, ErrInvalidRequest
	}

	copy(senderPK[:], packet[33:65])

	// Refuse self-addressed requests.
	if crypto.PublicKeyEqual(senderPK, selfPK) {
		return [crypto.PublicKeySize]byte{}, 0, nil, ErrInvalidRequest
	}

	var nonce crypto.Nonce
	copy(nonce[:], packet[65:89])

	plain, err := crypto.Decrypt(packet[89:], nonce, senderPK, selfSK)
	if err != nil {
		return [crypto.PublicKeySize]byte{}, 0, nil, ErrInvalidRequest
	}

	if len(plain) < 1 {
		return [crypto.PublicKeySize]byte{}, 0, nil, ErrInvalidRequest
	}

	requestID := plain[0]
	if !knownRequestID(requestID) {
		crypto.ZeroBytes(plain)
		return [crypto.PublicKeySize]byte{}, 0, nil, ErrInvalidRequest
	}

	payload := make([]byte, len(plain)-1)
	copy(payload, plain[1:])
	crypto.ZeroBytes(plain)

	logrus.WithFields(logrus.Fields{
		"function":          "Handle",
		"request_id":        requestID,
		"payload_length":    len(payload),
		"sender_key_prefix": fmt.Sprintf("%x", senderPK[:8]),
	}).Debug("Handled request packet")

	return senderPK, requestID, payload, nil
}
