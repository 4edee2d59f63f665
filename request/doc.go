// Package request implements the self-contained authenticated envelope
// used for bootstrap-time peer-to-peer messages: friend requests, NAT
// pings and group-chat node discovery, sent before any session exists.
//
// A packet carries the receiver and sender identities, a fresh nonce and
// an encrypted (request id, payload) pair:
//
//	[0]      packet type marker (32)
//	[1:33]   receiver public key
//	[33:65]  sender public key
//	[65:89]  nonce
//	[89:]    16-byte MAC followed by encrypted(request id ‖ payload)
//
// The codec is stateless; replay protection, rate limiting and peer
// tables live in the caller. Every failure collapses to a single
// rejection so the API leaks no oracle about why a packet was refused.
package request
