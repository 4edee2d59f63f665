package crypto

// Nonce is a 24-byte value used for encryption. The protocol interprets it
// as a single big-endian unsigned integer when deriving follow-up nonces,
// so both sides of a session must increment from the same baseline.
type Nonce [NonceSize]byte

// GenerateNonce creates a cryptographically secure random nonce.
func GenerateNonce() (Nonce, error) {
	var nonce Nonce
	if err := RandomBytes(nonce[:]); err != nil {
		return Nonce{}, err
	}
	return nonce, nil
}

// NewNonce returns a nonce guaranteed different from previously generated
// ones with overwhelming probability. It is a random fill: collisions in a
// 192-bit space are negligible. Callers needing strict monotonicity must
// use IncrementNonce from a stored baseline instead.
func NewNonce() (Nonce, error) {
	return GenerateNonce()
}

// IncrementNonce adds 1 to the nonce, treating it as a big-endian unsigned
// integer. The all-ones nonce wraps silently to all zeros; callers must
// ensure a wrap cannot re-collide within a key's lifetime.
func IncrementNonce(nonce *Nonce) {
	for i := NonceSize - 1; i >= 0; i-- {
		nonce[i]++
		if nonce[i] != 0 {
			break
		}
	}
}

// IncrementNonceBy adds n to the nonce, treating it as a big-endian
// unsigned integer, with carry propagating from the low-order byte upward.
func IncrementNonceBy(nonce *Nonce, n uint32) {
	carry := uint64(n)
	for i := NonceSize - 1; i >= 0 && carry > 0; i-- {
		carry += uint64(nonce[i])
		nonce[i] = byte(carry)
		carry >>= 8
	}
}
