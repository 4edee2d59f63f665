package crypto

import (
	"testing"
)

// BenchmarkGenerateKeyPair measures key pair generation performance
func BenchmarkGenerateKeyPair(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := GenerateKeyPair(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerateNonce measures nonce generation performance
func BenchmarkGenerateNonce(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := GenerateNonce(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIncrementNonce measures the per-message nonce bump
func BenchmarkIncrementNonce(b *testing.B) {
	var nonce Nonce
	for i := 0; i < b.N; i++ {
		IncrementNonce(&nonce)
	}
}

// BenchmarkPrecomputeSharedKey measures the DH precomputation step
func BenchmarkPrecomputeSharedKey(b *testing.B) {
	self, err := GenerateKeyPair()
	if err != nil {
		b.Fatal(err)
	}
	peer, err := GenerateKeyPair()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := PrecomputeSharedKey(peer.Public, self.Private); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncrypt measures the asymmetric path, DH included
func BenchmarkEncrypt(b *testing.B) {
	sender, _ := GenerateKeyPair()
	receiver, _ := GenerateKeyPair()
	nonce, _ := GenerateNonce()
	message := []byte("This is a benchmark test message for encryption performance")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encrypt(message, nonce, receiver.Public, sender.Private); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncryptSymmetric measures the precomputed fast path
func BenchmarkEncryptSymmetric(b *testing.B) {
	sender, _ := GenerateKeyPair()
	receiver, _ := GenerateKeyPair()
	shared, err := PrecomputeSharedKey(receiver.Public, sender.Private)
	if err != nil {
		b.Fatal(err)
	}
	nonce, _ := GenerateNonce()
	message := []byte("This is a benchmark test message for encryption performance")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EncryptSymmetric(message, nonce, shared); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecryptSymmetric measures the precomputed open path
func BenchmarkDecryptSymmetric(b *testing.B) {
	key, _ := NewSymmetricKey()
	nonce, _ := GenerateNonce()
	ciphertext, err := EncryptSymmetric(make([]byte, 1024), nonce, key)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecryptSymmetric(ciphertext, nonce, key); err != nil {
			b.Fatal(err)
		}
	}
}
