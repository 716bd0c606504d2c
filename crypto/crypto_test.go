package crypto

import (
	"bytes"
	"testing"
)

func TestGenerateKeyPair(t *testing.T) {
	keyPair, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error: %v", err)
	}

	if keyPair == nil {
		t.Fatal("GenerateKeyPair() returned nil key pair")
	}

	if isZeroKey(keyPair.Public) {
		t.Error("GenerateKeyPair() returned zero public key")
	}

	if isZeroKey(keyPair.Private) {
		t.Error("GenerateKeyPair() returned zero private key")
	}

	keyPair2, _ := GenerateKeyPair()
	if bytes.Equal(keyPair.Public[:], keyPair2.Public[:]) {
		t.Error("Multiple GenerateKeyPair() calls produced identical public keys")
	}
}

func TestFromSecretKey(t *testing.T) {
	cases := []struct {
		name      string
		secretKey [32]byte
		wantError bool
	}{
		{
			name:      "Valid key",
			secretKey: [32]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32},
			wantError: false,
		},
		{
			name:      "Zero key",
			secretKey: [32]byte{},
			wantError: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			keyPair, err := FromSecretKey(tc.secretKey)

			if tc.wantError && err == nil {
				t.Fatal("FromSecretKey() expected error but got nil")
			}

			if !tc.wantError {
				if err != nil {
					t.Fatalf("FromSecretKey() unexpected error: %v", err)
				}
				if keyPair == nil {
					t.Fatal("FromSecretKey() returned nil key pair")
				}
				if isZeroKey(keyPair.Public) {
					t.Error("FromSecretKey() derived a zero public key")
				}
				if !bytes.Equal(keyPair.Private[:], tc.secretKey[:]) {
					t.Error("FromSecretKey() modified the private key")
				}
			}
		})
	}
}

func TestGenerateNonce(t *testing.T) {
	nonce, err := GenerateNonce()
	if err != nil {
		t.Fatalf("GenerateNonce() error: %v", err)
	}

	zeroNonce := Nonce{}
	if bytes.Equal(nonce[:], zeroNonce[:]) {
		t.Error("GenerateNonce() returned zero nonce")
	}

	nonce2, _ := GenerateNonce()
	if bytes.Equal(nonce[:], nonce2[:]) {
		t.Error("Multiple GenerateNonce() calls produced identical nonces")
	}
}

func TestSealOpenBox(t *testing.T) {
	sender, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("failed to generate sender key pair: %v", err)
	}
	recipient, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("failed to generate recipient key pair: %v", err)
	}
	nonce, err := GenerateNonce()
	if err != nil {
		t.Fatalf("failed to generate nonce: %v", err)
	}

	cases := []struct {
		name    string
		message []byte
	}{
		{"normal message", []byte("Hello, this is a test message!")},
		{"empty message", []byte{}},
		{"binary data", []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD}},
		{"long message", bytes.Repeat([]byte("A"), 1024)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ciphertext, err := SealBox(tc.message, nonce, sender.Private, recipient.Public)
			if err != nil {
				t.Fatalf("SealBox() error: %v", err)
			}

			plaintext, err := OpenBox(ciphertext, nonce, sender.Public, recipient.Private)
			if err != nil {
				t.Fatalf("OpenBox() error: %v", err)
			}

			if !bytes.Equal(tc.message, plaintext) {
				t.Errorf("OpenBox() = %v, want %v", plaintext, tc.message)
			}
		})
	}

	t.Run("tampered ciphertext fails auth", func(t *testing.T) {
		ciphertext, err := SealBox([]byte("valid message"), nonce, sender.Private, recipient.Public)
		if err != nil {
			t.Fatalf("SealBox() error: %v", err)
		}
		ciphertext[0] ^= 0xFF

		if _, err := OpenBox(ciphertext, nonce, sender.Public, recipient.Private); err != ErrAuthFailure {
			t.Errorf("OpenBox() with tampered ciphertext = %v, want ErrAuthFailure", err)
		}
	})

	t.Run("nil ciphertext rejected", func(t *testing.T) {
		if _, err := OpenBox(nil, nonce, sender.Public, recipient.Private); err == nil {
			t.Error("OpenBox(nil) should fail")
		}
	})
}

func TestSealOpenSecret(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}
	nonce, err := GenerateNonce()
	if err != nil {
		t.Fatalf("failed to generate nonce: %v", err)
	}

	cases := []struct {
		name    string
		message []byte
	}{
		{"normal message", []byte("Hello, this is a test message!")},
		{"empty message", []byte{}},
		{"binary data", []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD}},
		{"long message", bytes.Repeat([]byte("A"), 1024)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ciphertext, err := SealSecret(tc.message, nonce, key)
			if err != nil {
				t.Fatalf("SealSecret() error: %v", err)
			}

			plaintext, err := OpenSecret(ciphertext, nonce, key)
			if err != nil {
				t.Fatalf("OpenSecret() error: %v", err)
			}

			if !bytes.Equal(tc.message, plaintext) {
				t.Errorf("OpenSecret() = %v, want %v", plaintext, tc.message)
			}
		})
	}

	t.Run("tampered ciphertext fails auth", func(t *testing.T) {
		ciphertext, err := SealSecret([]byte("valid message"), nonce, key)
		if err != nil {
			t.Fatalf("SealSecret() error: %v", err)
		}
		ciphertext[0] ^= 0xFF

		if _, err := OpenSecret(ciphertext, nonce, key); err != ErrAuthFailure {
			t.Errorf("OpenSecret() with tampered ciphertext = %v, want ErrAuthFailure", err)
		}
	})
}

func TestBlake2b24Deterministic(t *testing.T) {
	input := []byte("client-public||server-public")

	h1, err := Blake2b24(input)
	if err != nil {
		t.Fatalf("Blake2b24() error: %v", err)
	}
	h2, err := Blake2b24(input)
	if err != nil {
		t.Fatalf("Blake2b24() error: %v", err)
	}

	if h1 != h2 {
		t.Error("Blake2b24() is not deterministic for identical input")
	}

	other, err := Blake2b24([]byte("different input"))
	if err != nil {
		t.Fatalf("Blake2b24() error: %v", err)
	}
	if h1 == other {
		t.Error("Blake2b24() produced identical hashes for different input")
	}
}

func TestIncrementNonce(t *testing.T) {
	var n Nonce
	IncrementNonce(&n)

	want := Nonce{1}
	if n != want {
		t.Errorf("IncrementNonce() from zero = %v, want %v", n, want)
	}

	// Carry propagation: 0xFF + 1 rolls to 0x00 and carries into the next byte.
	n = Nonce{0xFF}
	IncrementNonce(&n)
	want = Nonce{0x00, 0x01}
	if n != want {
		t.Errorf("IncrementNonce() carry = %v, want %v", n, want)
	}
}
