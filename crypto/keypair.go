// Package crypto implements the Primitives Adapter for the v8 session core:
// a thin, stateless wrapper over Curve25519 authenticated public-key
// encryption, XSalsa20-Poly1305 secret-key encryption, and Blake2b hashing.
//
// No exported function here keeps state between calls. State,
// sequencing, and the handshake itself live in the session package; this
// package never remembers anything between calls.
//
// Example:
//
//	keys, err := crypto.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Public key:", hex.EncodeToString(keys.Public[:]))
package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

// KeyLength is the byte length of a Curve25519 public or private key.
const KeyLength = 32

// KeyPair is an exclusively owned Curve25519 key pair.
type KeyPair struct {
	Public  [KeyLength]byte
	Private [KeyLength]byte
}

// GenerateKeyPair creates a new random Curve25519 key pair.
func GenerateKeyPair() (*KeyPair, error) {
	logger := NewLogger("GenerateKeyPair")

	publicKey, privateKey, err := box.GenerateKey(rand.Reader)
	if err != nil {
		logger.WithError(err, "rand_failure", "generate_keypair").Error("failed to generate key pair")
		return nil, err
	}

	logger.Debug("generated new key pair")
	return &KeyPair{
		Public:  *publicKey,
		Private: *privateKey,
	}, nil
}

// FromSecretKey builds a KeyPair from an existing private key, deriving the
// matching public key via the Curve25519 base-point multiplication. This is
// the injection path used when a session is constructed with a caller-
// supplied identity (e.g. the well-known standard keypair fixture) rather
// than a freshly generated one.
func FromSecretKey(secretKey [KeyLength]byte) (*KeyPair, error) {
	if isZeroKey(secretKey) {
		return nil, errors.New("crypto: invalid private key: all zeros")
	}

	var publicKey [KeyLength]byte
	curve25519.ScalarBaseMult(&publicKey, &secretKey)

	return &KeyPair{
		Public:  publicKey,
		Private: secretKey,
	}, nil
}

// isZeroKey reports whether key consists entirely of zero bytes.
func isZeroKey(key [KeyLength]byte) bool {
	for _, b := range key {
		if b != 0 {
			return false
		}
	}
	return true
}
