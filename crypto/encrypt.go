package crypto

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/nacl/secretbox"
)

// NonceLength is the byte length of every nonce the session core uses,
// whether it is a random hashing nonce or a little-endian counter nonce.
const NonceLength = 24

// Nonce is a 24-byte value used as the nonce argument to a box or secretbox
// operation.
type Nonce [NonceLength]byte

// GenerateNonce creates a cryptographically secure random nonce.
func GenerateNonce() (Nonce, error) {
	var nonce Nonce
	if _, err := rand.Read(nonce[:]); err != nil {
		return Nonce{}, err
	}
	return nonce, nil
}

// MaxMessageSize bounds the plaintext SealBox and SealSecret accept.
// OpenBox and OpenSecret do not check their ciphertext against it.
const MaxMessageSize = 1024 * 1024

// SealBox is the public-key box ("pk_box_seal"): authenticated encryption
// using Curve25519 for key agreement and XSalsa20-Poly1305 for the cipher,
// in NaCl's combined (non-detached) form. plaintext may be empty.
func SealBox(plaintext []byte, nonce Nonce, senderPrivate, recipientPublic [KeyLength]byte) ([]byte, error) {
	if len(plaintext) > MaxMessageSize {
		return nil, errors.New("crypto: plaintext too large")
	}

	return box.Seal(nil, plaintext, (*[NonceLength]byte)(&nonce), &recipientPublic, &senderPrivate), nil
}

// SealSecret is the secret-key box ("sk_box_seal"): authenticated symmetric
// encryption via XSalsa20-Poly1305. golang.org/x/crypto/nacl/secretbox
// already absorbs the 16-byte zero-pad convention that some crypto_secretbox
// bindings require on their input/output buffers (see the Primitives
// Adapter contract); callers here pass and receive unpadded bytes and the
// externally observed ciphertext is unaffected either way.
func SealSecret(plaintext []byte, nonce Nonce, key [KeyLength]byte) ([]byte, error) {
	if len(plaintext) > MaxMessageSize {
		return nil, errors.New("crypto: plaintext too large")
	}

	return secretbox.Seal(nil, plaintext, (*[NonceLength]byte)(&nonce), &key), nil
}
