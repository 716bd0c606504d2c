package crypto

import (
	"errors"

	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/nacl/secretbox"
)

// ErrAuthFailure is returned by OpenBox and OpenSecret when the underlying
// primitive rejects the MAC on a ciphertext. The session layer maps this
// into its own AuthFailure error kind; it is exported here too since the
// adapter is usable standalone.
var ErrAuthFailure = errors.New("crypto: message authentication failed")

// OpenBox is the public-key box open ("pk_box_open") counterpart to SealBox.
func OpenBox(ciphertext []byte, nonce Nonce, senderPublic, recipientPrivate [KeyLength]byte) ([]byte, error) {
	if ciphertext == nil {
		return nil, errors.New("crypto: nil ciphertext")
	}

	plaintext, ok := box.Open(nil, ciphertext, (*[NonceLength]byte)(&nonce), &senderPublic, &recipientPrivate)
	if !ok {
		return nil, ErrAuthFailure
	}

	return plaintext, nil
}

// OpenSecret is the secret-key box open ("sk_box_open") counterpart to
// SealSecret. See SealSecret for the pad-convention note.
func OpenSecret(ciphertext []byte, nonce Nonce, key [KeyLength]byte) ([]byte, error) {
	if ciphertext == nil {
		return nil, errors.New("crypto: nil ciphertext")
	}

	plaintext, ok := secretbox.Open(nil, ciphertext, (*[NonceLength]byte)(&nonce), &key)
	if !ok {
		return nil, ErrAuthFailure
	}

	return plaintext, nil
}
