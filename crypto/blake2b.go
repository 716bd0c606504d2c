package crypto

import "golang.org/x/crypto/blake2b"

// HashLength is the output length the session core always requests from
// Blake2b: just enough for a nonce, never a full 64-byte digest.
const HashLength = NonceLength

// Blake2b24 hashes input to a 24-byte digest. It is used by the session
// layer to derive the handshake's hashing nonce from ordered key material.
func Blake2b24(input []byte) ([HashLength]byte, error) {
	var out [HashLength]byte

	h, err := blake2b.New(HashLength, nil)
	if err != nil {
		return out, err
	}
	if _, err := h.Write(input); err != nil {
		return out, err
	}

	copy(out[:], h.Sum(nil))
	return out, nil
}

// IncrementNonce treats nonce as a little-endian unsigned integer and adds
// one, with carry, in place.
func IncrementNonce(nonce *Nonce) {
	carry := uint16(1)
	for i := 0; i < NonceLength; i++ {
		carry += uint16(nonce[i])
		nonce[i] = byte(carry)
		carry >>= 8
	}
}
