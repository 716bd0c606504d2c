package session

import "github.com/cocv8/session-core/crypto"

// orderKeys returns (clientPublic, serverPublic) regardless of which side
// is computing the hash: the server-role session places the peer's key
// (the client's) first only in the sense that its "our" key is the
// server's, so client-first/server-second still holds; the client-role
// session places its own key first. Both sides end up hashing the same
// two keys in the same order.
func orderKeys(direction Direction, ourPublic, peerPublic [crypto.KeyLength]byte) (clientPublic, serverPublic [crypto.KeyLength]byte) {
	if direction == Client {
		return ourPublic, peerPublic
	}
	return peerPublic, ourPublic
}

// DeriveTwoKeyNonce exposes the two-key Blake2b derivation for offline
// tooling (fixture generation, interoperation testing) that needs to
// reproduce a blake_nonce without constructing a full Session.
func DeriveTwoKeyNonce(direction Direction, ourPublic, peerPublic [crypto.KeyLength]byte) (crypto.Nonce, error) {
	return deriveTwoKeyNonce(direction, ourPublic, peerPublic)
}

// DeriveThreeKeyNonce exposes the three-key Blake2b derivation for the
// same offline-tooling use case as DeriveTwoKeyNonce.
func DeriveThreeKeyNonce(direction Direction, ourPublic, peerPublic [crypto.KeyLength]byte, snonce crypto.Nonce) (crypto.Nonce, error) {
	return deriveThreeKeyNonce(direction, ourPublic, peerPublic, snonce)
}

// deriveTwoKeyNonce implements the two-key Blake2b nonce form entered when
// transitioning None -> InitialKey: Blake2b(client_public || server_public).
func deriveTwoKeyNonce(direction Direction, ourPublic, peerPublic [crypto.KeyLength]byte) (crypto.Nonce, error) {
	clientPK, serverPK := orderKeys(direction, ourPublic, peerPublic)

	buf := make([]byte, 0, 2*crypto.KeyLength)
	buf = append(buf, clientPK[:]...)
	buf = append(buf, serverPK[:]...)

	digest, err := crypto.Blake2b24(buf)
	if err != nil {
		return crypto.Nonce{}, err
	}
	return crypto.Nonce(digest), nil
}

// deriveThreeKeyNonce implements the three-key Blake2b nonce form entered
// when transitioning InitialKey -> BlakeNonce:
// Blake2b(snonce || client_public || server_public).
func deriveThreeKeyNonce(direction Direction, ourPublic, peerPublic [crypto.KeyLength]byte, snonce crypto.Nonce) (crypto.Nonce, error) {
	clientPK, serverPK := orderKeys(direction, ourPublic, peerPublic)

	buf := make([]byte, 0, crypto.NonceLength+2*crypto.KeyLength)
	buf = append(buf, snonce[:]...)
	buf = append(buf, clientPK[:]...)
	buf = append(buf, serverPK[:]...)

	digest, err := crypto.Blake2b24(buf)
	if err != nil {
		return crypto.Nonce{}, err
	}
	return crypto.Nonce(digest), nil
}
