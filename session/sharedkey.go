package session

import "github.com/cocv8/session-core/crypto"

// sharedKeyKind distinguishes what the overloaded shared-key slot
// currently holds. The source this protocol was reverse-engineered from
// reuses one field for the peer's static public key (states InitialKey
// and BlakeNonce) and later for a derived symmetric key (state
// SecondKey). Here the slot carries a tag recording which of the two it
// holds. Encrypt and Decrypt in session.go do not consult this tag: they
// choose the public-key or secret-key box from Session.state.
type sharedKeyKind int

const (
	sharedKeyEmpty sharedKeyKind = iota
	sharedKeyPeerPublic
	sharedKeyDerived
)

type sharedKey struct {
	kind  sharedKeyKind
	bytes [crypto.KeyLength]byte
}

func (k sharedKey) isSet() bool {
	return k.kind != sharedKeyEmpty
}
