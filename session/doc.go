// Package session implements the v8 handshake and bulk-transport session
// core: the state machine, key state, and nonce lattice that transform a
// directional byte stream between plaintext and on-the-wire ciphertext.
//
// A Session advances through four states as each side learns the other's
// public key and exchanges nonces:
//
//	None -> InitialKey -> (BlakeNonce ->)? SecondKey
//
// In None no traffic can flow. In InitialKey and BlakeNonce, Encrypt and
// Decrypt use the public-key box keyed by the local private key and the
// peer's static public key, with a Blake2b-derived nonce. In SecondKey,
// both sides have installed a symmetric key derived during the handshake
// and traffic flows through the secret-key box keyed by that symmetric key,
// with independent little-endian counter nonces per direction.
//
// A Session is not internally synchronized (see the concurrency note on
// [Session]): callers that share one Session across
// goroutines must serialize Encrypt/Decrypt/UpdateSharedKey/UpdateNonce
// calls themselves, and must preserve the wire order of encrypted frames
// in SecondKey, since that order is exactly what the counter nonces
// encode.
package session
