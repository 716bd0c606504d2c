package session

import "github.com/cocv8/session-core/crypto"

// NonceKind selects which of the three nonces an UpdateNonce call targets.
type NonceKind int

const (
	// NonceBlake carries the server-generated snonce consumed by the
	// three-key Blake2b derivation (InitialKey -> BlakeNonce).
	NonceBlake NonceKind = iota
	// NonceEncrypt installs the counter nonce used for outbound
	// secret-key-box traffic once the session reaches SecondKey.
	NonceEncrypt
	// NonceDecrypt installs the counter nonce used for inbound
	// secret-key-box traffic once the session reaches SecondKey.
	NonceDecrypt
)

// incrementByTwo bumps a counter nonce by two, little-endian with carry,
// matching the protocol's convention of reserving parity between
// directions. It must be called before every secret-key-box bulk
// operation, both encrypt and decrypt.
//
// The source this protocol was reverse-engineered from appears to
// reassign a local variable after incrementing, which would not propagate
// back to the caller in some language semantics. crypto.IncrementNonce
// mutates its argument in place through a pointer, so the result IS
// observable across calls here; this is load-bearing for nonce
// monotonicity and must not be "fixed" into a different convention.
func incrementByTwo(n *crypto.Nonce) {
	crypto.IncrementNonce(n)
	crypto.IncrementNonce(n)
}
