// Package crypto implements the Primitives Adapter of the v8 session core: a
// thin, stateless wrapper over the Curve25519/XSalsa20-Poly1305/Blake2b
// primitives that the session package sequences into a handshake.
//
// # Core Types
//
//   - [KeyPair]: Curve25519 key pair (public, private) for box operations.
//   - [Nonce]: 24-byte value used as a box or secretbox nonce.
//
// # Encryption and Decryption
//
// The package supports both authenticated public-key encryption (box) and
// symmetric encryption (secretbox):
//
//	nonce, _ := crypto.GenerateNonce()
//	ciphertext, _ := crypto.SealBox(plaintext, nonce, me.Private, peerPublic)
//	plaintext, _ := crypto.OpenBox(ciphertext, nonce, peerPublic, me.Private)
//
//	ciphertext, _ := crypto.SealSecret(plaintext, nonce, sharedKey)
//	plaintext, _ := crypto.OpenSecret(ciphertext, nonce, sharedKey)
//
// # Key Generation
//
//	keyPair, err := crypto.GenerateKeyPair()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer crypto.WipeKeyPair(keyPair)
//
//	// Inject an existing private key (e.g. a fixture identity).
//	keyPair, err := crypto.FromSecretKey(secretKeyBytes)
//
// # Secure Memory Handling
//
//	defer crypto.SecureWipe(sensitiveData)
//	defer crypto.WipeKeyPair(keyPair)
//
// The [SecureWipe] function writes through runtime.KeepAlive to keep the
// compiler from optimizing the zeroing away.
//
// # Thread Safety
//
// No exported function in this package retains or mutates package-level
// state, so they are safe for concurrent use on distinct arguments.
// IncrementNonce, SecureWipe, ZeroBytes and WipeKeyPair modify the buffer
// passed to them; GenerateKeyPair and GenerateNonce read crypto/rand.
package crypto
