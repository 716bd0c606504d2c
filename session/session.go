package session

import (
	"errors"
	"fmt"

	"github.com/cocv8/session-core/crypto"
)

// KeyPair is the session core's view of a Curve25519 identity: an
// exclusively owned (public, private) pair, immutable for the life of the
// session.
type KeyPair = crypto.KeyPair

// Session is the v8 handshake and bulk-transport core. It holds a local
// key pair, a direction role, the nonce lattice, and the overloaded
// shared-key slot, and sequences them through the four-state machine
// described in the package doc.
//
// Session performs no I/O and suspends on nothing; every method is
// synchronous and returns in bounded time. It is NOT internally
// synchronized: within one Session, Encrypt calls must be totally
// ordered with respect to each other, Decrypt calls must consume
// ciphertexts in the order they arrive from the peer, and neither may
// overlap a key/nonce update. Concurrent callers must serialize
// externally — see the gamenet package for the per-connection
// serialization this implies.
type Session struct {
	direction Direction
	keyPair   *KeyPair

	shared     sharedKey
	blakeNonce crypto.Nonce

	encryptNonce *crypto.Nonce
	decryptNonce *crypto.Nonce

	state State
}

// New constructs a Session in StateNone for the given Direction. If
// keyPair is nil, a fresh one is generated. The Direction and KeyPair are
// immutable for the rest of the session's life.
func New(direction Direction, keyPair *KeyPair) (*Session, error) {
	logger := newLogger("New").withField("direction", direction.String())

	if keyPair == nil {
		generated, err := crypto.GenerateKeyPair()
		if err != nil {
			logger.warn("failed to generate key pair")
			return nil, err
		}
		keyPair = generated
	}

	logger.debug("session constructed in state none")
	return &Session{
		direction: direction,
		keyPair:   keyPair,
		state:     StateNone,
	}, nil
}

// Direction returns the session's fixed role.
func (s *Session) Direction() Direction { return s.direction }

// PublicKey returns the session's own static public key.
func (s *Session) PublicKey() [crypto.KeyLength]byte { return s.keyPair.Public }

// State returns the session's current state.
func (s *Session) State() State { return s.state }

// UpdateSharedKey advances the key half of the state machine. From
// StateNone it learns the peer's static public key and transitions to
// StateInitialKey, deriving the two-key Blake2b nonce. From StateInitialKey
// or StateBlakeNonce it installs a derived symmetric key k and transitions
// to StateSecondKey, provided both counter nonces are already present. It
// is illegal from StateSecondKey.
func (s *Session) UpdateSharedKey(key []byte) error {
	logger := newLogger("UpdateSharedKey").withField("state", s.state.String())

	if len(key) != crypto.KeyLength {
		logger.warn("rejected key of wrong length")
		return fmt.Errorf("%w: shared key must be %d bytes, got %d", ErrInvalidArgument, crypto.KeyLength, len(key))
	}
	var keyArr [crypto.KeyLength]byte
	copy(keyArr[:], key)

	switch s.state {
	case StateNone:
		nonce, err := deriveTwoKeyNonce(s.direction, s.keyPair.Public, keyArr)
		if err != nil {
			return err
		}
		s.shared = sharedKey{kind: sharedKeyPeerPublic, bytes: keyArr}
		s.blakeNonce = nonce
		s.state = StateInitialKey
		logger.info("learned peer public key, entered initial_key")
		return nil

	case StateInitialKey, StateBlakeNonce:
		if s.encryptNonce == nil || s.decryptNonce == nil {
			logger.warn("rejected second-key update: counter nonces not both present")
			return fmt.Errorf("%w: both counter nonces must be set before installing the derived key", ErrInvalidState)
		}
		s.shared = sharedKey{kind: sharedKeyDerived, bytes: keyArr}
		s.state = StateSecondKey
		logger.info("installed derived key, entered second_key")
		return nil

	default: // StateSecondKey
		logger.warn("rejected update in terminal state")
		return fmt.Errorf("%w: shared key cannot be updated once in second_key", ErrInvalidState)
	}
}

// UpdateNonce installs or re-derives one of the three nonces the session
// holds, per kind. NonceBlake is only a state-advancing transition from
// StateInitialKey (to StateBlakeNonce); calling it again while already in
// StateBlakeNonce is a no-op. NonceEncrypt and NonceDecrypt merely store
// the given counter nonce and are legal in StateInitialKey or
// StateBlakeNonce.
func (s *Session) UpdateNonce(n []byte, kind NonceKind) error {
	logger := newLogger("UpdateNonce").withField("state", s.state.String()).withField("kind", kind)

	if len(n) != crypto.NonceLength {
		logger.warn("rejected nonce of wrong length")
		return fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrInvalidArgument, crypto.NonceLength, len(n))
	}
	var nonceArr crypto.Nonce
	copy(nonceArr[:], n)

	switch kind {
	case NonceBlake:
		switch s.state {
		case StateInitialKey:
			derived, err := deriveThreeKeyNonce(s.direction, s.keyPair.Public, s.shared.bytes, nonceArr)
			if err != nil {
				return err
			}
			s.blakeNonce = derived
			s.state = StateBlakeNonce
			logger.info("re-derived blake nonce from snonce, entered blake_nonce")
			return nil
		case StateBlakeNonce:
			return nil
		default:
			logger.warn("rejected blake-nonce update outside initial_key/blake_nonce")
			return fmt.Errorf("%w: blake-nonce update is only legal from initial_key", ErrInvalidState)
		}

	case NonceEncrypt:
		if s.state != StateInitialKey && s.state != StateBlakeNonce {
			logger.warn("rejected encrypt-nonce update outside initial_key/blake_nonce")
			return fmt.Errorf("%w: encrypt-nonce update is only legal in initial_key or blake_nonce", ErrInvalidState)
		}
		s.encryptNonce = &nonceArr
		logger.debug("installed encrypt counter nonce")
		return nil

	case NonceDecrypt:
		if s.state != StateInitialKey && s.state != StateBlakeNonce {
			logger.warn("rejected decrypt-nonce update outside initial_key/blake_nonce")
			return fmt.Errorf("%w: decrypt-nonce update is only legal in initial_key or blake_nonce", ErrInvalidState)
		}
		s.decryptNonce = &nonceArr
		logger.debug("installed decrypt counter nonce")
		return nil

	default:
		return fmt.Errorf("%w: unrecognized nonce kind %d", ErrInvalidArgument, kind)
	}
}

// Encrypt transforms plaintext into on-the-wire ciphertext. plaintext may
// be empty. In StateInitialKey or StateBlakeNonce it uses the public-key
// box keyed by the local private key and the peer's static public key,
// nonced by blakeNonce. In StateSecondKey it bumps the encrypt counter
// nonce by two and uses the secret-key box keyed by the derived symmetric
// key.
func (s *Session) Encrypt(plaintext []byte) ([]byte, error) {
	switch s.state {
	case StateNone:
		return nil, fmt.Errorf("%w: no shared key established", ErrInvalidState)

	case StateInitialKey, StateBlakeNonce:
		return crypto.SealBox(plaintext, s.blakeNonce, s.keyPair.Private, s.shared.bytes)

	default: // StateSecondKey
		incrementByTwo(s.encryptNonce)
		return crypto.SealSecret(plaintext, *s.encryptNonce, s.shared.bytes)
	}
}

// Decrypt is Encrypt's inverse. An authentication failure from the
// underlying primitive is surfaced as ErrAuthFailure; by the time it
// surfaces in StateSecondKey the decrypt counter nonce has already been
// advanced, by design — the session must be discarded, not retried.
func (s *Session) Decrypt(ciphertext []byte) ([]byte, error) {
	if ciphertext == nil {
		return nil, fmt.Errorf("%w: nil ciphertext", ErrInvalidArgument)
	}

	switch s.state {
	case StateNone:
		return nil, fmt.Errorf("%w: no shared key established", ErrInvalidState)

	case StateInitialKey, StateBlakeNonce:
		plaintext, err := crypto.OpenBox(ciphertext, s.blakeNonce, s.shared.bytes, s.keyPair.Private)
		return plaintext, mapAuthFailure(err)

	default: // StateSecondKey
		incrementByTwo(s.decryptNonce)
		plaintext, err := crypto.OpenSecret(ciphertext, *s.decryptNonce, s.shared.bytes)
		return plaintext, mapAuthFailure(err)
	}
}

func mapAuthFailure(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, crypto.ErrAuthFailure) {
		return ErrAuthFailure
	}
	return err
}

// Close securely wipes the session's key material. The caller must not
// use the Session again afterward. It is safe to call Close on a session
// that never left StateNone.
func (s *Session) Close() {
	_ = crypto.WipeKeyPair(s.keyPair)
	crypto.ZeroBytes(s.shared.bytes[:])
	crypto.ZeroBytes(s.blakeNonce[:])
	if s.encryptNonce != nil {
		crypto.ZeroBytes(s.encryptNonce[:])
	}
	if s.decryptNonce != nil {
		crypto.ZeroBytes(s.decryptNonce[:])
	}
}
