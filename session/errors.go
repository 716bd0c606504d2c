package session

import "errors"

// ErrInvalidArgument is returned for a null buffer, a wrong-length key or
// nonce, or an unrecognized nonce-update kind. No field is mutated before
// this error is returned.
var ErrInvalidArgument = errors.New("session: invalid argument")

// ErrInvalidState is returned when an operation is illegal for the
// session's current state: encrypt/decrypt before any shared key, an
// update issued after SecondKey, or an update to SecondKey attempted
// without both counter nonces present. No field is mutated before this
// error is returned.
var ErrInvalidState = errors.New("session: invalid state")

// ErrAuthFailure is returned when the underlying primitive rejects a
// ciphertext's authentication tag. Unlike the other two error kinds, in
// StateSecondKey the decrypt counter nonce has already been advanced by
// the time this error surfaces; the session must be discarded, never
// retried.
var ErrAuthFailure = errors.New("session: authentication failure")
