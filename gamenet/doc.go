// Package gamenet provides the framing, opcode dispatch, and TCP listener
// that sit around one session.Session per connection. None of this is
// part of the cryptographic core: framing, opcode extraction, and the
// protocol moments at which UpdateSharedKey/UpdateNonce are invoked are
// external collaborators with named contracts, not session internals.
package gamenet
