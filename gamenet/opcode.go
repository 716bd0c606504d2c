package gamenet

// Opcode identifies the payload shape of a frame. Opcode assignment is a
// property of the message layer, not the session core; the only opcode
// the core's own contract depends on is OpcodeDerivedKey, whose arrival
// marks the moment the processor must hand the derived symmetric key to
// the session via UpdateSharedKey.
type Opcode uint16

const (
	// OpcodeClientHello carries the client's static public key, the
	// trigger for the server side's first UpdateSharedKey call.
	OpcodeClientHello Opcode = 10101
	// OpcodeServerHello carries the server's static public key.
	OpcodeServerHello Opcode = 20100
	// OpcodeServerNonce carries the server-generated snonce consumed by
	// the three-key Blake2b derivation.
	OpcodeServerNonce Opcode = 20103
	// OpcodeDerivedKey carries the derived symmetric key k along with the
	// two counter nonces, observed at this opcode in the source protocol.
	OpcodeDerivedKey Opcode = 20104
)
