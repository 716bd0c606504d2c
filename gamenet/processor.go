package gamenet

import (
	"github.com/cocv8/session-core/crypto"
	"github.com/cocv8/session-core/session"
)

// derivedKeyPayloadLength is k (32 bytes) followed by the encrypt and
// decrypt counter nonces (24 bytes each), the layout observed at
// OpcodeDerivedKey in the source protocol.
const derivedKeyPayloadLength = crypto.KeyLength + 2*crypto.NonceLength

// Processor sits between framed wire traffic and one connection's
// Session, performing opcode extraction and invoking the session's
// key/nonce updates at the protocol moments the message layer, not the
// core, is responsible for recognizing.
type Processor struct {
	session *session.Session
	logger  *procLogger
}

// NewProcessor wraps an already-constructed Session. The Session's
// Direction determines which side of the handshake this processor drives.
func NewProcessor(s *session.Session) *Processor {
	return &Processor{
		session: s,
		logger:  newProcLogger("Processor").withField("direction", s.Direction().String()),
	}
}

// HandleIncoming dispatches one inbound frame. Handshake opcodes update
// the session and return a nil payload; any other opcode is treated as
// application traffic and decrypted through the session.
func (p *Processor) HandleIncoming(f Frame) ([]byte, error) {
	logger := p.logger.withField("opcode", f.Opcode).withField("state", p.session.State().String())

	switch f.Opcode {
	case OpcodeClientHello, OpcodeServerHello:
		if err := p.session.UpdateSharedKey(f.Payload); err != nil {
			logger.warn("rejected peer public key")
			return nil, err
		}
		logger.info("installed peer public key")
		return nil, nil

	case OpcodeServerNonce:
		if err := p.session.UpdateNonce(f.Payload, session.NonceBlake); err != nil {
			logger.warn("rejected server nonce")
			return nil, err
		}
		logger.info("advanced to blake_nonce")
		return nil, nil

	case OpcodeDerivedKey:
		if err := p.handleDerivedKey(f.Payload); err != nil {
			logger.warn("rejected derived-key frame")
			return nil, err
		}
		logger.info("installed derived key, entered second_key")
		return nil, nil

	default:
		plaintext, err := p.session.Decrypt(f.Payload)
		if err != nil {
			logger.warn("decrypt failed")
			return nil, err
		}
		return plaintext, nil
	}
}

// handleDerivedKey splits a derived-key payload into k and the two
// counter nonces, installing the nonces before the key so the session's
// second_key transition precondition is met.
func (p *Processor) handleDerivedKey(payload []byte) error {
	if len(payload) != derivedKeyPayloadLength {
		return ErrShortDerivedKeyFrame
	}

	key := payload[:crypto.KeyLength]
	encryptNonce := payload[crypto.KeyLength : crypto.KeyLength+crypto.NonceLength]
	decryptNonce := payload[crypto.KeyLength+crypto.NonceLength:]

	if err := p.session.UpdateNonce(encryptNonce, session.NonceEncrypt); err != nil {
		return err
	}
	if err := p.session.UpdateNonce(decryptNonce, session.NonceDecrypt); err != nil {
		return err
	}
	return p.session.UpdateSharedKey(key)
}

// EncodeOutgoing encrypts plaintext through the session and wraps it in a
// frame under the given opcode.
func (p *Processor) EncodeOutgoing(opcode Opcode, plaintext []byte) (Frame, error) {
	ciphertext, err := p.session.Encrypt(plaintext)
	if err != nil {
		return Frame{}, err
	}
	return Frame{Opcode: opcode, Payload: ciphertext}, nil
}
