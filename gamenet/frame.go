package gamenet

import (
	"encoding/binary"
	"errors"
	"io"
)

// MaxFramePayload bounds a single frame's payload well below the 16-bit
// length field's range, so a frame claiming an implausibly large payload
// is rejected before a buffer is allocated for it.
const MaxFramePayload = 1 << 14

// ErrFrameTooLarge is returned when a frame's declared payload length
// exceeds MaxFramePayload.
var ErrFrameTooLarge = errors.New("gamenet: frame payload too large")

// Frame is one length-prefixed message on the wire: a two-byte opcode, a
// two-byte big-endian payload length, and the payload itself (plaintext
// before a shared key is established, ciphertext once the session has
// one).
type Frame struct {
	Opcode  Opcode
	Payload []byte
}

// ReadFrame reads one frame from r. It blocks until a full frame has
// arrived or the reader errors.
func ReadFrame(r io.Reader) (Frame, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Frame{}, err
	}

	opcode := Opcode(binary.BigEndian.Uint16(header[0:2]))
	length := binary.BigEndian.Uint16(header[2:4])
	if int(length) > MaxFramePayload {
		return Frame{}, ErrFrameTooLarge
	}

	payload := make([]byte, length)
	if length > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return Frame{}, err
		}
	}

	return Frame{Opcode: opcode, Payload: payload}, nil
}

// WriteFrame serializes f to w as opcode || big-endian length || payload.
func WriteFrame(w io.Writer, f Frame) error {
	if len(f.Payload) > MaxFramePayload {
		return ErrFrameTooLarge
	}

	var header [4]byte
	binary.BigEndian.PutUint16(header[0:2], uint16(f.Opcode))
	binary.BigEndian.PutUint16(header[2:4], uint16(len(f.Payload)))

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if len(f.Payload) == 0 {
		return nil
	}
	_, err := w.Write(f.Payload)
	return err
}
