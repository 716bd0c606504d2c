package gamenet

import (
	"bytes"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	cases := []Frame{
		{Opcode: OpcodeClientHello, Payload: []byte("thirty-two-byte-public-key-here!")},
		{Opcode: OpcodeDerivedKey, Payload: []byte{}},
		{Opcode: OpcodeDerivedKey, Payload: nil},
	}

	for _, tc := range cases {
		var buf bytes.Buffer
		if err := WriteFrame(&buf, tc); err != nil {
			t.Fatalf("WriteFrame() error: %v", err)
		}

		got, err := ReadFrame(&buf)
		if err != nil {
			t.Fatalf("ReadFrame() error: %v", err)
		}
		if got.Opcode != tc.Opcode {
			t.Errorf("Opcode = %v, want %v", got.Opcode, tc.Opcode)
		}
		if !bytes.Equal(got.Payload, tc.Payload) {
			t.Errorf("Payload = %v, want %v", got.Payload, tc.Payload)
		}
	}
}

func TestReadFrameRejectsOversizeLength(t *testing.T) {
	var buf bytes.Buffer
	// A length field that claims the maximum uint16, which exceeds
	// MaxFramePayload, with no payload bytes following.
	buf.Write([]byte{0x00, 0x01, 0xFF, 0xFF})

	if _, err := ReadFrame(&buf); err != ErrFrameTooLarge {
		t.Errorf("ReadFrame() error = %v, want ErrFrameTooLarge", err)
	}
}

func TestReadFrameShortHeader(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x00, 0x01})
	if _, err := ReadFrame(buf); err == nil {
		t.Error("ReadFrame() with truncated header should fail")
	}
}
