package protocol

import (
	"errors"
	"testing"

	"github.com/chintanlad10/cubesolver"
)

// frame builds a valid message frame around type and payload.
func frame(msgType byte, payload []byte) []byte {
	length := byte(len(payload) + 4)
	data := []byte{0x2A, length, msgType}
	data = append(data, payload...)

	var checksum byte
	for _, b := range data {
		checksum += b
	}
	return append(data, checksum, 0x0D, 0x0A)
}

func TestParseMessage(t *testing.T) {
	msg, err := ParseMessage(frame(MsgTypeRotation, []byte{0x08, 0x00}))
	if err != nil {
		t.Fatalf("ParseMessage: %v", err)
	}
	if msg.Type != MsgTypeRotation {
		t.Errorf("Type = 0x%02X, want 0x%02X", msg.Type, MsgTypeRotation)
	}
	if len(msg.Payload) != 2 || msg.Payload[0] != 0x08 {
		t.Errorf("Payload = %v", msg.Payload)
	}
}

func TestParseMessage_BadChecksum(t *testing.T) {
	data := frame(MsgTypeRotation, []byte{0x08, 0x00})
	data[len(data)-3]++ // corrupt the checksum
	if _, err := ParseMessage(data); !errors.Is(err, ErrInvalidChecksum) {
		t.Errorf("err = %v, want ErrInvalidChecksum", err)
	}
}

func TestParseMessage_BadPrefix(t *testing.T) {
	data := frame(MsgTypeRotation, []byte{0x08, 0x00})
	data[0] = 0x00
	if _, err := ParseMessage(data); !errors.Is(err, ErrInvalidPrefix) {
		t.Errorf("err = %v, want ErrInvalidPrefix", err)
	}
}

func TestDecodeRotation(t *testing.T) {
	// red clockwise, white counter-clockwise
	moves, err := DecodeRotation([]byte{0x08, 0x00, 0x05, 0x00})
	if err != nil {
		t.Fatalf("DecodeRotation: %v", err)
	}
	want := []cubesolver.Move{
		{Pieces: cubesolver.PieceFront, Type: cubesolver.Normal},
		{Pieces: cubesolver.PieceUp, Type: cubesolver.Prime},
	}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestDecodeRotation_OddPayload(t *testing.T) {
	if _, err := DecodeRotation([]byte{0x08}); err == nil {
		t.Error("odd-length payload should error")
	}
}

func TestBuildCommand(t *testing.T) {
	data := BuildCommand(CmdRequestBattery)
	want := []byte{0x2A, 0x01, CmdRequestBattery, 0x2A + 0x01 + CmdRequestBattery, 0x0D, 0x0A}
	if len(data) != len(want) {
		t.Fatalf("BuildCommand returned %d bytes, want %d", len(data), len(want))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("byte %d = 0x%02X, want 0x%02X", i, data[i], want[i])
		}
	}
}
