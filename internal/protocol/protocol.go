// Package protocol decodes GoCube BLE notifications into solver moves.
package protocol

import (
	"errors"
	"fmt"

	"github.com/chintanlad10/cubesolver"
)

// GoCube BLE service and characteristic UUIDs.
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // write
)

// Message type identifiers.
const (
	MsgTypeRotation byte = 0x01
	MsgTypeState    byte = 0x02
	MsgTypeBattery  byte = 0x05
)

// Command codes for the RX characteristic.
const (
	CmdRequestBattery byte = 0x32
	CmdResetSolved    byte = 0x35
)

// Message frame bytes.
const (
	framePrefix  byte = 0x2A // '*'
	frameSuffix1 byte = 0x0D // CR
	frameSuffix2 byte = 0x0A // LF
)

// Errors
var (
	ErrInvalidPrefix   = errors.New("protocol: invalid message prefix")
	ErrInvalidSuffix   = errors.New("protocol: invalid message suffix")
	ErrInvalidChecksum = errors.New("protocol: invalid checksum")
	ErrMessageTooShort = errors.New("protocol: message too short")
)

// Message is a parsed BLE notification.
type Message struct {
	Type    byte
	Payload []byte
}

// ParseMessage parses a raw BLE notification.
// Frame format: [0x2A] [length] [type] [payload...] [checksum] [0x0D 0x0A]
// where length counts the bytes from the type to the suffix inclusive.
func ParseMessage(data []byte) (*Message, error) {
	if len(data) < 5 {
		return nil, ErrMessageTooShort
	}
	if data[0] != framePrefix {
		return nil, ErrInvalidPrefix
	}

	length := int(data[1])
	if len(data) < 2+length {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrMessageTooShort, 2+length, len(data))
	}

	checksumIdx := length - 1
	if checksumIdx < 2 {
		return nil, ErrMessageTooShort
	}
	if data[checksumIdx+1] != frameSuffix1 || data[checksumIdx+2] != frameSuffix2 {
		return nil, ErrInvalidSuffix
	}

	var checksum byte
	for i := 0; i < checksumIdx; i++ {
		checksum += data[i]
	}
	if checksum != data[checksumIdx] {
		return nil, fmt.Errorf("%w: expected 0x%02X, got 0x%02X", ErrInvalidChecksum, data[checksumIdx], checksum)
	}

	return &Message{Type: data[2], Payload: data[3:checksumIdx]}, nil
}

// BuildCommand frames a parameterless command for the cube.
func BuildCommand(cmdCode byte) []byte {
	length := byte(0x01)
	checksum := framePrefix + length + cmdCode
	return []byte{framePrefix, length, cmdCode, checksum, frameSuffix1, frameSuffix2}
}

// faceCodePieces maps a rotation face code's color index to the face
// that color occupies in the solver's solved orientation: white up,
// red in front.
var faceCodePieces = map[byte]cubesolver.Piece{
	0: cubesolver.PieceRight, // blue
	1: cubesolver.PieceLeft,  // green
	2: cubesolver.PieceUp,    // white
	3: cubesolver.PieceDown,  // yellow
	4: cubesolver.PieceFront, // red
	5: cubesolver.PieceBack,  // orange
}

// DecodeRotation decodes a rotation payload into solver moves.
// Rotation payloads hold byte pairs: [face_dir] [center_orientation].
// Even face codes turn clockwise, odd ones counter-clockwise.
func DecodeRotation(payload []byte) ([]cubesolver.Move, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("protocol: rotation payload must have even length, got %d", len(payload))
	}

	var moves []cubesolver.Move
	for i := 0; i < len(payload); i += 2 {
		faceCode := payload[i]

		pieces, ok := faceCodePieces[faceCode/2]
		if !ok {
			return nil, fmt.Errorf("protocol: unknown face code 0x%02X", faceCode)
		}

		moveType := cubesolver.Normal
		if faceCode%2 != 0 {
			moveType = cubesolver.Prime
		}
		moves = append(moves, cubesolver.Move{Pieces: pieces, Type: moveType})
	}

	return moves, nil
}
