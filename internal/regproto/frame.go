package regproto

import (
	"encoding/binary"
	"fmt"
)

// Frame layout (big-endian):
//
//	opcode(1) address(2) value(4)
//
// A read answers with status(1) value(4). The status byte is not checked.
const (
	OpWrite byte = 0x57 // 'W'
	OpRead  byte = 0x52 // 'R'

	FrameLen    = 7
	ResponseLen = 5

	// readFiller pads a read request to the length of a write.
	readFiller Value = 0xFFFFFFFE
)

// EncodeWrite builds the 7-byte write frame.
func EncodeWrite(addr Address, v Value) [FrameLen]byte {
	return encode(OpWrite, addr, v)
}

// EncodeRead builds the 7-byte read frame.
func EncodeRead(addr Address) [FrameLen]byte {
	return encode(OpRead, addr, readFiller)
}

func encode(op byte, addr Address, v Value) [FrameLen]byte {
	var f [FrameLen]byte
	f[0] = op
	binary.BigEndian.PutUint16(f[1:3], uint16(addr))
	binary.BigEndian.PutUint32(f[3:7], uint32(v))
	return f
}

// DecodeReadResponse extracts the register value from a read response.
func DecodeReadResponse(b []byte) (Value, error) {
	if len(b) != ResponseLen {
		return 0, fmt.Errorf("regproto: response length %d, want %d", len(b), ResponseLen)
	}
	return Value(binary.BigEndian.Uint32(b[1:5])), nil
}
