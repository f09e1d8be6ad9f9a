package status

import "errors"

// Encode converts a Snapshot into a full controller status block.
// Layout is protocol-locked. Params beyond numRegs are dropped.
// No IO. No side effects.
func Encode(s Snapshot, numRegs int) []uint16 {
	regs := make([]uint16, BlockSize(numRegs))

	regs[SlotHealthCode] = s.Health
	regs[SlotLastErrorCode] = s.LastErrorCode
	regs[SlotVersionHi] = uint16(s.Version >> 16)
	regs[SlotVersionLo] = uint16(s.Version)

	n := len(s.Params)
	if n > numRegs {
		n = numRegs
	}
	regs[SlotParamCount] = uint16(n)

	for i := 0; i < n; i++ {
		slot := SlotParamStart + SlotsPerParam*i
		regs[slot] = uint16(s.Params[i] >> 16)
		regs[slot+1] = uint16(s.Params[i])
	}

	return regs
}

// ErrorCode extracts a best-effort uint16 code from an error without assuming concrete types.
// If the error does not expose a code, returns CodeGeneric.
func ErrorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	type coder interface{ Code() uint16 }

	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}
	return CodeGeneric
}
