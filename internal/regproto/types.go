package regproto

import "fmt"

// Address is a 16-bit device register address.
type Address uint16

// Value is the 32-bit content of one register.
type Value uint32

// RegisterMap describes the register set exposed by the FPGA.
// PARAM registers occupy Param0 .. Param0+NumRegs-1.
type RegisterMap struct {
	NumRegs int
	Param0  Address
	Version Address
	LED     Address
}

// DefaultRegisterMap matches the initial RHEED FPGA build.
func DefaultRegisterMap() RegisterMap {
	return RegisterMap{
		NumRegs: 5,
		Param0:  0x0000,
		Version: 0x0008,
		LED:     0x0009,
	}
}

// Param returns the address of PARAM slot i.
func (m RegisterMap) Param(i int) (Address, error) {
	if i < 0 || i >= m.NumRegs {
		return 0, &InvalidAddressError{
			Addr:   m.Param0 + Address(i),
			Reason: fmt.Sprintf("param slot %d outside 0..%d", i, m.NumRegs-1),
		}
	}
	return m.Param0 + Address(i), nil
}

// IsParam reports whether addr falls inside the PARAM range.
func (m RegisterMap) IsParam(addr Address) bool {
	return int(addr) >= int(m.Param0) && int(addr) < int(m.Param0)+m.NumRegs
}

// Readable reports whether addr may be read.
func (m RegisterMap) Readable(addr Address) bool {
	return m.IsParam(addr) || addr == m.Version || addr == m.LED
}

// Writable reports whether addr may be written. VERSION is read-only.
func (m RegisterMap) Writable(addr Address) bool {
	return m.IsParam(addr) || addr == m.LED
}
