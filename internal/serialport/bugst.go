package serialport

import (
	"fmt"

	"go.bug.st/serial"
)

// bugstPort adapts go.bug.st/serial. That driver reports a read
// timeout as (0, nil); it is turned into ErrTimeout here.
type bugstPort struct {
	p serial.Port
}

func openBugst(c Config) (*bugstPort, error) {
	mode, err := bugstMode(c)
	if err != nil {
		return nil, err
	}

	p, err := serial.Open(c.Port, mode)
	if err != nil {
		return nil, err
	}
	if err := p.SetReadTimeout(c.Timeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("set read timeout: %w", err)
	}
	return &bugstPort{p: p}, nil
}

func bugstMode(c Config) (*serial.Mode, error) {
	m := &serial.Mode{
		BaudRate: c.Baud,
		DataBits: c.DataBits,
	}

	switch c.Parity {
	case "", "N":
		m.Parity = serial.NoParity
	case "E":
		m.Parity = serial.EvenParity
	case "O":
		m.Parity = serial.OddParity
	default:
		return nil, fmt.Errorf("unsupported parity %q", c.Parity)
	}

	switch c.StopBits {
	case 0, 1:
		m.StopBits = serial.OneStopBit
	case 2:
		m.StopBits = serial.TwoStopBits
	default:
		return nil, fmt.Errorf("unsupported stop bits %d", c.StopBits)
	}

	return m, nil
}

func (b *bugstPort) Read(buf []byte) (int, error) {
	n, err := b.p.Read(buf)
	if n == 0 && err == nil && len(buf) > 0 {
		return 0, ErrTimeout
	}
	return n, err
}

func (b *bugstPort) Write(buf []byte) (int, error) { return b.p.Write(buf) }

func (b *bugstPort) Close() error { return b.p.Close() }
