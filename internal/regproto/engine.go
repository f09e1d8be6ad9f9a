package regproto

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/golang/glog"
)

// Engine speaks the FPGA register protocol over one byte channel.
// It serializes requests: the protocol has no framing resync, so two
// exchanges must never interleave on the wire.
type Engine struct {
	mu   sync.Mutex
	ch   io.ReadWriter
	regs RegisterMap
	dead bool
}

// New wraps an open channel. Timeouts belong to the channel.
// A nil channel yields an engine that is never available.
func New(ch io.ReadWriter, regs RegisterMap) *Engine {
	return &Engine{ch: ch, regs: regs}
}

// Registers returns the register map the engine validates against.
func (e *Engine) Registers() RegisterMap { return e.regs }

// Available reports whether requests can be issued.
// A channel failure makes the engine permanently unavailable.
func (e *Engine) Available() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ch != nil && !e.dead
}

// Close closes the channel if it supports it.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.dead = true
	if c, ok := e.ch.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// WriteRegister sends one write frame. No response is read.
func (e *Engine) WriteRegister(addr Address, v Value) error {
	if !e.regs.Writable(addr) {
		return &InvalidAddressError{Addr: addr, Reason: "not a writable register"}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.usable("write", addr); err != nil {
		return err
	}

	f := EncodeWrite(addr, v)
	glog.V(2).Infof("regproto: W addr=0x%04x data=0x%08x", uint16(addr), uint32(v))

	if err := writeAll(e.ch, f[:]); err != nil {
		e.dead = true
		return &ChannelError{Op: "write", Addr: addr, Err: err}
	}
	return nil
}

// ReadRegister sends one read frame and waits for the 5-byte response.
func (e *Engine) ReadRegister(addr Address) (Value, error) {
	if !e.regs.Readable(addr) {
		return 0, &InvalidAddressError{Addr: addr, Reason: "not a readable register"}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.usable("read", addr); err != nil {
		return 0, err
	}

	f := EncodeRead(addr)
	glog.V(2).Infof("regproto: R addr=0x%04x", uint16(addr))

	if err := writeAll(e.ch, f[:]); err != nil {
		e.dead = true
		return 0, &ChannelError{Op: "read", Addr: addr, Err: err}
	}

	var rsp [ResponseLen]byte
	if err := e.readResponse(addr, rsp[:]); err != nil {
		return 0, err
	}

	v, err := DecodeReadResponse(rsp[:])
	if err != nil {
		return 0, err
	}
	glog.V(2).Infof("regproto: R addr=0x%04x status=0x%02x data=0x%08x", uint16(addr), rsp[0], uint32(v))
	return v, nil
}

func (e *Engine) usable(op string, addr Address) error {
	if e.ch == nil || e.dead {
		return &ChannelError{Op: op, Addr: addr, Err: ErrUnavailable}
	}
	return nil
}

// readResponse fills rsp or fails. A timeout, EOF or empty read before
// the buffer is full is a short response; any other error is fatal.
func (e *Engine) readResponse(addr Address, rsp []byte) error {
	got := 0
	for got < len(rsp) {
		n, err := e.ch.Read(rsp[got:])
		if n > 0 {
			got += n
		}
		if got >= len(rsp) {
			return nil
		}
		if err != nil {
			if isShortRead(err) {
				return &ShortResponseError{Addr: addr, Got: got, Err: err}
			}
			e.dead = true
			return &ChannelError{Op: "read", Addr: addr, Err: err}
		}
		if n <= 0 {
			return &ShortResponseError{Addr: addr, Got: got}
		}
	}
	return nil
}

func isShortRead(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		if n <= 0 {
			return io.ErrShortWrite
		}
		b = b[n:]
	}
	return nil
}
