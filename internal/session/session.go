// Package session owns the controller state for one connected FPGA:
// the register engine, the selection buffer and the image geometry.
package session

import (
	"errors"
	"sync"

	"github.com/golang/glog"

	"github.com/tamzrod/rheed-regctl/internal/regproto"
	"github.com/tamzrod/rheed-regctl/internal/selection"
	"github.com/tamzrod/rheed-regctl/internal/status"
)

// Engine abstracts the register operations the session needs.
type Engine interface {
	Registers() regproto.RegisterMap
	Available() bool
	ReadRegister(addr regproto.Address) (regproto.Value, error)
	WriteRegister(addr regproto.Address, v regproto.Value) error
}

// StatusSink receives a snapshot after every device operation.
type StatusSink interface {
	WriteStatus(s status.Snapshot) error
}

// Session serializes all access to the buffer and the engine.
type Session struct {
	mu   sync.Mutex
	eng  Engine
	regs regproto.RegisterMap
	buf  *selection.Buffer
	geo  *selection.Geometry
	sink StatusSink
	snap status.Snapshot
}

// New creates a session with an empty selection buffer sized to the
// PARAM block. geo may be nil when no image is loaded; sink may be nil.
func New(eng Engine, geo *selection.Geometry, sink StatusSink) (*Session, error) {
	if eng == nil {
		return nil, errors.New("session: engine required")
	}

	regs := eng.Registers()
	buf, err := selection.NewBuffer(regs.NumRegs)
	if err != nil {
		return nil, err
	}

	return &Session{
		eng:  eng,
		regs: regs,
		buf:  buf,
		geo:  geo,
		sink: sink,
		snap: status.Snapshot{Health: status.HealthUnknown},
	}, nil
}

// Available reports whether device operations can be issued.
func (s *Session) Available() bool { return s.eng.Available() }

// Geometry returns the click transform, nil if none.
func (s *Session) Geometry() *selection.Geometry { return s.geo }

// Click turns a canvas click into a selection and appends it.
func (s *Session) Click(x, y float64) (selection.Coordinate, error) {
	if s.geo == nil {
		return selection.Coordinate{}, errors.New("session: no image geometry")
	}

	c, err := s.geo.RegisterClick(x, y)
	if err != nil {
		return selection.Coordinate{}, err
	}

	s.mu.Lock()
	s.buf.Append(c)
	n := s.buf.Len()
	s.mu.Unlock()

	glog.V(1).Infof("session: click (%.1f,%.1f) -> %v, %d/%d slots", x, y, c, n, s.regs.NumRegs)
	return c, nil
}

// Set overwrites occupied slot i with typed coordinates.
func (s *Session) Set(i int, sx, sy string) (selection.Coordinate, error) {
	c, err := selection.ParseCoordinate(sx, sy)
	if err != nil {
		return selection.Coordinate{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.buf.Replace(i, c); err != nil {
		return selection.Coordinate{}, err
	}
	return c, nil
}

// Selections returns the buffered coordinates in slot order.
func (s *Session) Selections() []selection.Coordinate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Coordinates()
}

// DownloadAll writes every occupied slot i to PARAM register i, in
// ascending order. A failed slot does not stop the remaining writes.
func (s *Session) DownloadAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.eng.Available() {
		err := &regproto.ChannelError{Op: "download", Addr: s.regs.Param0, Err: regproto.ErrUnavailable}
		s.record(err)
		return err
	}

	packed := s.buf.Packed()
	derr := &DownloadError{Attempted: len(packed)}

	for i, v := range packed {
		addr, err := s.regs.Param(i)
		if err == nil {
			err = s.eng.WriteRegister(addr, regproto.Value(v))
		}
		if err != nil {
			glog.Warningf("session: download slot %d failed: %v", i, err)
			derr.Failed = append(derr.Failed, SlotError{Index: i, Addr: addr, Err: err})
		}
	}

	if len(derr.Failed) > 0 {
		s.record(derr)
		return derr
	}

	s.snap.Params = packed
	s.record(nil)
	glog.Infof("session: downloaded %d slots", len(packed))
	return nil
}

// ReadVersion reads the VERSION register.
func (s *Session) ReadVersion() (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.eng.ReadRegister(s.regs.Version)
	if err == nil {
		s.snap.Version = uint32(v)
	}
	s.record(err)
	return uint32(v), err
}

// SetLED writes the LED control register.
func (s *Session) SetLED(v uint32) error {
	return s.WriteRegister(s.regs.LED, v)
}

// ReadRegister is a raw register read.
func (s *Session) ReadRegister(addr regproto.Address) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.eng.ReadRegister(addr)
	s.record(err)
	return uint32(v), err
}

// WriteRegister is a raw register write.
func (s *Session) WriteRegister(addr regproto.Address, v uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.eng.WriteRegister(addr, regproto.Value(v))
	s.record(err)
	return err
}

// Snapshot returns the current controller status.
func (s *Session) Snapshot() status.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// record folds the outcome of one device operation into the status
// snapshot and publishes it. Caller holds s.mu.
func (s *Session) record(err error) {
	switch {
	case !s.eng.Available():
		s.snap.Health = status.HealthUnavailable
	case err != nil:
		s.snap.Health = status.HealthError
	default:
		s.snap.Health = status.HealthOK
	}
	s.snap.LastErrorCode = status.ErrorCode(err)

	if s.sink == nil {
		return
	}
	if werr := s.sink.WriteStatus(s.snap.Clone()); werr != nil {
		glog.Warningf("session: status write failed: %v", werr)
	}
}
