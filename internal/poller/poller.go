package poller

import (
	"errors"
	"time"
)

// Prober abstracts the device access the poller needs.
type Prober interface {
	Available() bool
	ReadVersion() (uint32, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval time.Duration
}

// Poller is a dumb, clock-driven VERSION reader.
// Register access is serialized by the prober, so probes never
// interleave with shell-driven operations on the wire.
type Poller struct {
	cfg Config
	p   Prober
}

// New creates a poller with immutable config.
func New(cfg Config, p Prober) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if p == nil {
		return nil, errors.New("poller: prober required")
	}
	return &Poller{cfg: cfg, p: p}, nil
}

// ErrUnavailable is reported when the channel is already dead.
// No read is attempted in that case.
var ErrUnavailable = errors.New("poller: device unavailable")

// PollOnce performs exactly one probe.
func (p *Poller) PollOnce() PollResult {
	res := PollResult{At: time.Now()}

	if !p.p.Available() {
		res.Err = ErrUnavailable
		return res
	}

	v, err := p.p.ReadVersion()
	res.Available = p.p.Available()
	if err != nil {
		res.Err = err
		return res
	}
	res.Version = v
	return res
}
