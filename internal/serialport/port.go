// Package serialport opens the byte channel the register engine talks over.
// Port discovery is not done here; the port name comes from config.
package serialport

import (
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"

	cfg "github.com/tamzrod/rheed-regctl/internal/config"
)

// Config holds serial port configuration.
type Config struct {
	Port     string // e.g. "/dev/ttyUSB0", "COM9"
	Driver   string // goburrow | bugst
	Baud     int
	DataBits int
	StopBits int
	Parity   string // N | E | O
	Timeout  time.Duration
}

// FromConfig converts the YAML serial section.
func FromConfig(s cfg.SerialConfig) Config {
	return Config{
		Port:     s.Port,
		Driver:   s.Driver,
		Baud:     s.Baud,
		DataBits: s.DataBits,
		StopBits: s.StopBits,
		Parity:   s.Parity,
		Timeout:  time.Duration(s.TimeoutMs) * time.Millisecond,
	}
}

// Open opens the port with the configured driver. Reads that see no
// data within Timeout fail with ErrTimeout.
func Open(c Config) (io.ReadWriteCloser, error) {
	var (
		p   io.ReadWriteCloser
		err error
	)

	switch c.Driver {
	case "", "goburrow":
		p, err = openGoburrow(c)
	case "bugst":
		p, err = openBugst(c)
	default:
		return nil, fmt.Errorf("serialport: unknown driver %q", c.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("serialport: open %s: %w", c.Port, err)
	}

	glog.Infof("serialport: opened %s (%s) %d %d%s%d timeout=%v",
		c.Port, driverName(c.Driver), c.Baud, c.DataBits, c.Parity, c.StopBits, c.Timeout)
	return p, nil
}

func driverName(d string) string {
	if d == "" {
		return "goburrow"
	}
	return d
}

// ErrTimeout is returned by Read when no byte arrives before the timeout.
var ErrTimeout error = timeoutError{}

type timeoutError struct{}

func (timeoutError) Error() string   { return "serialport: read timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }
