package mirror

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/rheed-regctl/internal/config"
	"github.com/tamzrod/rheed-regctl/internal/mirror/ingest"
	mmodbus "github.com/tamzrod/rheed-regctl/internal/mirror/modbus"
)

type closingClient interface {
	Client
	Close() error
}

// Build connects the mirror endpoint described by c.
// Returns a nil writer when the mirror is not configured.
func Build(c *cfg.Config) (*Writer, func() error, error) {
	m := c.Mirror
	if m == nil {
		return nil, func() error { return nil }, nil
	}

	timeout := time.Duration(m.TimeoutMs) * time.Millisecond

	var (
		cli closingClient
		err error
	)
	switch m.Transport {
	case "", "modbus":
		cli, err = mmodbus.NewEndpointClient(mmodbus.Config{
			Endpoint: m.Endpoint,
			UnitID:   m.UnitID,
			Timeout:  timeout,
		})
	case "ingest":
		cli, err = ingest.NewEndpointClient(ingest.Config{
			Endpoint: m.Endpoint,
			UnitID:   m.UnitID,
			Timeout:  timeout,
		})
	default:
		return nil, nil, fmt.Errorf("mirror: unknown transport %q", m.Transport)
	}
	if err != nil {
		return nil, nil, err
	}

	w := New(Plan{
		Endpoint: m.Endpoint,
		Address:  m.Address,
		NumRegs:  c.Registers.NumRegs,
	}, cli)

	return w, cli.Close, nil
}
