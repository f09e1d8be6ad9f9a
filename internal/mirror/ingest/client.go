package ingest

import (
	"errors"
	"fmt"
	"io"
	"net"
	"time"
)

const (
	magicHi byte = 0x52 // 'R'
	magicLo byte = 0x49 // 'I'

	versionV1 byte = 0x01

	areaHoldingRegisters byte = 3

	respOK       byte = 0x00
	respRejected byte = 0x01

	headerLen = 10
)

// EndpointClient speaks Raw Ingest v1 (stateless, 1 packet = 1 connection).
type EndpointClient struct {
	endpoint string
	unitID   uint8
	timeout  time.Duration
}

type Config struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("mirror ingest: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &EndpointClient{
		endpoint: cfg.Endpoint,
		unitID:   cfg.UnitID,
		timeout:  cfg.Timeout,
	}, nil
}

func (c *EndpointClient) Close() error { return nil }

// WriteRegisters delivers holding registers starting at addr.
func (c *EndpointClient) WriteRegisters(addr uint16, regs []uint16) error {
	pkt := buildPacketV1(areaHoldingRegisters, c.unitID, addr, regs)

	conn, err := net.DialTimeout("tcp", c.endpoint, c.timeout)
	if err != nil {
		return fmt.Errorf("mirror ingest: dial: %w", err)
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(c.timeout))
	if _, err := conn.Write(pkt); err != nil {
		return fmt.Errorf("mirror ingest: write: %w", err)
	}

	var resp [1]byte
	if _, err := io.ReadFull(conn, resp[:]); err != nil {
		return fmt.Errorf("mirror ingest: read status: %w", err)
	}

	switch resp[0] {
	case respOK:
		return nil
	case respRejected:
		return errors.New("mirror ingest: rejected")
	default:
		return fmt.Errorf("mirror ingest: unknown status 0x%02x", resp[0])
	}
}

//
// ---- Raw Ingest v1 packet builder (LOCKED) ----
//
// Layout (10 bytes header):
// 0–1  Magic "RI"
// 2    Version (0x01)
// 3    Area
// 4–5  UnitID
// 6–7  Address
// 8–9  Count
// 10+  Payload (registers, big-endian)
//

func buildPacketV1(area byte, unitID uint8, addr uint16, regs []uint16) []byte {
	pkt := make([]byte, headerLen+2*len(regs))

	pkt[0] = magicHi
	pkt[1] = magicLo
	pkt[2] = versionV1
	pkt[3] = area

	putU16(pkt[4:6], uint16(unitID))
	putU16(pkt[6:8], addr)
	putU16(pkt[8:10], uint16(len(regs)))

	for i, r := range regs {
		putU16(pkt[headerLen+2*i:], r)
	}
	return pkt
}

func putU16(dst []byte, v uint16) {
	dst[0] = byte(v >> 8)
	dst[1] = byte(v)
}
