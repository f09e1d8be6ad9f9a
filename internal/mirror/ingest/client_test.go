package ingest

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildPacketV1(t *testing.T) {
	pkt := buildPacketV1(areaHoldingRegisters, 7, 0x0102, []uint16{0x0014, 0xABCD})

	require.Equal(t, []byte{
		'R', 'I', 0x01, 0x03,
		0x00, 0x07,
		0x01, 0x02,
		0x00, 0x02,
		0x00, 0x14, 0xAB, 0xCD,
	}, pkt)
}

// serveOnce accepts one packet of n registers and answers with status.
func serveOnce(t *testing.T, n int, status byte) (string, <-chan []byte) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	got := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, headerLen+2*n)
		if _, err := io.ReadFull(conn, buf); err != nil {
			return
		}
		got <- buf
		conn.Write([]byte{status})
	}()
	return ln.Addr().String(), got
}

func TestWriteRegisters_OK(t *testing.T) {
	addr, got := serveOnce(t, 1, respOK)

	c, err := NewEndpointClient(Config{Endpoint: addr, UnitID: 1, Timeout: time.Second})
	require.NoError(t, err)
	require.NoError(t, c.WriteRegisters(4, []uint16{9}))

	pkt := <-got
	require.Equal(t, byte(areaHoldingRegisters), pkt[3])
	require.Equal(t, []byte{0x00, 0x09}, pkt[headerLen:])
}

func TestWriteRegisters_Rejected(t *testing.T) {
	addr, _ := serveOnce(t, 1, respRejected)

	c, err := NewEndpointClient(Config{Endpoint: addr, Timeout: time.Second})
	require.NoError(t, err)
	require.Error(t, c.WriteRegisters(0, []uint16{1}))
}

func TestNewEndpointClient_RequiresEndpoint(t *testing.T) {
	_, err := NewEndpointClient(Config{})
	require.Error(t, err)
}
