package modbus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackRegisters_BigEndian(t *testing.T) {
	require.Equal(t,
		[]byte{0x00, 0x14, 0xAB, 0xCD},
		packRegisters([]uint16{0x0014, 0xABCD}))
}

func TestNewEndpointClient_RequiresEndpoint(t *testing.T) {
	_, err := NewEndpointClient(Config{})
	require.Error(t, err)
}
