package serialport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	bugst "go.bug.st/serial"

	cfg "github.com/tamzrod/rheed-regctl/internal/config"
)

func TestFromConfig(t *testing.T) {
	c := FromConfig(cfg.SerialConfig{
		Port:      "COM9",
		Driver:    "goburrow",
		Baud:      115200,
		DataBits:  8,
		StopBits:  1,
		Parity:    "N",
		TimeoutMs: 1000,
	})

	require.Equal(t, "COM9", c.Port)
	require.Equal(t, time.Second, c.Timeout)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(Config{Port: "x", Driver: "nope"})
	require.Error(t, err)
}

func TestBugstMode(t *testing.T) {
	m, err := bugstMode(Config{Baud: 115200, DataBits: 8, StopBits: 1, Parity: "N"})
	require.NoError(t, err)
	require.Equal(t, 115200, m.BaudRate)
	require.Equal(t, bugst.NoParity, m.Parity)
	require.Equal(t, bugst.OneStopBit, m.StopBits)

	m, err = bugstMode(Config{StopBits: 2, Parity: "E"})
	require.NoError(t, err)
	require.Equal(t, bugst.EvenParity, m.Parity)
	require.Equal(t, bugst.TwoStopBits, m.StopBits)

	_, err = bugstMode(Config{Parity: "M"})
	require.Error(t, err)
}

func TestErrTimeout_IsTimeout(t *testing.T) {
	var te interface{ Timeout() bool }
	require.ErrorAs(t, ErrTimeout, &te)
	require.True(t, te.Timeout())
}
