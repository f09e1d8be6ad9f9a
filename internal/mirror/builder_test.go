package mirror

import (
	"testing"

	"github.com/stretchr/testify/require"

	cfg "github.com/tamzrod/rheed-regctl/internal/config"
)

func TestBuild_Disabled(t *testing.T) {
	w, closeFn, err := Build(&cfg.Config{})
	require.NoError(t, err)
	require.Nil(t, w)
	require.NoError(t, closeFn())
}

func TestBuild_Ingest(t *testing.T) {
	c := &cfg.Config{
		Registers: cfg.RegisterConfig{NumRegs: 5},
		Mirror: &cfg.MirrorConfig{
			Transport: "ingest",
			Endpoint:  "127.0.0.1:9",
			Address:   40,
			TimeoutMs: 100,
		},
	}

	// ingest dials per packet, so building never touches the network
	w, closeFn, err := Build(c)
	require.NoError(t, err)
	require.NotNil(t, w)
	require.Equal(t, uint16(40), w.plan.Address)
	require.Equal(t, 5, w.plan.NumRegs)
	require.NoError(t, closeFn())
}

func TestBuild_UnknownTransport(t *testing.T) {
	_, _, err := Build(&cfg.Config{Mirror: &cfg.MirrorConfig{Transport: "x", Endpoint: "e"}})
	require.Error(t, err)
}
