package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamzrod/rheed-regctl/internal/regproto"
)

func TestParseHex32(t *testing.T) {
	v, err := parseHex32("0x55555555")
	require.NoError(t, err)
	require.Equal(t, uint32(0x55555555), v)

	v, err = parseHex32("10")
	require.NoError(t, err)
	require.Equal(t, uint32(0x10), v)

	_, err = parseHex32("1FFFFFFFF")
	require.Error(t, err)
}

func TestParseAddr(t *testing.T) {
	a, err := parseAddr("0x0008")
	require.NoError(t, err)
	require.Equal(t, regproto.Address(8), a)

	_, err = parseAddr("10000")
	require.Error(t, err)

	_, err = parseAddr("zz")
	require.Error(t, err)
}
