package j1cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleLoad(t *testing.T) {
	var c console
	script := []byte("1 2 + .\n")
	c.load(script)

	require.True(t, c.inputAvailable())
	for _, want := range script {
		require.True(t, c.inputAvailable())
		require.Equal(t, want, c.readByte())
	}
	require.False(t, c.inputAvailable())
}

func TestConsoleReadEmptyReturnsZero(t *testing.T) {
	var c console
	require.False(t, c.inputAvailable())
	require.Equal(t, byte(0), c.readByte())
}

func TestConsoleWriteDropsCarriageReturn(t *testing.T) {
	var c console
	for _, b := range []byte("ok\r\n") {
		c.writeByte(b)
	}
	require.Equal(t, "ok\n", c.Output())
	require.Equal(t, "ok\n", c.Log())
}

func TestConsoleReset(t *testing.T) {
	var c console
	c.writeByte('x')
	require.Equal(t, "x", c.Output())
	c.reset()
	require.Equal(t, "", c.Output())
	require.Equal(t, "", c.Log())
}
