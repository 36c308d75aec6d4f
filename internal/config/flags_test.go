package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8082"))
	assert.Equal(t, "localhost", a.Host)
	assert.Equal(t, 8082, a.Port)
	assert.Equal(t, "localhost:8082", a.String())
}

func TestNetAddress_Set_ValidIP(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("127.0.0.1:80"))
	assert.Equal(t, "127.0.0.1:80", a.String())
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	cases := []string{
		"no-port",
		"localhost:abc",
		"localhost:0",
		"localhost:-1",
		"not-an-ip:8080",
	}

	for _, input := range cases {
		var a NetAddress
		assert.Error(t, a.Set(input), "input %q", input)
	}
}

func TestNetAddress_String_Zero(t *testing.T) {
	var a NetAddress
	assert.Empty(t, a.String())
}
