package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"grimoire/pkg/network"
)

func TestForward(t *testing.T) {
	server := network.NewScriptServer()
	input := `{"id":1,"type":"hint","key":"NoSpells"}
{"id":2,"type":"open","window":"inventory"}
`
	assert.NoError(t, forward(strings.NewReader(input), server))
	assert.ErrorContains(t, forward(strings.NewReader(`{"id":`), server), "read command")
}

func TestDefaultAddr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8081", defaultAddr())
}
