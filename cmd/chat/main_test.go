package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsExit(t *testing.T) {
	for _, q := range []string{"", "exit", "quit", "EXIT", "Quit", "eXiT"} {
		assert.True(t, isExit(q), "expected %q to end the session", q)
	}

	for _, q := range []string{"exit plan for Hanoi", "quiet beaches", "romantic weekend"} {
		assert.False(t, isExit(q), "expected %q to reach the pipeline", q)
	}
}
