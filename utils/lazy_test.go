package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLazy(t *testing.T) {
	calls := 0
	setter := func() int {
		calls++
		return 42
	}

	var l Lazy[int]
	assert.Equal(t, 42, l.Value(setter))
	assert.Equal(t, 42, l.Value(setter))
	assert.Equal(t, 1, calls)
}
