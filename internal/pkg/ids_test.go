package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	// When: two ids are generated
	first := NewID()
	second := NewID()

	// Then: both are valid and distinct
	assert.True(t, IsID(first))
	assert.True(t, IsID(second))
	assert.NotEqual(t, first, second)
}

func TestIsID(t *testing.T) {
	assert.False(t, IsID(""))
	assert.False(t, IsID("not-an-id"))
}
