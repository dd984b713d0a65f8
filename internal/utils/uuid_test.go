package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	assert.True(t, IsValidID(first))
	assert.True(t, IsValidID(second))
	assert.NotEqual(t, first, second)
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("0191c2a8-1111-7def-8000-0242ac120002"))

	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("123"))
	assert.False(t, IsValidID("not-a-uuid"))
	assert.False(t, IsValidID("0191c2a8-1111-7def-8000-0242ac12000g"))
}
