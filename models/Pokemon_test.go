package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeforeCreate(t *testing.T) {
	p := &Pokemon{Name: "  Pikachu ", No: 25}
	require.NoError(t, p.BeforeCreate(nil))

	assert.True(t, IsValidID(p.ID))
	assert.Equal(t, "pikachu", p.Name)

	id := p.ID
	require.NoError(t, p.BeforeCreate(nil))
	assert.Equal(t, id, p.ID)
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID(uuid.NewString()))
	assert.False(t, IsValidID("pikachu"))
	assert.False(t, IsValidID("25"))
	assert.False(t, IsValidID(""))
}
