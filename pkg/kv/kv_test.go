package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("missing")
	assert.False(t, ok)

	require.NoError(t, m.Set("k", "v1"))
	v, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v1", v)

	require.NoError(t, m.Set("k", "v2"))
	v, _ = m.Get("k")
	assert.Equal(t, "v2", v)

	require.NoError(t, m.Remove("k"))
	_, ok = m.Get("k")
	assert.False(t, ok)

	// removing an absent key is fine
	require.NoError(t, m.Remove("k"))
}
