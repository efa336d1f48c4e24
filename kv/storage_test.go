package kv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		s := New().Set("Host", "localhost").Set("Accept", "*/*")
		value, found := s.Get("Host")
		require.True(t, found)
		assert.Equal(t, "localhost", value)
		assert.Equal(t, "*/*", s.Value("Accept"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("last write wins", func(t *testing.T) {
		s := New().Set("A", "1").Set("A", "2")
		assert.Equal(t, "2", s.Value("A"))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("case-sensitive keys", func(t *testing.T) {
		s := New().Set("Host", "a").Set("host", "b")
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, "a", s.Value("Host"))
		assert.Equal(t, "b", s.Value("host"))
	})

	t.Run("missing key", func(t *testing.T) {
		s := New()
		_, found := s.Get("nonexistent")
		assert.False(t, found)
		assert.Equal(t, "", s.Value("nonexistent"))
		assert.Equal(t, "fallback", s.ValueOr("nonexistent", "fallback"))
	})

	t.Run("insertion order preserved", func(t *testing.T) {
		s := New().Set("C", "3").Set("A", "1").Set("B", "2").Set("C", "4")
		pairs := s.Pairs()
		require.Equal(t, 3, len(pairs))
		assert.Equal(t, Pair{"C", "4"}, pairs[0])
		assert.Equal(t, Pair{"A", "1"}, pairs[1])
		assert.Equal(t, Pair{"B", "2"}, pairs[2])
	})

	t.Run("clear", func(t *testing.T) {
		s := NewPrealloc(4).Set("A", "1")
		assert.Equal(t, 0, s.Clear().Len())
		_, found := s.Get("A")
		assert.False(t, found)
	})
}
