package diskkv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Options{BasePath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestOpen(t *testing.T) {
	_, err := Open(Options{})
	assert.Error(t, err)
}

func TestStore(t *testing.T) {
	s := openTemp(t)

	_, ok, err := s.Get("currentUser")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("currentUser", `{"id":"1"}`))
	val, ok, err := s.Get("currentUser")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, val)
	assert.Equal(t, []string{"currentUser"}, s.Keys())

	require.NoError(t, s.Remove("currentUser"))
	require.NoError(t, s.Remove("currentUser"), "removing an absent key is not an error")
	_, ok, err = s.Get("currentUser")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Persists(t *testing.T) {
	dir := t.TempDir()
	s1, err := Open(Options{BasePath: dir})
	require.NoError(t, err)
	require.NoError(t, s1.Set("theme", "dark"))

	s2, err := Open(Options{BasePath: dir})
	require.NoError(t, err)
	val, ok, err := s2.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", val)
}

func TestStore_InvalidKey(t *testing.T) {
	s := openTemp(t)
	for _, key := range []string{"", "a/b", `a\b`} {
		t.Run(key, func(t *testing.T) {
			assert.Error(t, s.Set(key, "x"))
			_, _, err := s.Get(key)
			assert.Error(t, err)
			assert.Error(t, s.Remove(key))
		})
	}
}
