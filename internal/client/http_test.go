package client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolRotatesProxies(t *testing.T) {
	pool := NewPool([]string{"http://proxy1:8080", "http://proxy2:8080"})

	first, err := pool.New()
	require.NoError(t, err)
	second, err := pool.New()
	require.NoError(t, err)
	third, err := pool.New()
	require.NoError(t, err)

	require.Equal(t, "http://proxy1:8080", first.ProxyURL)
	require.Equal(t, "http://proxy2:8080", second.ProxyURL)
	require.Equal(t, "http://proxy1:8080", third.ProxyURL)
}

func TestPoolDirectWhenEmpty(t *testing.T) {
	pool := NewPool(nil)

	c, err := pool.New()
	require.NoError(t, err)
	require.Empty(t, c.ProxyURL)
}

func TestPoolRemove(t *testing.T) {
	pool := NewPool([]string{"http://proxy1:8080", "http://proxy2:8080"})

	require.Equal(t, 1, pool.Remove("http://proxy1:8080"))
	require.Equal(t, 1, pool.Remove("http://nope:1"))
	require.Equal(t, 0, pool.Remove("http://proxy2:8080"))

	// Empty pool means direct connections, not an error.
	c, err := pool.New()
	require.NoError(t, err)
	require.Empty(t, c.ProxyURL)
}
