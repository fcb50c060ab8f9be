package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T, enabled bool, size int) *Cache {
	t.Helper()
	c, err := New(enabled, size)
	require.NoError(t, err)
	return c
}

func TestCache_SetGet(t *testing.T) {
	c := newCache(t, true, 8)

	etag := c.Set("seasons", []byte(`[2021]`), time.Minute)
	assert.Equal(t, ComputeETag([]byte(`[2021]`)), etag)

	data, got, ok := c.Get("seasons")
	require.True(t, ok)
	assert.Equal(t, `[2021]`, string(data))
	assert.Equal(t, etag, got)

	_, _, ok = c.Get("teams")
	assert.False(t, ok)

	stats := c.Stats()
	assert.EqualValues(t, 1, stats["hits"])
	assert.EqualValues(t, 1, stats["misses"])
	assert.Equal(t, 1, stats["keys"])
}

func TestCache_Expiry(t *testing.T) {
	c := newCache(t, true, 8)
	c.Set("k", []byte("v"), -time.Second)

	_, _, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Stats()["keys"], "expired entry removed on read")
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newCache(t, true, 2)
	c.Set("a", []byte("1"), time.Minute)
	c.Set("b", []byte("2"), time.Minute)
	c.Get("a")
	c.Set("c", []byte("3"), time.Minute)

	_, _, ok := c.Get("b")
	assert.False(t, ok)
	_, _, ok = c.Get("a")
	assert.True(t, ok)
}

func TestCache_Purge(t *testing.T) {
	c := newCache(t, true, 8)
	for i := range 5 {
		c.Set(fmt.Sprintf("k%d", i), []byte("v"), time.Minute)
	}
	c.Purge()
	assert.Equal(t, 0, c.Stats()["keys"])
}

func TestCache_Disabled(t *testing.T) {
	c := newCache(t, false, 8)
	etag := c.Set("k", []byte("v"), time.Minute)
	assert.NotEmpty(t, etag)

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestNew_InvalidSize(t *testing.T) {
	_, err := New(true, 0)
	assert.Error(t, err)
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("payload"))
	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"empty", "", false},
		{"exact", etag, true},
		{"wildcard", "*", true},
		{"list", `W/"0000", ` + etag, true},
		{"mismatch", `W/"0000"`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckETagMatch(tt.header, etag))
		})
	}
}
