package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResponseCache_SetGet(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get("index|1")
	assert.False(t, ok)

	c.Set("index|1", map[string]int{"posts": 3})

	v, ok := c.Get("index|1")
	assert.True(t, ok)
	assert.Equal(t, map[string]int{"posts": 3}, v)
}

func TestResponseCache_Expiry(t *testing.T) {
	c := New(20 * time.Millisecond)
	c.Set("feed|7|1", "payload")

	_, ok := c.Get("feed|7|1")
	assert.True(t, ok)

	time.Sleep(40 * time.Millisecond)

	_, ok = c.Get("feed|7|1")
	assert.False(t, ok)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "index|2", Key("index", 2))
	assert.Equal(t, "feed|7|1", Key("feed", uint(7), 1))
	assert.NotEqual(t, Key("group", "a", 1), Key("group", "a", 2))
}
