package icon

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBitmap() *Bitmap {
	return &Bitmap{Pix: image.NewRGBA(image.Rect(0, 0, 1, 1)), Source: SourceTarget}
}

func TestCacheGetSet(t *testing.T) {
	c := NewCache()
	b := testBitmap()

	assert.Nil(t, c.Get("missing"))

	c.Set(Key("app.exe", 0), b)
	assert.Same(t, b, c.Get(Key("app.exe", 0)))
	assert.Equal(t, 1, c.Len())
}

func TestCacheKeyIncludesIndex(t *testing.T) {
	c := NewCache()
	c.Set(Key("app.exe", 0), testBitmap())

	assert.Nil(t, c.Get(Key("app.exe", 1)))
}

func TestCacheEvictsOldest(t *testing.T) {
	c := NewCacheWithSize(2)
	c.Set("a", testBitmap())
	c.Set("b", testBitmap())
	c.Set("c", testBitmap())

	assert.Nil(t, c.Get("a"))
	assert.NotNil(t, c.Get("b"))
	assert.NotNil(t, c.Get("c"))
	assert.Equal(t, 2, c.Len())
}

func TestCacheGetRefreshesRecency(t *testing.T) {
	c := NewCacheWithSize(2)
	c.Set("a", testBitmap())
	c.Set("b", testBitmap())

	require.NotNil(t, c.Get("a"))
	c.Set("c", testBitmap())

	assert.NotNil(t, c.Get("a"), "recently read entry survives eviction")
	assert.Nil(t, c.Get("b"))
}

func TestCacheClear(t *testing.T) {
	c := NewCache()
	c.Set("a", testBitmap())
	c.Set("b", testBitmap())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Get("a"))
}
