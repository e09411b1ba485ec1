package storage

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func TestOptimizable(t *testing.T) {
	assert.True(t, Optimizable("a.png"))
	assert.True(t, Optimizable("a.jpg"))
	assert.True(t, Optimizable("a.jpeg"))
	assert.True(t, Optimizable("a.webp"))
	assert.False(t, Optimizable("a.gif"))
	assert.False(t, Optimizable("a.txt"))
}

func savePNG(t *testing.T, store *FileStore, name string, width, height int) {
	t.Helper()
	var buf bytes.Buffer
	err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height)))
	assert.NoError(t, err)
	assert.NoError(t, store.Save(name, &buf))
}

func TestFileStore_Optimize(t *testing.T) {
	t.Run("downscales oversized images", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		assert.NoError(t, err)
		savePNG(t, store, "big.png", 4000, 3000)

		assert.NoError(t, store.Optimize("big.png"))

		path, _ := store.Resolve("big.png")
		img, err := imaging.Open(path)
		assert.NoError(t, err)
		assert.LessOrEqual(t, img.Bounds().Dx(), 1920)
		assert.LessOrEqual(t, img.Bounds().Dy(), 1080)
	})

	t.Run("never upscales", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		assert.NoError(t, err)
		savePNG(t, store, "small.png", 120, 80)

		assert.NoError(t, store.Optimize("small.png"))

		path, _ := store.Resolve("small.png")
		img, err := imaging.Open(path)
		assert.NoError(t, err)
		assert.Equal(t, 120, img.Bounds().Dx())
		assert.Equal(t, 80, img.Bounds().Dy())
	})

	t.Run("re-encodes as jpeg", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		assert.NoError(t, err)
		savePNG(t, store, "photo.png", 50, 50)

		assert.NoError(t, store.Optimize("photo.png"))

		f, err := store.Open("photo.png")
		assert.NoError(t, err)
		defer f.Close()
		_, format, err := image.DecodeConfig(f)
		assert.NoError(t, err)
		assert.Equal(t, "jpeg", format)
	})

	t.Run("failure keeps the original file", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		assert.NoError(t, err)
		assert.NoError(t, store.Save("broken.png", strings.NewReader("not an image")))

		assert.Error(t, store.Optimize("broken.png"))

		f, err := store.Open("broken.png")
		assert.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		assert.NoError(t, err)
		assert.Equal(t, "not an image", string(data))
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		assert.NoError(t, err)
		savePNG(t, store, "photo.png", 50, 50)

		assert.NoError(t, store.Optimize("photo.png"))

		entries, err := os.ReadDir(store.Dir())
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "photo.png", entries[0].Name())
	})

	t.Run("invalid name fails", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		assert.NoError(t, err)

		assert.Equal(t, ErrInvalidFilename, store.Optimize("../escape.png"))
	})
}
