package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedExtension(t *testing.T) {
	tests := []struct {
		filename string
		allowed  bool
	}{
		{"photo.png", true},
		{"photo.jpg", true},
		{"photo.JPEG", true},
		{"animation.gif", true},
		{"modern.webp", true},
		{"script.exe", false},
		{"page.html", false},
		{"noextension", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.allowed, AllowedExtension(tt.filename))
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "photo.png", "photo.png"},
		{"strips directories", "a/b/photo.png", "photo.png"},
		{"strips windows directories", `C:\uploads\photo.png`, "photo.png"},
		{"removes parent sequences", "..photo.png", "photo.png"},
		{"replaces odd characters", "my photo (1).png", "my_photo__1_.png"},
		{"keeps safe punctuation", "shot_2024-01.final.png", "shot_2024-01.final.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestNewStoredName(t *testing.T) {
	name := NewStoredName("My Photo.JPG")
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotEqual(t, NewStoredName("My Photo.JPG"), name)
}

func TestFileStore_Resolve(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"stored name", "abc123.png", false},
		{"empty", "", true},
		{"parent traversal", "../secret.png", true},
		{"deep traversal", "../../etc/passwd", true},
		{"forward slash", "a/b.png", true},
		{"backslash", `a\b.png`, true},
		{"embedded dots", "a..b.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := store.Resolve(tt.input)
			if tt.wantErr {
				assert.Equal(t, ErrInvalidFilename, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, filepath.Join(store.Dir(), tt.input), path)
			}
		})
	}
}

func TestFileStore_SaveOpenRemove(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)

	err = store.Save("file.png", strings.NewReader("content"))
	assert.NoError(t, err)

	f, err := store.Open("file.png")
	assert.NoError(t, err)
	data, err := io.ReadAll(f)
	f.Close()
	assert.NoError(t, err)
	assert.Equal(t, "content", string(data))

	err = store.Remove("file.png")
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(store.Dir(), "file.png"))
	assert.True(t, os.IsNotExist(err))

	// removing again is not an error
	assert.NoError(t, store.Remove("file.png"))
}

func TestNewFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewFileStore(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}
