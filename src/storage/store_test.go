package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveKeepsBaseName(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	name, err := store.Save(MediaDir, "../../etc/foto.jpg", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "acervo/foto.jpg", name)

	b, err := store.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))
}

func TestSaveAddsSuffixOnCollision(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	first, err := store.Save(MediaDir, "foto.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save(MediaDir, "foto.jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(second, "acervo/foto_"))
	assert.True(t, strings.HasSuffix(second, ".jpg"))

	b, err := store.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "a", string(b))
}

func TestPathRejectsEscapes(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root)

	p, err := store.Path("../../outside.txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, root))

	_, err = store.Path("")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestRemoveIgnoresMissingFiles(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	name, err := store.Save(MediaDir, "a.png", bytes.NewReader([]byte{1}))
	require.NoError(t, err)

	require.NoError(t, RemoveAll(store, []string{name, "acervo/missing.png", ""}))
	p, _ := store.Path(name)
	_, err = os.Stat(p)
	assert.True(t, os.IsNotExist(err))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "foto.jpg", BaseName(`C:\Users\x\foto.jpg`))
	assert.Equal(t, "arquivo", BaseName("   "))
	assert.Equal(t, "arquivo", BaseName("/"))
}

func TestExtensionAllowed(t *testing.T) {
	allowed := []string{"mp3", "ogg"}
	assert.True(t, ExtensionAllowed("audio.MP3", allowed))
	assert.False(t, ExtensionAllowed("audio.wav", allowed))
	assert.False(t, ExtensionAllowed("audio", allowed))
	assert.Contains(t, ExtensionError("audio.wav", allowed), "“wav”")
}

func TestExtractDriveFileID(t *testing.T) {
	cases := map[string]string{
		"https://drive.google.com/file/d/abc_123-X/view?usp=sharing": "abc_123-X",
		"https://drive.google.com/open?id=XYZ987":                    "XYZ987",
		"https://drive.google.com/uc?export=download&id=Q1":          "Q1",
	}
	for link, want := range cases {
		got, err := ExtractDriveFileID(link)
		require.NoError(t, err, link)
		assert.Equal(t, want, got)
		assert.True(t, IsDriveURL(link))
	}
	_, err := ExtractDriveFileID("https://example.com/foto.jpg")
	assert.Error(t, err)
}

func TestSaveQRCode(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root)

	name, err := SaveQRCode(store, 7, "https://memorial.example/memorial/peca/1")
	require.NoError(t, err)
	assert.Equal(t, "acervo/qrcodes/midia_7.png", name)

	b, err := os.ReadFile(filepath.Join(root, "acervo", "qrcodes", "midia_7.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")))
}
