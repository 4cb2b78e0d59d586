package litscene

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, path string, encode func(*os.File, image.Image) error, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f, img))
}

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{B: 255, A: 255})
			}
		}
	}
	return img
}

func TestAssetServer_LoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "container.png")
	writeImage(t, path, func(f *os.File, img image.Image) error { return png.Encode(f, img) }, checker(4, 3))

	server := NewAssetServer(nil)
	id, err := server.LoadTexture(path)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	tex, ok := server.Texture(id)
	require.True(t, ok)
	assert.Equal(t, int32(4), tex.Width)
	assert.Equal(t, int32(3), tex.Height)
	require.Len(t, tex.Texels, 4*3*4)
	assert.Equal(t, []uint8{255, 0, 0, 255}, tex.Texels[0:4])
	assert.Equal(t, []uint8{0, 0, 255, 255}, tex.Texels[4:8])
}

func TestAssetServer_LoadBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wooden_box.bmp")
	writeImage(t, path, func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }, checker(2, 2))

	server := NewAssetServer(nil)
	id, err := server.LoadTexture(path)
	require.NoError(t, err)

	tex, _ := server.Texture(id)
	assert.Equal(t, int32(2), tex.Width)
	assert.Len(t, tex.Texels, 2*2*4)
}

func TestAssetServer_UniqueIds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	writeImage(t, path, func(f *os.File, img image.Image) error { return png.Encode(f, img) }, checker(1, 1))

	server := NewAssetServer(nil)
	a, err := server.LoadTexture(path)
	require.NoError(t, err)
	b, err := server.LoadTexture(path)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestAssetServer_MissingFileLogsAndContinues(t *testing.T) {
	var out bytes.Buffer
	server := NewAssetServer(NewWriterLogger(&out, &out, "", LevelInfo))

	id, err := server.LoadTexture(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
	assert.Empty(t, id)
	assert.Contains(t, out.String(), "WARN: texture failed to load at path")
}

func TestAssetServer_GarbageIsDecodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	server := NewAssetServer(nil)
	_, err := server.LoadTexture(path)
	assert.ErrorIs(t, err, ErrTextureDecode)
}

func TestAssetServer_ReleaseTexels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.png")
	writeImage(t, path, func(f *os.File, img image.Image) error { return png.Encode(f, img) }, checker(2, 2))

	server := NewAssetServer(nil)
	id, err := server.LoadTexture(path)
	require.NoError(t, err)

	server.ReleaseTexels(id)
	tex, ok := server.Texture(id)
	require.True(t, ok)
	assert.Nil(t, tex.Texels)
	assert.Equal(t, int32(2), tex.Width)
}
