package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

func sampleImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, sampleImage()))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T) []byte {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, sampleImage(), &jpeg.Options{Quality: 100}))
	return buf.Bytes()
}

func TestProcess_PNG(t *testing.T) {
	data := encodePNG(t)

	out, err := Process("avatar.png", data, true)

	require.NoError(t, err)
	assert.Equal(t, MimePNG, out.MimeType)
	assert.Equal(t, domain.FileTypeImage, out.FileType)
	assert.Equal(t, "avatar.png", out.OriginalFilename)
	assert.True(t, strings.HasSuffix(out.StoredFilename, ".png"))
	assert.Len(t, out.Hash, 64)

	decoded, err := png.Decode(bytes.NewReader(out.Data))
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Bounds().Dx())
}

func TestProcess_JPEGIsReencoded(t *testing.T) {
	data := encodeJPEG(t)

	out, err := Process("photo.jpg", data, true)

	require.NoError(t, err)
	assert.Equal(t, MimeJPEG, out.MimeType)
	_, err = jpeg.Decode(bytes.NewReader(out.Data))
	assert.NoError(t, err)
}

func TestProcess_HashIsOfOriginalBytes(t *testing.T) {
	data := encodePNG(t)

	first, err := Process("a.png", data, true)
	require.NoError(t, err)
	second, err := Process("b.png", data, true)
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Hash)
	assert.NotEqual(t, first.StoredFilename, second.StoredFilename)
}

func TestProcess_RejectsNonImageWhenRequired(t *testing.T) {
	_, err := Process("notes.png", []byte("just some text, not a picture"), true)

	assert.ErrorIs(t, err, ErrNotImage)
}

func TestProcess_GenericFileAllowed(t *testing.T) {
	data := []byte("plain text body")

	out, err := Process("notes.txt", data, false)

	require.NoError(t, err)
	assert.Equal(t, domain.FileTypeGeneric, out.FileType)
	assert.Equal(t, data, out.Data)
	assert.True(t, strings.HasSuffix(out.StoredFilename, ".txt"))
}

func TestProcess_Empty(t *testing.T) {
	_, err := Process("x.png", nil, true)

	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestProcess_CorruptImage(t *testing.T) {
	data := encodePNG(t)
	truncated := data[:len(data)/2]

	_, err := Process("broken.png", truncated, true)

	assert.ErrorIs(t, err, ErrCorruptImage)
}

func TestStoredFilename(t *testing.T) {
	tests := []struct {
		name     string
		original string
		fallback string
		suffix   string
	}{
		{name: "keeps plain extension", original: "cat.JPG", fallback: ".jpg", suffix: ".JPG"},
		{name: "strips path", original: "../../etc/passwd.png", fallback: ".png", suffix: ".png"},
		{name: "falls back on odd extension", original: "x.p/ng", fallback: ".png", suffix: ".png"},
		{name: "no extension at all", original: "blob", fallback: "", suffix: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StoredFilename(tt.original, tt.fallback)

			assert.NotContains(t, got, "/")
			assert.NotContains(t, got, "..")
			if tt.suffix == "" {
				assert.Len(t, got, 36)
			} else {
				assert.True(t, strings.HasSuffix(got, tt.suffix), got)
			}
		})
	}
}

func TestLocalStore_RoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.txt", []byte("hello"), "text/plain"))

	rc, size, err := store.Open(ctx, "a.txt")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, int64(5), size)
	assert.Equal(t, "hello", string(body))

	require.NoError(t, store.Delete(ctx, "a.txt"))
	_, _, err = store.Open(ctx, "a.txt")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	err = store.Put(context.Background(), "../escape", []byte("x"), "text/plain")

	assert.ErrorIs(t, err, ErrInvalidBlobName)
}
