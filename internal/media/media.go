// Package media turns uploaded bytes into stored blobs: it sniffs the MIME
// type, re-encodes images, hashes the original content and writes the result
// to a BlobStore under a server-generated name.
package media

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/image/webp"

	"github.com/kingrain94/business-feed-api/internal/domain"
)

const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeWebP = "image/webp"

	jpegQuality = 80

	// maxPixels bounds decode memory for a single upload.
	maxPixels = 40_000_000
)

var ImageMimeTypes = []string{MimeJPEG, MimePNG, MimeWebP}

var (
	ErrNotImage     = errors.New("File must be an image (PNG, JPEG, or WebP)")
	ErrImageTooBig  = errors.New("Image dimensions are too large")
	ErrCorruptImage = errors.New("Image could not be decoded")
	ErrEmptyFile    = errors.New("File is empty")
)

// Processed is an upload ready to be written.
type Processed struct {
	OriginalFilename string
	StoredFilename   string
	Data             []byte
	MimeType         string
	Hash             string
	FileType         domain.FileType
}

// Detect sniffs content and ignores whatever the client claimed.
func Detect(data []byte) string {
	return mimetype.Detect(data).String()
}

func IsImageMime(mime string) bool {
	return slices.Contains(ImageMimeTypes, strings.ToLower(mime))
}

// Process runs steps 1-4 of the upload: sniff, gate, hash, transcode.
func Process(originalFilename string, data []byte, requireImage bool) (*Processed, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	detected := mimetype.Detect(data)
	mime := detected.String()
	isImage := IsImageMime(mime)
	if requireImage && !isImage {
		return nil, ErrNotImage
	}

	sum := sha256.Sum256(data)
	out := &Processed{
		OriginalFilename: filepath.Base(originalFilename),
		StoredFilename:   StoredFilename(originalFilename, detected.Extension()),
		Data:             data,
		MimeType:         mime,
		Hash:             hex.EncodeToString(sum[:]),
		FileType:         domain.FileTypeGeneric,
	}

	if isImage {
		transcoded, err := Transcode(mime, data)
		if err != nil {
			return nil, err
		}
		out.Data = transcoded
		out.FileType = domain.FileTypeImage
	}
	return out, nil
}

// Transcode decodes an image and re-encodes it in the same format. JPEG is
// written at quality 80 and PNG at best compression. WebP has no encoder in
// the Go ecosystem without cgo, so it is decoded to prove it is well formed
// and the original bytes are kept.
func Transcode(mime string, data []byte) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err == nil && cfg.Width*cfg.Height > maxPixels {
		return nil, ErrImageTooBig
	}

	var buf bytes.Buffer
	switch mime {
	case MimeJPEG:
		img, err := jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptImage, err)
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
			return nil, fmt.Errorf("failed to encode jpeg: %w", err)
		}
	case MimePNG:
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptImage, err)
		}
		encoder := png.Encoder{CompressionLevel: png.BestCompression}
		if err := encoder.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to encode png: %w", err)
		}
	case MimeWebP:
		if _, err := webp.Decode(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptImage, err)
		}
		return data, nil
	default:
		return nil, ErrNotImage
	}
	return buf.Bytes(), nil
}

// StoredFilename is a fresh UUID plus the original extension when it is a
// plain token, else fallbackExt (the extension of the sniffed type).
func StoredFilename(originalFilename, fallbackExt string) string {
	ext := strings.TrimPrefix(filepath.Ext(originalFilename), ".")
	if !isPlainExtension(ext) {
		ext = strings.TrimPrefix(fallbackExt, ".")
	}

	name := uuid.New().String()
	if ext != "" {
		name += "." + ext
	}
	return name
}

func isPlainExtension(ext string) bool {
	if ext == "" || len(ext) > 10 {
		return false
	}
	for _, r := range ext {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
