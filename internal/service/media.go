package service

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/RigobertoEHA1/chismezon/internal/errors"
)

// Decoding a crafted 65535x65535 header would allocate gigabytes; cap the
// decoded size well below that.
const maxDecodedImageBytes = 128 << 20

type MediaService interface {
	SaveImage(data io.Reader) (string, error)
}

type MediaStorage interface {
	Save(filename string, data io.Reader) (string, error)
}

type Media struct {
	storage MediaStorage
	maxDim  int
}

func NewMedia(storage MediaStorage, maxImageDimension int) MediaService {
	return &Media{storage, maxImageDimension}
}

// SaveImage decodes, downscales and re-encodes an uploaded image, then
// stores it under a fresh name and returns the public URL. The original
// filename is never trusted or kept, and re-encoding drops any metadata
// the upload carried.
func (m *Media) SaveImage(data io.Reader) (string, error) {
	raw, err := io.ReadAll(data)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "", &errors.ErrorWithStatusCode{Message: "File is not a supported image", StatusCode: http.StatusBadRequest}
	}
	if int64(cfg.Width)*int64(cfg.Height)*4 > maxDecodedImageBytes {
		return "", &errors.ErrorWithStatusCode{Message: "Image dimensions are too large", StatusCode: http.StatusBadRequest}
	}

	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", &errors.ErrorWithStatusCode{Message: "File is not a supported image", StatusCode: http.StatusBadRequest}
	}

	img = m.downscale(img)

	var buf bytes.Buffer
	var ext string
	switch format {
	case "png":
		ext = ".png"
		err = png.Encode(&buf, img)
	case "gif":
		ext = ".gif"
		err = gif.Encode(&buf, img, nil)
	default:
		ext = ".jpg"
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	name := uuid.NewString() + ext
	return m.storage.Save(name, &buf)
}

// downscale shrinks the image so neither side exceeds the configured
// maximum, keeping the aspect ratio. Smaller images pass through untouched.
func (m *Media) downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if m.maxDim <= 0 || (w <= m.maxDim && h <= m.maxDim) {
		return img
	}

	scaledW, scaledH := w, h
	if w >= h {
		scaledW = m.maxDim
		scaledH = h * m.maxDim / w
	} else {
		scaledH = m.maxDim
		scaledW = w * m.maxDim / h
	}
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
