// Package imaging converts card scans before upload.
//
// Source images arrive as whatever the scanner produced, usually large
// PNGs. Rehosting transcodes them to JPEG to keep the CDN payloads
// reasonable, optionally downscaling scans that exceed a maximum
// dimension.
package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// jpegQuality matches the quality the pipeline has always uploaded at.
const jpegQuality = 90

// PNGToJPEG re-encodes a PNG (or any decodable image) as JPEG.
func PNGToJPEG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return encodeJPEG(img)
}

// Downscale shrinks an image so neither dimension exceeds maxDim,
// preserving aspect ratio, and returns it JPEG-encoded. Images already
// within bounds are re-encoded unchanged in size.
func Downscale(data []byte, maxDim int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width > maxDim || height > maxDim {
		if width >= height {
			height = height * maxDim / width
			width = maxDim
		} else {
			width = width * maxDim / height
			height = maxDim
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	return encodeJPEG(img)
}

func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
