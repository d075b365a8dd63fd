package imagepkg

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}

// GenerateQRImage returns an image.Image for further composition.
func GenerateQRImage(text string, size int) (image.Image, error) {
	b, err := GenerateQRPNG(text, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}

// StampQR pastes a QR code for text onto a copy of img with its top-left at pos.
func StampQR(img image.Image, text string, size int, pos image.Point) (*image.NRGBA, error) {
	q, err := GenerateQRImage(text, size)
	if err != nil {
		return nil, err
	}
	return imaging.Paste(img, q, pos), nil
}
