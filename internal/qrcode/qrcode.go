package qrcode

import (
	"errors"

	qr "github.com/skip2/go-qrcode"
)

// Size is the edge length of generated images, in pixels.
const Size = 256

var ErrEmptyURL = errors.New("qrcode: empty url")

// Generate creates a QR code PNG that opens url, usually a table's watch link.
func Generate(url string) ([]byte, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	return qr.Encode(url, qr.Medium, Size)
}
