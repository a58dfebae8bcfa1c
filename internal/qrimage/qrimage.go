// Package qrimage renders URLs as scannable QR images.
package qrimage

import (
	"encoding/base64"
	"fmt"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

// Size is the rendered image edge length in pixels.
const Size = 300

// DataURL renders content as a black-on-white PNG QR code and returns it as
// a base64 data URL suitable for embedding in JSON responses or <img> tags.
func DataURL(content string) (string, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}
	q.ForegroundColor = color.Black
	q.BackgroundColor = color.White

	png, err := q.PNG(Size)
	if err != nil {
		return "", fmt.Errorf("render qr png: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
