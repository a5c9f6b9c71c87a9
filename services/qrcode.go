package services

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QR size bounds in pixels. The default matches the share-card renderer.
const (
	QRMinSize     = 120
	QRMaxSize     = 1080
	QRDefaultSize = 300
)

// PlantQRCode renders a PNG QR code pointing at a plant's public detail page.
// The size is clamped to the supported range; zero selects the default.
func PlantQRCode(publicBaseURL, plantID string, size int) ([]byte, error) {
	if size == 0 {
		size = QRDefaultSize
	}
	if size < QRMinSize {
		size = QRMinSize
	}
	if size > QRMaxSize {
		size = QRMaxSize
	}

	url := fmt.Sprintf("%s/plant-detail.html?id=%s", publicBaseURL, plantID)
	png, err := qrcode.Encode(url, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encoding qr for %s: %w", url, err)
	}
	return png, nil
}
