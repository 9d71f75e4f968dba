package storage

import (
	"bytes"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

// SaveQRCode encodes content as a PNG and stores it under QRCodeDir.
func SaveQRCode(store Store, mediaID int, content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, qrSize)
	if err != nil {
		return "", err
	}
	return store.Save(QRCodeDir, fmt.Sprintf("midia_%d.png", mediaID), bytes.NewReader(png))
}
