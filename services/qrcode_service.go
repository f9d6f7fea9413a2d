// services/qrcode_service.go
package services

import (
	"errors"
	"strings"

	"github.com/skip2/go-qrcode"
)

// QREncoder matches qrcode.Encode so tests can swap it.
type QREncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// JoinPageURL is the public join form under baseURL.
func JoinPageURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/join"
}

// GenerateQRCode renders content as a size x size PNG.
func GenerateQRCode(content string, size int, encode QREncoder) ([]byte, error) {
	if size <= 0 {
		return nil, errors.New("invalid size: must be positive")
	}
	if content == "" {
		return nil, errors.New("qr code content is empty")
	}
	if encode == nil {
		encode = qrcode.Encode
	}
	png, err := encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
