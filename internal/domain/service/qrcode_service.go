package service

import "manna/internal/domain/entity"

// QRCodeService defines the interface for meditation share codes
type QRCodeService interface {
	// ShareURL returns the public link of a meditation
	ShareURL(meditation *entity.Meditation) string

	// GenerateMeditationQR renders a PNG QR code pointing at the meditation's share URL
	GenerateMeditationQR(meditation *entity.Meditation) ([]byte, error)
}
