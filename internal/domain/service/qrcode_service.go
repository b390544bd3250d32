package service

import (
	"checkpoint/internal/domain/entity"
)

// QRCodeService renders a shareable QR code for a testing center.
type QRCodeService interface {
	// GenerateLocationQR returns a PNG QR code encoding the center's
	// identity and, when resolved, its coordinates.
	GenerateLocationQR(location *entity.Location) ([]byte, error)
}
