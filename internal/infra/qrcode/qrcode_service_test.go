package qrcode

import (
	"testing"

	"checkpoint/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateLocationQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	location := &entity.Location{
		ID:      uuid.New(),
		Name:    "Milano Check Point",
		Address: "Via Mauro Macchi 44, Milano",
		Coordinates: &entity.Coordinates{
			Latitude:  45.4895,
			Longitude: 9.2037,
		},
	}

	qrBytes, err := service.GenerateLocationQR(location)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateLocationQR_WithoutCoordinates(t *testing.T) {
	service := NewQRCodeService(256, "M")
	location := &entity.Location{
		ID:      uuid.New(),
		Name:    "Checkpoint Bologna",
		Address: "Via San Carlo 42, Bologna",
	}

	qrBytes, err := service.GenerateLocationQR(location)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestQRCodeService_GenerateLocationQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")
			location := &entity.Location{ID: uuid.New(), Name: "Test Center"}

			qrBytes, err := service.GenerateLocationQR(location)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}
