package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"manna/config"
	"manna/internal/domain/entity"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService("https://manna.app", 256, tt.level)
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_ShareURL(t *testing.T) {
	svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://manna.app/"}})
	m := &entity.Meditation{ID: "abc123", Category: entity.CategoryGratitude}

	assert.Equal(t, "https://manna.app/meditacoes/agradecer/abc123", svc.ShareURL(m))
}

func TestQRCodeService_GenerateMeditationQR(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Small QR", 128, 128},
		{"Large QR", 512, 512},
		{"Default size", 0, defaultSize},
	}

	m := &entity.Meditation{ID: "abc123", Category: entity.CategoryPeace}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newQRCodeService("https://manna.app", tt.size, "M")

			qrBytes, err := svc.GenerateMeditationQR(m)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.want, img.Bounds().Dx())
		})
	}
}

func TestNewQRCodeService_NilConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})
	m := &entity.Meditation{ID: "x", Category: entity.CategorySleep}

	assert.Equal(t, "/meditacoes/sono/x", svc.ShareURL(m))
}
