package qrcode

import (
	"net/url"
	"strings"

	"manna/config"
	"manna/internal/domain/entity"
	"manna/internal/domain/service"
	"manna/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates the share code service from configuration
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	return newQRCodeService(qrCfg.BaseURL, qrCfg.Size, qrCfg.ErrorCorrectionLevel)
}

func newQRCodeService(baseURL string, size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// ShareURL links to the meditation page of the web app: {base}/meditacoes/{slug}/{id}
func (s *qrcodeService) ShareURL(meditation *entity.Meditation) string {
	return s.baseURL + "/meditacoes/" + url.PathEscape(meditation.Category.Slug()) + "/" + url.PathEscape(meditation.ID)
}

// GenerateMeditationQR renders the share URL as a PNG
func (s *qrcodeService) GenerateMeditationQR(meditation *entity.Meditation) ([]byte, error) {
	qrCode, err := qrcode.New(s.ShareURL(meditation), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
