package qrcode

import (
	"net/url"
	"strconv"

	"callbell/config"
	"callbell/internal/domain/entity"
	"callbell/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://callbell.local/call"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
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
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// ProvideQRCodeService builds the service from the qrcode config section.
func ProvideQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// TableLink returns baseURL with the normalized zone and table number as query parameters.
func (s *qrcodeService) TableLink(zone string, table int) string {
	query := url.Values{}
	query.Set("zone", entity.NormalizeZone(zone))
	query.Set("table", strconv.Itoa(table))

	link, err := url.Parse(s.baseURL)
	if err != nil {
		return s.baseURL + "?" + query.Encode()
	}

	existing := link.Query()
	for key, values := range query {
		existing[key] = values
	}
	link.RawQuery = existing.Encode()

	return link.String()
}

// GenerateTableQR renders the table link as a PNG.
func (s *qrcodeService) GenerateTableQR(zone string, table int) ([]byte, error) {
	if entity.NormalizeZone(zone) == "" || table <= 0 {
		return nil, errors.New("zone and a positive table number are required")
	}

	// Generate QR code
	qrCode, err := qrcode.New(s.TableLink(zone, table), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
