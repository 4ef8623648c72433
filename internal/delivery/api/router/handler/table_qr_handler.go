package handler

import (
	"net/http"

	"callbell/internal/delivery/api/response"
	"callbell/internal/domain/entity"
	"callbell/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TableQRHandlerParams holds dependencies for TableQRHandler, injected by Fx.
type TableQRHandlerParams struct {
	fx.In

	QRCodeSvc service.QRCodeService
}

// TableQRHandler renders printable table cards.
type TableQRHandler struct {
	qrcodeSvc service.QRCodeService
}

// NewTableQRHandler is the constructor for TableQRHandler
func NewTableQRHandler(params TableQRHandlerParams) *TableQRHandler {
	return &TableQRHandler{qrcodeSvc: params.QRCodeSvc}
}

// GenerateTableQR returns a PNG encoding the call link of one table
func (h *TableQRHandler) GenerateTableQR(c echo.Context) error {
	var req SendCallRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid JSON body")
	}

	if entity.NormalizeZone(req.Zone) == "" {
		return response.BadRequest(c, "zone required")
	}
	if req.Table <= 0 {
		return response.BadRequest(c, "valid table required")
	}

	png, err := h.qrcodeSvc.GenerateTableQR(req.Zone, int(req.Table))
	if err != nil {
		return errors.Wrap(err, "failed to generate table QR")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
