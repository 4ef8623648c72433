package handler

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"callbell/internal/delivery/api/response"
	domainerrors "callbell/internal/domain/errors"
	"callbell/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CallHandlerParams holds dependencies for CallHandler, injected by Fx.
type CallHandlerParams struct {
	fx.In

	CallUC usecase.CallUsecase
}

// CallHandler serves the table and staff sides of a call.
type CallHandler struct {
	callUC usecase.CallUsecase
}

// NewCallHandler is the constructor for CallHandler
func NewCallHandler(params CallHandlerParams) *CallHandler {
	return &CallHandler{callUC: params.CallUC}
}

// TableNumber accepts a JSON number or a numeric string. Anything unparseable
// decodes to 0 so it fails validation instead of binding.
type TableNumber int

func (n *TableNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = 0

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		*n = TableNumber(leadingInt(s))

		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil || math.IsNaN(f) || math.Abs(f) > math.MaxInt32 {
		return nil
	}
	*n = TableNumber(int(f))

	return nil
}

// leadingInt parses the optional sign and digits at the start of s, ignoring the rest.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}

	return v
}

// SendCallRequest represents the request body sent by a table
type SendCallRequest struct {
	Zone  string      `json:"zone"`
	Table TableNumber `json:"table"`
}

// SendCall creates a call and announces it to every active device
func (h *CallHandler) SendCall(c echo.Context) error {
	var req SendCallRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid JSON body")
	}

	result, err := h.callUC.CreateCall(c.Request().Context(), req.Zone, int(req.Table))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, response.SendCallResponse{
		Success:            true,
		RequestID:          result.Call.ID.String(),
		Sent:               result.Sent,
		DeactivatedInvalid: result.Deactivated,
	})
}

// ClaimCallRequest represents the request body sent by a staff device
type ClaimCallRequest struct {
	RequestID string `json:"request_id" validate:"required"`
	DeviceID  string `json:"device_id" validate:"required"`
	Name      string `json:"name"`
}

// ClaimCall lets a staff member take a call. Losing the race answers 409 with the current status.
func (h *CallHandler) ClaimCall(c echo.Context) error {
	var req ClaimCallRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid JSON body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	outcome, err := h.callUC.ClaimCall(c.Request().Context(), &usecase.ClaimRequest{
		CallID:      req.RequestID,
		DeviceID:    req.DeviceID,
		DisplayName: req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !outcome.Claimed {
		return response.JSON(c, http.StatusConflict, response.ClaimCallResponse{
			Success: false,
			Error:   domainerrors.ErrAlreadyTaken.ErrorCode(),
			Status:  string(outcome.Status),
		})
	}

	return response.JSON(c, http.StatusOK, response.ClaimCallResponse{
		Success: true,
		Status:  "taken",
	})
}
