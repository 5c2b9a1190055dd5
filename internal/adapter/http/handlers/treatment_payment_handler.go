package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "ecotech/internal/adapter/http/dto/response"
	"ecotech/internal/usecase"
	"ecotech/pkg"
	"ecotech/pkg/logger"

	"github.com/gin-gonic/gin"
)

// TreatmentPaymentHandler charges the treatment cost of disposal requests.
type TreatmentPaymentHandler struct {
	usecase  usecase.ITreatmentPaymentUseCase
	mockMode bool
	log      logger.Logger
}

func NewTreatmentPaymentHandler(uc usecase.ITreatmentPaymentUseCase, mockMode bool, log logger.Logger) *TreatmentPaymentHandler {
	return &TreatmentPaymentHandler{usecase: uc, mockMode: mockMode, log: log}
}

// CreatePaymentByRequestID charges the request named in the path.
func (h *TreatmentPaymentHandler) CreatePaymentByRequestID(c *gin.Context) {
	ctx := c.Request.Context()
	l := h.log.WithContext(ctx)
	requestID := c.Param("request_id")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			l.Warn().Err(err).Str("request_id", requestID).Msg("invalid payment payload")
			abortWith(c, errInvalidPayload)
			return
		}
		l.Debug().Err(err).Str("request_id", requestID).Msg("payload invalid in mock mode; using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.Charge(ctx, requestID, mpPayload)
	if err != nil {
		abortWith(c, mapTreatmentPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTreatmentPayment(created))
}

// GetPaymentByRequestID returns the latest payment of a request.
func (h *TreatmentPaymentHandler) GetPaymentByRequestID(c *gin.Context) {
	payments, err := h.usecase.ListByRequestID(c.Request.Context(), c.Param("request_id"))
	if err != nil {
		abortWith(c, mapTreatmentPaymentError(err))
		return
	}
	if len(payments) == 0 {
		abortWith(c, mapTreatmentPaymentError(usecase.ErrPaymentNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromTreatmentPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapTreatmentPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentRequestID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Treatment cost is zero", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRequestNotChargeable):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_CHARGEABLE", "Cancelled requests cannot be charged", http.StatusConflict)
	case errors.Is(err, usecase.ErrTreatmentAlreadyPaid):
		return pkg.NewDomainErrorSimple("ALREADY_PAID", "Treatment already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return mapDomainError(err)
	}
}
