package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"ecotech/internal/domain/entities"
	"ecotech/internal/infrastructure/metrics"
	"ecotech/internal/usecase/interfaces"
	"ecotech/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound                = errors.New("treatment payment not found")
	ErrInvalidPaymentRequestID        = errors.New("invalid request_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrNothingToCharge                = errors.New("treatment cost is zero")
	ErrRequestNotChargeable           = errors.New("cancelled disposal request cannot be charged")
	ErrTreatmentAlreadyPaid           = errors.New("treatment already paid")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions tune how payloads are sent to MercadoPago.
type PaymentOptions struct {
	Policy entities.CostPolicy
	// Mock fabricates an approved provider response instead of calling the
	// gateway.
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/treatment_payment_usecase.go -package=mocks

// ITreatmentPaymentUseCase charges the treatment cost of a request.
type ITreatmentPaymentUseCase interface {
	Charge(ctx context.Context, requestID string, mpPayload json.RawMessage) (entities.TreatmentPayment, error)
	GetByID(ctx context.Context, id string) (entities.TreatmentPayment, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.TreatmentPayment, error)
}

type TreatmentPaymentUseCase struct {
	repo     interfaces.ITreatmentPaymentRepository
	requests interfaces.IRequestRepository
	gateway  interfaces.IPaymentGateway
	opts     PaymentOptions
	guard    *Guard
	log      logger.Logger

	// charging serialises the paid check with the charge it guards.
	charging sync.Mutex
}

var _ ITreatmentPaymentUseCase = (*TreatmentPaymentUseCase)(nil)

func NewTreatmentPaymentUseCase(
	repo interfaces.ITreatmentPaymentRepository,
	requests interfaces.IRequestRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	guard *Guard,
	log logger.Logger,
) *TreatmentPaymentUseCase {
	if opts.Policy == "" {
		opts.Policy = entities.CostPolicyFlat
	}
	return &TreatmentPaymentUseCase{
		repo:     repo,
		requests: requests,
		gateway:  gateway,
		opts:     opts,
		guard:    guardOrNew(guard),
		log:      log,
	}
}

func (u *TreatmentPaymentUseCase) Charge(ctx context.Context, requestID string, mpPayload json.RawMessage) (entities.TreatmentPayment, error) {
	l := u.log.WithContext(ctx)
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.TreatmentPayment{}, ErrInvalidPaymentRequestID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			l.Warn().Str("request_id", requestID).Msg("invalid mercado pago payload")
			return entities.TreatmentPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.Mock {
		return entities.TreatmentPayment{}, ErrPaymentGatewayNotConfigured
	}

	u.charging.Lock()
	defer u.charging.Unlock()

	cost, err := u.quote(ctx, requestID)
	if err != nil {
		return entities.TreatmentPayment{}, err
	}
	if cost.Amount <= 0 {
		return entities.TreatmentPayment{}, ErrNothingToCharge
	}
	l.Info().Str("request_id", requestID).Float64("amount", cost.Amount).Str("policy", string(cost.Policy)).Msg("charging treatment")

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.TreatmentPayment{}, ErrInvalidMPPayload
	}
	if !u.opts.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.TreatmentPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			return entities.TreatmentPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = requestID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("%s of disposal request %s", cost.Treatment, requestID)
	}
	// The amount always comes from the request, never from the caller.
	reqMap["transaction_amount"] = cost.Amount
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.TreatmentPayment{}, err
	}

	if err := u.ensureUnpaid(ctx, requestID); err != nil {
		l.Warn().Err(err).Str("request_id", requestID).Msg("charge refused")
		return entities.TreatmentPayment{}, err
	}

	var providerID, providerStatus string
	var providerResp json.RawMessage
	if u.opts.Mock {
		providerID, providerStatus, providerResp, err = mockProviderResponse(reqMap)
	} else {
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
	}
	if err != nil {
		l.Error().Err(err).Str("request_id", requestID).Msg("payment gateway failed")
		return entities.TreatmentPayment{}, mapGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		l.Warn().Err(err).Str("request_id", requestID).Msg("provider response is not an object")
	}

	p := entities.TreatmentPayment{
		ID:           providerID,
		RequestID:    requestID,
		Amount:       cost.Amount,
		Policy:       cost.Policy,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.TreatmentPayment{}, err
	}

	metrics.IncPayment(string(created.Status))
	l.Info().Str("request_id", requestID).Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("treatment charged")
	return created, nil
}

func (u *TreatmentPaymentUseCase) quote(ctx context.Context, requestID string) (RequestCost, error) {
	u.guard.mu.RLock()
	defer u.guard.mu.RUnlock()

	req, err := loadRequest(ctx, u.requests, requestID)
	if err != nil {
		return RequestCost{}, err
	}
	if req.Status() == entities.StatusCancelled {
		return RequestCost{}, ErrRequestNotChargeable
	}
	return costOf(req, u.opts.Policy)
}

// ensureUnpaid fails when the request already has an approved payment.
func (u *TreatmentPaymentUseCase) ensureUnpaid(ctx context.Context, requestID string) error {
	payments, err := u.repo.ListByRequestID(ctx, requestID)
	if err != nil {
		return err
	}
	for _, p := range payments {
		if p.Status == entities.PaymentStatusApproved {
			return ErrTreatmentAlreadyPaid
		}
	}
	return nil
}

func (u *TreatmentPaymentUseCase) GetByID(ctx context.Context, id string) (entities.TreatmentPayment, error) {
	id, err := normalizeID(id)
	if err != nil {
		return entities.TreatmentPayment{}, err
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.TreatmentPayment{}, err
	}
	if p.ID == "" {
		return entities.TreatmentPayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *TreatmentPaymentUseCase) ListByRequestID(ctx context.Context, requestID string) ([]entities.TreatmentPayment, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidPaymentRequestID
	}
	return u.repo.ListByRequestID(ctx, requestID)
}

func mockProviderResponse(reqMap map[string]any) (string, string, json.RawMessage, error) {
	id := uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := make(map[string]any, len(reqMap)+5)
	for k, v := range reqMap {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *TreatmentPaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.opts.AccessToken), "TEST-")
}

func (u *TreatmentPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	if v, ok := m["payer"]; !ok || v == nil {
		m["payer"] = map[string]any{}
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// either payer.id or payer.email identifies the payer
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.opts.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// which is what the sandbox accepts.
func (u *TreatmentPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}

	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`), strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`), strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
