package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"ecotech/internal/usecase/interfaces"
	"ecotech/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway sends treatment charges to MercadoPago through the
// official SDK.
type MercadoPagoGateway struct {
	client payment.Client
	log    logger.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, log logger.Logger) (*MercadoPagoGateway, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		log.Warn().Msg("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error().Err(err).Msg("failed creating mercado pago sdk config")
		return nil, err
	}
	log.Info().Bool("sandbox", strings.HasPrefix(accessToken, "TEST-")).Msg("mercado pago client initialized")

	return newGateway(payment.NewClient(cfg), log), nil
}

func newGateway(client payment.Client, log logger.Logger) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client, log: log}
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g == nil || g.client == nil {
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}
	l := g.log.WithContext(ctx)
	l.Debug().Int("payload_len", len(requestPayload)).Msg("mercado pago create start")

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		l.Warn().Err(err).Msg("payment payload does not match the sdk request")
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		l.Error().Err(err).Msg("mercado pago create failed")
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	id := strconv.Itoa(resp.ID)
	l.Info().Str("provider_payment_id", id).Str("provider_status", resp.Status).Msg("mercado pago create success")

	return id, resp.Status, b, nil
}
