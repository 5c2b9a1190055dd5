package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ecotech/pkg/logger"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePaymentClient implements only Create; any other call panics.
type fakePaymentClient struct {
	payment.Client

	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakePaymentClient) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway("  ", logger.Nop())
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	client := &fakePaymentClient{resp: &payment.Response{ID: 42, Status: "approved"}}
	g := newGateway(client, logger.Nop())

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":30,"payment_method_id":"pix","external_reference":"req-1"}`))
	require.NoError(t, err)
	assert.Equal(t, "42", id)
	assert.Equal(t, "approved", status)
	assert.Equal(t, 30.0, client.got.TransactionAmount)
	assert.Equal(t, "req-1", client.got.ExternalReference)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "approved", body["status"])
}

func TestMercadoPagoGateway_Errors(t *testing.T) {
	g := newGateway(&fakePaymentClient{err: errors.New(`{"status":400}`)}, logger.Nop())

	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{"payment_method_id":"pix"}`))
	assert.EqualError(t, err, `{"status":400}`)

	_, _, _, err = g.CreatePayment(context.Background(), json.RawMessage(`[1,2]`))
	assert.Error(t, err)
}
