package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"boomerang/internal/domain/entities"
	"boomerang/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements the two-phase payment flow on Mercado Pago:
// CreateSession authorizes the amount without capturing, Capture settles it.
// The authorize/capture split is what lets submission retry a failed
// persistence step without charging twice.

type MercadoPagoGateway struct {
	client          payment.Client
	paymentMethodID string
	mockMode        bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		client:          payment.NewClient(cfg),
		paymentMethodID: getenvDefault("MERCADOPAGO_PAYMENT_METHOD_ID", "master"),
	}, nil
}

func (g *MercadoPagoGateway) CreateSession(ctx context.Context, amountCents int64, description string) (entities.PaymentSession, error) {
	now := time.Now().UTC()

	if g != nil && g.mockMode {
		id := strconv.FormatInt(now.UnixNano(), 10)
		log.Printf("[payment][gateway] mock session created session_id=%s amount=%d", id, amountCents)
		return entities.PaymentSession{ID: id, AmountCents: amountCents, CreatedAt: now}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return entities.PaymentSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] authorize start amount=%d", amountCents)

	// Capture stays false: money is reserved here and settled later by
	// Capture, once the return record is about to be written.
	req := payment.Request{
		TransactionAmount: float64(amountCents) / 100,
		Description:       description,
		PaymentMethodID:   g.paymentMethodID,
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk authorize failed err=%v", err)
		return entities.PaymentSession{}, err
	}
	log.Printf("[payment][gateway] authorize success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return entities.PaymentSession{
		ID:          fmt.Sprintf("%d", resp.ID),
		AmountCents: amountCents,
		CreatedAt:   now,
	}, nil
}

func (g *MercadoPagoGateway) Capture(ctx context.Context, sessionID string) (string, error) {
	if g != nil && g.mockMode {
		ref := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock capture success session_id=%s reference=%s", sessionID, ref)
		return ref, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(sessionID)
	if err != nil {
		log.Printf("[payment][gateway] invalid session id session_id=%s err=%v", sessionID, err)
		return "", fmt.Errorf("invalid payment session id %q: %w", sessionID, err)
	}
	log.Printf("[payment][gateway] capture start provider_payment_id=%d", id)

	resp, err := g.client.Capture(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk capture failed provider_payment_id=%d err=%v", id, err)
		return "", err
	}
	log.Printf("[payment][gateway] capture success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
