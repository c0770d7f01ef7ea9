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

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrIntentNotSettled = errors.New("payment intent was not approved by the gateway")

// MercadoPagoGateway implements both the card and the hosted-invoice seams
// on Mercado Pago products: the payments API for card intents (authorize
// then capture) and checkout preferences for the hosted redirect.
type MercadoPagoGateway struct {
	payments    payment.Client
	preferences preference.Client
	mockMode    bool
}

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
		payments:    payment.NewClient(cfg),
		preferences: preference.NewClient(cfg),
	}, nil
}

// CreateIntent authorizes the charge without capturing it. The returned
// token is the provider payment id the client confirms against.
func (g *MercadoPagoGateway) CreateIntent(ctx context.Context, amount float64, currency, reference string) (string, error) {
	if g != nil && g.mockMode {
		token := "mock-intent-" + uuid.NewString()
		log.Printf("[payment][gateway] mock intent created token=%s amount=%.2f ref=%s", token, amount, reference)
		return token, nil
	}
	if g == nil || g.payments == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[payment][gateway] intent create start amount=%.2f currency=%s ref=%s", amount, currency, reference)
	resp, err := g.payments.Create(ctx, payment.Request{
		TransactionAmount: amount,
		Description:       fmt.Sprintf("Service request %s", reference),
		ExternalReference: reference,
		Capture:           false,
	})
	if err != nil {
		log.Printf("[payment][gateway] intent create failed ref=%s err=%v", reference, err)
		return "", err
	}
	log.Printf("[payment][gateway] intent created provider_payment_id=%d status=%s", resp.ID, resp.Status)
	return strconv.Itoa(resp.ID), nil
}

// Confirm captures a previously authorized intent and returns the
// provider's transaction id.
func (g *MercadoPagoGateway) Confirm(ctx context.Context, clientToken string) (string, error) {
	if g != nil && g.mockMode {
		ref := "mock-txn-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock confirm token=%s txn=%s", clientToken, ref)
		return ref, nil
	}
	if g == nil || g.payments == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(clientToken)
	if err != nil {
		return "", fmt.Errorf("invalid intent token %q: %w", clientToken, err)
	}

	resp, err := g.payments.Capture(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] capture failed provider_payment_id=%d err=%v", id, err)
		return "", err
	}
	if resp.Status != "approved" {
		log.Printf("[payment][gateway] capture not approved provider_payment_id=%d status=%s", id, resp.Status)
		return "", ErrIntentNotSettled
	}
	log.Printf("[payment][gateway] capture success provider_payment_id=%d", resp.ID)
	return strconv.Itoa(resp.ID), nil
}

// FindSettledByReference searches the provider for an approved payment
// carrying our external reference. Used by the reconciliation sweep to
// recover charges that settled remotely but never landed locally.
func (g *MercadoPagoGateway) FindSettledByReference(ctx context.Context, reference string) (string, bool, error) {
	if g != nil && g.mockMode {
		return "", false, nil
	}
	if g == nil || g.payments == nil {
		return "", false, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.payments.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{"external_reference": reference},
		Limit:   10,
	})
	if err != nil {
		log.Printf("[payment][gateway] search failed ref=%s err=%v", reference, err)
		return "", false, err
	}
	for _, p := range resp.Results {
		if p.Status == "approved" {
			log.Printf("[payment][gateway] settled payment found ref=%s provider_payment_id=%d", reference, p.ID)
			return strconv.Itoa(p.ID), true, nil
		}
	}
	return "", false, nil
}

// CreateInvoice creates a checkout preference and returns its redirect URL.
func (g *MercadoPagoGateway) CreateInvoice(ctx context.Context, amount float64, currency, reference string) (string, string, error) {
	if g != nil && g.mockMode {
		ref := "mock-invoice-" + uuid.NewString()
		url := "https://sandbox.mercadopago.example/checkout/" + ref
		log.Printf("[payment][gateway] mock invoice ref=%s url=%s", ref, url)
		return ref, url, nil
	}
	if g == nil || g.preferences == nil {
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}

	log.Printf("[payment][gateway] invoice create start amount=%.2f currency=%s ref=%s", amount, currency, reference)
	resp, err := g.preferences.Create(ctx, preference.Request{
		ExternalReference: reference,
		Items: []preference.ItemRequest{
			{
				Title:      fmt.Sprintf("Service request %s", reference),
				Quantity:   1,
				UnitPrice:  amount,
				CurrencyID: currency,
			},
		},
	})
	if err != nil {
		log.Printf("[payment][gateway] invoice create failed ref=%s err=%v", reference, err)
		return "", "", err
	}
	log.Printf("[payment][gateway] invoice created preference_id=%s", resp.ID)
	return resp.ID, resp.InitPoint, nil
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
