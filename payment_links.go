package seimoney

import (
	"context"
	"net/url"

	"github.com/seimoney/seimoney-go/client"
	"github.com/seimoney/seimoney-go/payment"
	"github.com/seimoney/seimoney-go/types"
)

// PaymentLinksModule manages payment links.
type PaymentLinksModule struct {
	client *client.Client
}

func NewPaymentLinksModule(c *client.Client) *PaymentLinksModule {
	return &PaymentLinksModule{client: c}
}

// GetPaymentLinks returns all payment links for the authenticated user.
func (m *PaymentLinksModule) GetPaymentLinks(ctx context.Context) ([]types.Link, error) {
	var links []types.Link
	if err := m.client.Get(ctx, "/payment-links", &links); err != nil {
		return nil, err
	}
	return links, nil
}

// GetPaymentLink returns one payment link by ID.
func (m *PaymentLinksModule) GetPaymentLink(ctx context.Context, paymentID string) (*types.Link, error) {
	var link types.Link
	if err := m.client.Get(ctx, "/payment-links/"+url.PathEscape(paymentID), &link,
		client.WithRoute("/payment-links/{id}")); err != nil {
		return nil, err
	}
	return &link, nil
}

// CreatePaymentLink creates a new payment link.
func (m *PaymentLinksModule) CreatePaymentLink(ctx context.Context, params types.CreatePaymentLink) (*types.Link, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var link types.Link
	if err := m.client.Post(ctx, "/payment-links/create", params, &link); err != nil {
		return nil, err
	}
	return &link, nil
}

// DeletePaymentLink deletes a payment link. The signature must cover the
// expiry timestamp.
func (m *PaymentLinksModule) DeletePaymentLink(ctx context.Context, params types.DeletePaymentLink) (bool, error) {
	if err := params.Validate(); err != nil {
		return false, err
	}

	var deleted bool
	if err := m.client.Post(ctx, "/payment-links/delete", params, &deleted); err != nil {
		return false, err
	}
	return deleted, nil
}

// FulfillPaymentLink pays a payment link through the wallet-payment
// transport and returns the settlement transaction reference.
func (m *PaymentLinksModule) FulfillPaymentLink(ctx context.Context, params types.FulfillPaymentLink, signer payment.Signer) (string, error) {
	var transaction string
	err := m.client.Get(ctx, "/payment-links/fulfill/"+url.PathEscape(params.PaymentID),
		&transaction, client.WithSigner(signer), client.WithRoute("/payment-links/fulfill/{id}"))
	if err != nil {
		return "", err
	}
	return transaction, nil
}
