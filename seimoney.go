// Package seimoney provides a typed client for the SeiMoney payment
// platform: accounts, payment links, gated files, employment contracts with
// payroll, analytics, and e-commerce checkouts. Payment-gated calls settle
// through the x402 pay-per-request protocol when given a wallet signer.
package seimoney

import (
	"fmt"

	"github.com/seimoney/seimoney-go/client"
	"github.com/seimoney/seimoney-go/payment"
)

// Version information
const Version = "1.0.0"

// GetVersion returns the library version.
func GetVersion() string {
	return Version
}

// Config carries SDK configuration. APIURL is required; Token may be set
// later via SetToken.
type Config = client.Config

// SDK composes the dispatch core and all resource modules into a single
// entry point.
type SDK struct {
	client *client.Client

	Auth         *AuthModule
	Accounts     *AccountsModule
	PaymentLinks *PaymentLinksModule
	Files        *FilesModule
	Contracts    *ContractsModule
	Analytics    *AnalyticsModule
	Products     *ProductsModule
}

// New validates the configuration and wires one dispatch core and one of
// each resource module. No network call occurs here.
func New(cfg Config, opts ...Option) (*SDK, error) {
	c, err := client.New(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("create seimoney sdk: %w", err)
	}

	return &SDK{
		client:       c,
		Auth:         NewAuthModule(c),
		Accounts:     NewAccountsModule(c),
		PaymentLinks: NewPaymentLinksModule(c),
		Files:        NewFilesModule(c),
		Contracts:    NewContractsModule(c),
		Analytics:    NewAnalyticsModule(c),
		Products:     NewProductsModule(c),
	}, nil
}

// SetToken installs the bearer token for all subsequent requests and
// persists it to the credential store.
func (s *SDK) SetToken(token string) {
	s.client.SetToken(token)
}

// UpdateWalletClient switches the whole SDK instance onto a
// payment-capable transport.
//
// Deprecated: pass the signer to the individual payment-gated call instead
// (FulfillPaymentLink, FulfillFile, FulfillProduct,
// FulfillContractTransaction); a per-call signer always takes precedence.
func (s *SDK) UpdateWalletClient(signer payment.Signer) {
	s.client.UpdateWalletClient(signer)
}
