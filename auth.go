package seimoney

import (
	"context"

	"github.com/seimoney/seimoney-go/client"
	"github.com/seimoney/seimoney-go/types"
)

// AuthModule handles signature-based authorization.
type AuthModule struct {
	client *client.Client
}

func NewAuthModule(c *client.Client) *AuthModule {
	return &AuthModule{client: c}
}

// Authorize exchanges a wallet signature for an account and a bearer token.
// The token is NOT installed automatically; callers must propagate it with
// SetToken before issuing authenticated requests.
func (m *AuthModule) Authorize(ctx context.Context, params types.Authorization) (*types.AuthorizedAccount, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var account types.AuthorizedAccount
	if err := m.client.Post(ctx, "/authorize", params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// SetToken installs the bearer token for subsequent requests.
func (m *AuthModule) SetToken(token string) {
	m.client.SetToken(token)
}
