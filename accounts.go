package seimoney

import (
	"context"

	"github.com/seimoney/seimoney-go/client"
	"github.com/seimoney/seimoney-go/types"
)

// AccountsModule manages account profiles.
type AccountsModule struct {
	client *client.Client
}

func NewAccountsModule(c *client.Client) *AccountsModule {
	return &AccountsModule{client: c}
}

// GetAccount returns the authenticated user's account.
func (m *AccountsModule) GetAccount(ctx context.Context) (*types.Account, error) {
	var account types.Account
	if err := m.client.Get(ctx, "/accounts", &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateAccount creates a new account.
func (m *AccountsModule) CreateAccount(ctx context.Context, params types.CreateAccount) (*types.Account, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var account types.Account
	if err := m.client.Post(ctx, "/create/account", params, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
