package seimoney

import (
	"context"
	"net/url"

	"github.com/seimoney/seimoney-go/client"
	"github.com/seimoney/seimoney-go/payment"
	"github.com/seimoney/seimoney-go/types"
)

// ContractsModule manages employment contracts with automated payroll.
type ContractsModule struct {
	client *client.Client
}

func NewContractsModule(c *client.Client) *ContractsModule {
	return &ContractsModule{client: c}
}

// GetContracts returns all contracts for the authenticated user.
func (m *ContractsModule) GetContracts(ctx context.Context) ([]types.Contract, error) {
	var contracts []types.Contract
	if err := m.client.Get(ctx, "/contracts", &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// GetContract returns one contract by ID.
func (m *ContractsModule) GetContract(ctx context.Context, contractID string) (*types.Contract, error) {
	var contract types.Contract
	if err := m.client.Get(ctx, "/contracts/"+url.PathEscape(contractID), &contract,
		client.WithRoute("/contracts/{id}")); err != nil {
		return nil, err
	}
	return &contract, nil
}

// SignContract countersigns a contract as its recipient.
func (m *ContractsModule) SignContract(ctx context.Context, params types.SignContract) (*types.Contract, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var contract types.Contract
	if err := m.client.Post(ctx, "/contracts/sign", params, &contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

// CreateContract creates a contract, optionally attaching its document.
// Structured parameters (role, payroll, metadata) are JSON-encoded form
// fields; the document travels under the "file" key.
func (m *ContractsModule) CreateContract(ctx context.Context, params types.CreateContract, document *types.File) (*types.Contract, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	form := client.NewForm().
		AddString("name", params.Name).
		AddJSON("role", params.Role).
		AddString("recipientAddress", params.RecipientAddress).
		AddJSON("payroll", params.Payroll).
		AddJSON("metadata", params.Metadata).
		AddString("company", params.Company).
		AddString("documentURL", params.DocumentURL).
		AddString("network", params.Network.String())
	if document != nil {
		form.AddFile(client.FileKey, *document)
	}

	var contract types.Contract
	if err := m.client.PostForm(ctx, "/contracts/create", form, &contract); err != nil {
		return nil, err
	}
	return &contract, nil
}

// FulfillContractTransaction retries a contract's on-chain deployment
// transaction through the wallet-payment transport.
func (m *ContractsModule) FulfillContractTransaction(ctx context.Context, transaction string, signer payment.Signer) (bool, error) {
	var ok bool
	err := m.client.Get(ctx, "/contracts/retry/"+url.PathEscape(transaction),
		&ok, client.WithSigner(signer), client.WithRoute("/contracts/retry/{transaction}"))
	if err != nil {
		return false, err
	}
	return ok, nil
}

// ExtractContract extracts a contract draft from a document using the
// server-side AI extractor.
func (m *ContractsModule) ExtractContract(ctx context.Context, document types.File) (*types.ContractExtract, error) {
	form := client.NewForm().AddFile(client.FileKey, document)

	var extract types.ContractExtract
	if err := m.client.PostForm(ctx, "/contracts/extract", form, &extract); err != nil {
		return nil, err
	}
	return &extract, nil
}
