package seimoney

import (
	"context"
	"fmt"
	"net/url"

	"github.com/seimoney/seimoney-go/client"
	"github.com/seimoney/seimoney-go/payment"
	"github.com/seimoney/seimoney-go/types"
)

// ProductsModule manages the merchant checkout and its products.
type ProductsModule struct {
	client *client.Client
}

func NewProductsModule(c *client.Client) *ProductsModule {
	return &ProductsModule{client: c}
}

// GetCheckout returns the authenticated user's storefront profile, or nil
// when none exists yet.
func (m *ProductsModule) GetCheckout(ctx context.Context) (*types.Checkout, error) {
	var checkout *types.Checkout
	if err := m.client.Get(ctx, "/checkout", &checkout); err != nil {
		return nil, err
	}
	return checkout, nil
}

// CreateCheckout creates the storefront profile.
func (m *ProductsModule) CreateCheckout(ctx context.Context, params types.CreateCheckout) (*types.Checkout, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var checkout types.Checkout
	if err := m.client.Post(ctx, "/checkout/create", params, &checkout); err != nil {
		return nil, err
	}
	return &checkout, nil
}

// GetProducts returns all products in the checkout.
func (m *ProductsModule) GetProducts(ctx context.Context) ([]types.Product, error) {
	var products []types.Product
	if err := m.client.Get(ctx, "/checkout/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct returns one product by ID.
func (m *ProductsModule) GetProduct(ctx context.Context, productID string) (*types.Product, error) {
	var product types.Product
	if err := m.client.Get(ctx, "/checkout/products/"+url.PathEscape(productID), &product,
		client.WithRoute("/checkout/products/{id}")); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a product with its images. Images are appended
// under the "files" key; captions travel as caption-<1-based-index>
// fields.
func (m *ProductsModule) CreateProduct(ctx context.Context, params types.CreateProduct, images []types.ImageFile) (*types.Product, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	form := client.NewForm().
		AddString("name", params.Name).
		AddString("description", params.Description).
		AddInt("availableInStock", params.AvailableInStock).
		AddBool("isFeatured", params.IsFeatured).
		AddBool("isOnSale", params.IsOnSale).
		AddJSON("amount", params.Amount).
		AddString("network", params.Network.String())
	if params.MaxQuantity > 0 {
		form.AddInt("maxQuantity", params.MaxQuantity)
	}
	for i, image := range images {
		form.AddFile(client.FilesKey, image.File)
		if image.Caption != "" {
			form.AddString(fmt.Sprintf("caption-%d", i+1), image.Caption)
		}
	}

	var product types.Product
	if err := m.client.PostForm(ctx, "/products/create", form, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// FulfillProduct pays for a product through the wallet-payment transport
// and returns the settlement transaction reference.
func (m *ProductsModule) FulfillProduct(ctx context.Context, params types.FulfillProduct, signer payment.Signer) (string, error) {
	var transaction string
	err := m.client.Get(ctx, "/products/fulfill/"+url.PathEscape(params.ProductID),
		&transaction, client.WithSigner(signer), client.WithRoute("/products/fulfill/{id}"))
	if err != nil {
		return "", err
	}
	return transaction, nil
}
