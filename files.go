package seimoney

import (
	"context"
	"net/url"

	"github.com/seimoney/seimoney-go/client"
	"github.com/seimoney/seimoney-go/payment"
	"github.com/seimoney/seimoney-go/types"
)

// FilesModule manages payment-gated files.
type FilesModule struct {
	client *client.Client
}

func NewFilesModule(c *client.Client) *FilesModule {
	return &FilesModule{client: c}
}

// GetFiles returns all gated files for the authenticated user.
func (m *FilesModule) GetFiles(ctx context.Context) ([]types.GatedFile, error) {
	var files []types.GatedFile
	if err := m.client.Get(ctx, "/files", &files); err != nil {
		return nil, err
	}
	return files, nil
}

// GetFile returns one gated file by ID.
func (m *FilesModule) GetFile(ctx context.Context, fileID string) (*types.GatedFile, error) {
	var file types.GatedFile
	if err := m.client.Get(ctx, "/files/"+url.PathEscape(fileID), &file,
		client.WithRoute("/files/{id}")); err != nil {
		return nil, err
	}
	return &file, nil
}

// UploadFile uploads a new gated file. Scalar parameters become form
// fields, metadata and amount are JSON-encoded, the content is appended
// under the "file" key.
func (m *FilesModule) UploadFile(ctx context.Context, params types.UploadFile, file types.File) (*types.GatedFile, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	form := client.NewForm().
		AddString("name", params.Name).
		AddString("description", params.Description).
		AddString("previewURL", params.PreviewURL).
		AddJSON("metadata", params.Metadata).
		AddJSON("amount", params.Amount).
		AddString("network", params.Network.String()).
		AddFile(client.FileKey, file)

	var gated types.GatedFile
	if err := m.client.PostForm(ctx, "/files/upload", form, &gated); err != nil {
		return nil, err
	}
	return &gated, nil
}

// DownloadFile returns a short-lived download URL for a file the caller
// owns. The signature must cover the expiry timestamp.
func (m *FilesModule) DownloadFile(ctx context.Context, params types.DownloadFile) (*types.FileURL, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var out types.FileURL
	if err := m.client.Post(ctx, "/files/download", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteFile deletes a gated file.
func (m *FilesModule) DeleteFile(ctx context.Context, params types.DeleteFile) (bool, error) {
	if err := params.Validate(); err != nil {
		return false, err
	}

	var deleted bool
	if err := m.client.Post(ctx, "/files/delete", params, &deleted); err != nil {
		return false, err
	}
	return deleted, nil
}

// FulfillFile pays for a gated file through the wallet-payment transport
// and returns the released URL with the settlement transaction reference.
func (m *FilesModule) FulfillFile(ctx context.Context, params types.FulfillFile, signer payment.Signer) (*types.FulfilledFile, error) {
	var out types.FulfilledFile
	err := m.client.Get(ctx, "/files/fulfill/"+url.PathEscape(params.FileID),
		&out, client.WithSigner(signer), client.WithRoute("/files/fulfill/{id}"))
	if err != nil {
		return nil, err
	}
	return &out, nil
}
