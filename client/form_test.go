package client

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seimoney/seimoney-go/types"
)

// decodeForm parses an encoded form back into field values and file names.
func decodeForm(t *testing.T, body io.Reader, contentType string) (*multipart.Form, func()) {
	t.Helper()

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	reader := multipart.NewReader(body, params["boundary"])
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	return form, func() { _ = form.RemoveAll() }
}

func TestForm_OmissionAndStringification(t *testing.T) {
	form := NewForm().
		AddString("name", "x").
		AddJSON("metadata", map[string]int{"a": 1}).
		AddString("skip", "").         // empty scalar is omitted
		AddJSON("alsoSkip", nil).      // nil object is omitted
		AddJSON("nilMap", map[string]string(nil)).
		AddFile(FileKey, types.File{Name: "doc.pdf", Reader: strings.NewReader("content")})

	body, contentType, err := form.Encode()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(contentType, "multipart/form-data"))

	decoded, cleanup := decodeForm(t, body, contentType)
	defer cleanup()

	assert.Equal(t, []string{"x"}, decoded.Value["name"])
	assert.Equal(t, []string{`{"a":1}`}, decoded.Value["metadata"])
	assert.NotContains(t, decoded.Value, "skip")
	assert.NotContains(t, decoded.Value, "alsoSkip")
	assert.NotContains(t, decoded.Value, "nilMap")

	// Round-trip the JSON field back to the original object.
	var metadata map[string]int
	require.NoError(t, json.Unmarshal([]byte(decoded.Value["metadata"][0]), &metadata))
	assert.Equal(t, map[string]int{"a": 1}, metadata)

	files := decoded.File[FileKey]
	require.Len(t, files, 1)
	assert.Equal(t, "doc.pdf", files[0].Filename)

	f, err := files[0].Open()
	require.NoError(t, err)
	defer f.Close()
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))
}

func TestForm_ScalarsAreNotJSONQuoted(t *testing.T) {
	form := NewForm().
		AddString("network", "sei-testnet").
		AddBool("oneTime", false).
		AddInt("availableInStock", 0)

	body, contentType, err := form.Encode()
	require.NoError(t, err)

	decoded, cleanup := decodeForm(t, body, contentType)
	defer cleanup()

	assert.Equal(t, "sei-testnet", decoded.Value["network"][0])
	assert.Equal(t, "false", decoded.Value["oneTime"][0])
	assert.Equal(t, "0", decoded.Value["availableInStock"][0])
}

func TestForm_MultipleFilesWithCaptions(t *testing.T) {
	form := NewForm().
		AddFile(FilesKey, types.File{Name: "a.png", ContentType: "image/png", Reader: bytes.NewReader([]byte{1})}).
		AddString("caption-1", "front").
		AddFile(FilesKey, types.File{Name: "b.png", ContentType: "image/png", Reader: bytes.NewReader([]byte{2})})

	body, contentType, err := form.Encode()
	require.NoError(t, err)

	decoded, cleanup := decodeForm(t, body, contentType)
	defer cleanup()

	require.Len(t, decoded.File[FilesKey], 2)
	assert.Equal(t, "a.png", decoded.File[FilesKey][0].Filename)
	assert.Equal(t, "image/png", decoded.File[FilesKey][0].Header.Get("Content-Type"))
	assert.Equal(t, "b.png", decoded.File[FilesKey][1].Filename)
	assert.Equal(t, []string{"front"}, decoded.Value["caption-1"])
}

func TestForm_EncodeFailsOnUnserializableField(t *testing.T) {
	form := NewForm().AddJSON("bad", make(chan int))
	_, _, err := form.Encode()
	assert.Error(t, err)
}
