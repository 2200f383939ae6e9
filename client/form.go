package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"reflect"
	"strconv"
	"strings"

	"github.com/seimoney/seimoney-go/types"
)

// Form key for single-file uploads; multi-image uploads use FilesKey with
// caption-<1-based-index> caption fields.
const (
	FileKey  = "file"
	FilesKey = "files"
)

// Form is an explicit, ordered field list for multipart requests. Modules
// build one per operation so the omission and stringification rules stay
// testable independent of the transport: empty optional fields are omitted,
// objects and arrays are JSON-encoded, scalars are written verbatim.
type Form struct {
	fields []formField
	files  []filePart
	err    error
}

type formField struct {
	key   string
	value string
}

type filePart struct {
	key  string
	file types.File
}

func NewForm() *Form {
	return &Form{}
}

// AddString appends a scalar field. Empty values are omitted.
func (f *Form) AddString(key, value string) *Form {
	if value == "" {
		return f
	}
	f.fields = append(f.fields, formField{key: key, value: value})
	return f
}

// AddBool appends a boolean field. False is still serialized; absence and
// false are different things server-side.
func (f *Form) AddBool(key string, value bool) *Form {
	f.fields = append(f.fields, formField{key: key, value: strconv.FormatBool(value)})
	return f
}

// AddInt appends an integer field.
func (f *Form) AddInt(key string, value int) *Form {
	f.fields = append(f.fields, formField{key: key, value: strconv.Itoa(value)})
	return f
}

// AddJSON appends an object or array field, JSON-encoded. Nil values are
// omitted entirely.
func (f *Form) AddJSON(key string, value any) *Form {
	if f.err != nil || isNil(value) {
		return f
	}
	data, err := json.Marshal(value)
	if err != nil {
		f.err = fmt.Errorf("encode form field %q: %w", key, err)
		return f
	}
	f.fields = append(f.fields, formField{key: key, value: string(data)})
	return f
}

// AddFile appends a file part under key.
func (f *Form) AddFile(key string, file types.File) *Form {
	f.files = append(f.files, filePart{key: key, file: file})
	return f
}

// Encode renders the multipart body and returns it with its content type.
func (f *Form) Encode() (io.Reader, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return nil, "", fmt.Errorf("write form field %q: %w", field.key, err)
		}
	}

	for _, part := range f.files {
		dst, err := createFilePart(w, part)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(dst, part.file.Reader); err != nil {
			return nil, "", fmt.Errorf("write form file %q: %w", part.key, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func createFilePart(w *multipart.Writer, part filePart) (io.Writer, error) {
	if part.file.ContentType == "" {
		dst, err := w.CreateFormFile(part.key, part.file.Name)
		if err != nil {
			return nil, fmt.Errorf("create form file %q: %w", part.key, err)
		}
		return dst, nil
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(part.key), escapeQuotes(part.file.Name)))
	h.Set("Content-Type", part.file.ContentType)

	dst, err := w.CreatePart(h)
	if err != nil {
		return nil, fmt.Errorf("create form file %q: %w", part.key, err)
	}
	return dst, nil
}

func escapeQuotes(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
