package types

import "io"

// File is an upload attachment: the form filename, an optional MIME type,
// and the content reader. Readers are consumed once at dispatch time.
type File struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// ImageFile is a product image upload with an optional caption.
type ImageFile struct {
	File    File
	Caption string
}
