// Package netx holds small HTTP payload helpers shared by client code.
package netx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
)

// ErrEmptyFileName is returned when a multipart file part has no file name.
var ErrEmptyFileName = errors.New("file name is empty")

// FileForm is a fully buffered multipart/form-data body carrying one file.
// ContentType includes the boundary and must be sent verbatim.
type FileForm struct {
	Body        []byte
	ContentType string
}

// NewFileForm reads r into a multipart body under the given form field.
func NewFileForm(field, fileName string, r io.Reader) (*FileForm, error) {
	if fileName == "" {
		return nil, ErrEmptyFileName
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(field, fileName)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy file content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	return &FileForm{Body: buf.Bytes(), ContentType: mw.FormDataContentType()}, nil
}
