package api

import (
	"bytes"
	"fmt"
	"mime/multipart"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

// Form accumulates multipart form data: ordered scalar fields plus file
// parts. The two upload endpoints are the only places the backend accepts
// multipart instead of JSON, and one of them requires multipart even when no
// file is attached.
type Form struct {
	fields [][2]string
	files  []filePart
}

type filePart struct {
	field    string
	fileName string
	content  []byte
}

// NewForm creates an empty form.
func NewForm() *Form {
	return &Form{}
}

// AddField appends a scalar form field.
func (f *Form) AddField(key, value string) *Form {
	f.fields = append(f.fields, [2]string{key, value})
	return f
}

// AddFields appends scalar fields in order.
func (f *Form) AddFields(fields [][2]string) *Form {
	f.fields = append(f.fields, fields...)
	return f
}

// AddFile appends a file part under the given field name. Repeated calls
// with the same field name produce repeated parts, which is how the claims
// endpoint receives multiple documents.
func (f *Form) AddFile(field string, upload dto.FileUpload) *Form {
	f.files = append(f.files, filePart{field: field, fileName: upload.FileName, content: upload.Content})
	return f
}

// Encode renders the body and its content type (with boundary).
func (f *Form) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, "", util.ToClientError(fmt.Errorf("encode field %s: %w", field[0], err))
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.field, file.fileName)
		if err != nil {
			return nil, "", util.ToClientError(fmt.Errorf("encode file %s: %w", file.fileName, err))
		}
		if _, err := part.Write(file.content); err != nil {
			return nil, "", util.ToClientError(fmt.Errorf("encode file %s: %w", file.fileName, err))
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", util.ToClientError(err)
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
