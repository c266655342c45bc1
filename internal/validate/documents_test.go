package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/internal/validate"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

var (
	pngHeader  = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	jpegHeader = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}
	pdfHeader  = []byte("%PDF-1.7\n")
)

func upload(name string, header []byte, size int) dto.FileUpload {
	content := make([]byte, size)
	copy(content, header)
	return dto.FileUpload{FileName: name, Content: content}
}

func TestDocumentAcceptsSupportedTypes(t *testing.T) {
	assert.NoError(t, validate.Document(upload("scan.pdf", pdfHeader, 1<<10)))
	assert.NoError(t, validate.Document(upload("photo.jpg", jpegHeader, 1<<10)))
	assert.NoError(t, validate.Document(upload("photo.png", pngHeader, 1<<10)))
}

func TestDocumentSniffsContentNotExtension(t *testing.T) {
	// A text file renamed to .pdf is still rejected.
	err := validate.Document(dto.FileUpload{FileName: "fake.pdf", Content: []byte("just some text")})
	assert.True(t, util.IsValidation(err))

	// A real PNG with a misleading name is accepted.
	assert.NoError(t, validate.Document(upload("export.dat", pngHeader, 512)))
}

func TestDocumentSizeLimit(t *testing.T) {
	assert.NoError(t, validate.Document(upload("exact.pdf", pdfHeader, validate.MaxDocumentSize)))

	err := validate.Document(upload("big.pdf", pdfHeader, validate.MaxDocumentSize+1))
	assert.True(t, util.IsValidation(err))

	err = validate.Document(dto.FileUpload{FileName: "empty.pdf"})
	assert.True(t, util.IsValidation(err))
}

func TestDocumentsRequiresAtLeastOne(t *testing.T) {
	err := validate.Documents(nil)
	assert.True(t, util.IsValidation(err))

	err = validate.Documents([]dto.FileUpload{
		upload("ok.png", pngHeader, 512),
		{FileName: "bad.txt", Content: []byte("notes")},
	})
	assert.True(t, util.IsValidation(err), "one bad attachment fails the whole set")

	assert.NoError(t, validate.Documents([]dto.FileUpload{
		upload("a.png", pngHeader, 512),
		upload("b.pdf", pdfHeader, 512),
	}))
}
