package validate

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

// MaxDocumentSize caps each supporting document at 10 MiB.
const MaxDocumentSize = 10 << 20

// acceptedDocumentTypes are the only MIME types the backend stores. Detection
// sniffs the file content; the extension alone is not trusted.
var acceptedDocumentTypes = []string{"application/pdf", "image/jpeg", "image/png"}

// Document checks a single upload's type and size.
func Document(doc dto.FileUpload) error {
	if len(doc.Content) == 0 {
		return util.NewValidationError(fmt.Sprintf("file is empty: %s", doc.FileName), nil)
	}
	if len(doc.Content) > MaxDocumentSize {
		return util.NewValidationError(
			fmt.Sprintf("file too large: %s, maximum size is 10MB", doc.FileName), nil)
	}

	detected := mimetype.Detect(doc.Content)
	for _, accepted := range acceptedDocumentTypes {
		if detected.Is(accepted) {
			return nil
		}
	}
	return util.NewValidationError(
		fmt.Sprintf("invalid file type: %s, only PDF and images (JPG, PNG) are allowed", doc.FileName), nil)
}

// Documents checks the whole attachment set. At least one accepted document
// is required; any violation blocks the submission before a request is made.
func Documents(docs []dto.FileUpload) error {
	if len(docs) == 0 {
		return util.NewValidationError("at least one supporting document is required", nil)
	}
	for _, doc := range docs {
		if err := Document(doc); err != nil {
			return err
		}
	}
	return nil
}
