package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/SohamMhatre7788/insurai/pkg/util"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Struct runs tag-based validation and reports failures as a local
// validation error, keyed by field name, before any request is sent.
func Struct(s interface{}) error {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return util.NewValidationError(err.Error(), nil)
	}

	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fmt.Sprintf("failed %q validation", fe.Tag())
	}
	return util.NewValidationError("invalid input", details)
}
