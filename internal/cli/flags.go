package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/SohamMhatre7788/insurai/internal/api/dto"
	"github.com/SohamMhatre7788/insurai/pkg/util"
)

// stringSliceFlag collects a repeatable flag value.
type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return fmt.Sprintf("%v", []string(*s))
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// newFlagSet builds a flag set that reports errors instead of exiting.
func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

// parseAmount parses a currency flag value.
func parseAmount(name, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, util.NewValidationError(fmt.Sprintf("-%s is required", name), nil)
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, util.NewValidationError(fmt.Sprintf("-%s must be a number", name), nil)
	}
	return amount, nil
}

// loadUpload reads a document from disk for a multipart submission. Size and
// type checks happen later in the validation layer, before any network call.
func loadUpload(path string) (dto.FileUpload, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return dto.FileUpload{}, util.NewValidationError(fmt.Sprintf("cannot read file %s", path), nil)
	}
	return dto.FileUpload{FileName: filepath.Base(path), Content: content}, nil
}
