package pricing

import (
	"errors"
	"fmt"

	"xutix/internal/model"
)

var (
	ErrUnknownCategory = model.ErrUnknownCategory
	ErrUnknownPackage  = errors.New("unknown package")
)

func unknownCategory(c model.Category) error {
	return fmt.Errorf("%w: %q", ErrUnknownCategory, string(c))
}

func unknownPackage(id string) error {
	return fmt.Errorf("%w: %q", ErrUnknownPackage, id)
}
