package idea

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var errBlankText = errors.New("idea_text is blank")

func init() {
	validate = validator.New()

	// report json names in errors
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks the shape invariants of a received idea. Topic membership
// in the taxonomy is checked by whoever owns the registry.
func Validate(i Idea) error {
	if err := validate.Struct(i); err != nil {
		return err
	}
	if strings.TrimSpace(i.Text) == "" {
		return errBlankText
	}
	return nil
}
