// Package validation runs struct-tag validation on service inputs and reports
// failures as domain validation errors keyed by JSON field name.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/heartmarshall/fairplay-backend/internal/domain"
)

const notBlankTag = "notblank"

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlank)
	_ = validate.RegisterTranslation(notBlankTag, translator,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string {
			return fe.Field() + " cannot be blank"
		},
	)
}

// notBlank rejects strings made only of whitespace. Nil pointers pass so the
// tag can be combined with omitempty on optional fields.
func notBlank(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

// Struct validates v by its `validate` tags. Failures come back as a
// *domain.ValidationError with one FieldError per failed field.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   fe.Field(),
			Message: fe.Translate(translator),
		})
	}
	return domain.NewValidationErrors(fields)
}
