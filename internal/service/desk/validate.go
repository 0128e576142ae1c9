package desk

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/printmax/enquiry-desk/internal/domain"
)

// inputValidator checks desk inputs and renders failures in English.
type inputValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

var inputs = mustInputValidator()

func mustInputValidator() *inputValidator {
	v, err := newInputValidator()
	if err != nil {
		panic("desk: build validator: " + err.Error())
	}
	return v
}

func newInputValidator() (*inputValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	// Report fields by their json name.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	rules := []struct {
		tag     string
		valid   func(string) bool
		message string
	}{
		{"status", func(v string) bool { return domain.Status(v).IsValid() }, "{0} must be one of Pending, In Progress, Completed, Cancelled"},
		{"channel", func(v string) bool { return domain.Channel(v).IsValid() }, "{0} must be one of In-shop, WhatsApp, Call, Online"},
		{"role", func(v string) bool { return domain.UserRole(v).IsValid() }, "{0} must be admin or staff"},
	}
	for _, r := range rules {
		valid := r.valid
		if err := validate.RegisterValidation(r.tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		}); err != nil {
			return nil, err
		}
		if err := registerMessage(validate, trans, r.tag, r.message); err != nil {
			return nil, err
		}
	}

	return &inputValidator{validate: validate, translator: trans}, nil
}

func registerMessage(validate *validator.Validate, trans ut.Translator, tag, text string) error {
	return validate.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, err := ut.T(tag, fe.Field())
			if err != nil {
				return fe.Error()
			}
			return msg
		},
	)
}

// Struct validates v and converts failures into *domain.ValidationError.
func (iv *inputValidator) Struct(v any) error {
	err := iv.validate.Struct(v)
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
			Message: fe.Translate(iv.translator),
		})
	}
	return domain.NewValidationErrors(fields)
}
