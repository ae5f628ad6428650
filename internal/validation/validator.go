package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"service-rental/internal/apperr"
)

const tagNotBlank = "notblank"

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// Validator checks tagged input structs and reports failures as
// *apperr.ValidationError using JSON field names.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New constructs a Validator with English translations and the notblank rule.
func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}
	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}
	if err := registerNotBlank(validate, enTrans); err != nil {
		return nil, err
	}

	return &Validator{validate: validate, translator: enTrans}, nil
}

// MustNew is New for wiring code that cannot recover from a broken validator.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Struct validates data. Missing required fields are reported together in
// declaration order; otherwise the first failing rule is reported.
func (v *Validator) Struct(data any) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == tagNotBlank {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) > 0 {
		return apperr.Required(missing...)
	}
	fe := fieldErrs[0]
	return apperr.Invalid(fe.Translate(v.translator), fe.Field())
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func registerNotBlank(validate *validator.Validate, enTrans ut.Translator) error {
	err := validate.RegisterValidation(tagNotBlank, func(fl validator.FieldLevel) bool {
		field := fl.Field()
		switch field.Kind() {
		case reflect.String:
			return strings.TrimSpace(field.String()) != ""
		case reflect.Ptr:
			if field.IsNil() {
				return false
			}
			return field.Elem().Kind() != reflect.String || strings.TrimSpace(field.Elem().String()) != ""
		default:
			return !field.IsZero()
		}
	})
	if err != nil {
		return err
	}

	return validate.RegisterTranslation(tagNotBlank, enTrans,
		func(trans ut.Translator) error {
			return trans.Add(tagNotBlank, "{0} is required", false)
		},
		func(trans ut.Translator, fe validator.FieldError) string {
			t, err := trans.T(fe.Tag(), fe.Field())
			if err != nil {
				return fe.Field() + " is required"
			}
			return t
		},
	)
}
