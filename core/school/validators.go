package school

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"eduquest/core"
)

var (
	subjectTag  = "subject"
	subjectText = "must be one of the school subjects"

	statusTag  = "entstatus"
	statusText = "must be either Active or Inactive"
)

// InitValidators registers this domain's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(subjectTag, subjectValidation)
	core.RegisterCustomTranslation(validate, translator, subjectTag, subjectText)

	_ = validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(validate, translator, statusTag, statusText)
}

// subjectValidation only allows subjects from the fixed catalogue.
func subjectValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, s := range Subjects {
		if s == val {
			return true
		}
	}
	return false
}

func statusValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	return val == StatusActive || val == StatusInactive
}
