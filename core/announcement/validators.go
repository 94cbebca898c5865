package announcement

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/fyp/core"
)

var (
	audienceTag  = "audience"
	audienceText = "{0} must be one of students, supervisors or general"
)

// InitValidators registers the announcement validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(audienceTag, audienceValidation)
	core.RegisterCustomTranslation(validate, translator, audienceTag, audienceText)
}

func audienceValidation(fl validator.FieldLevel) bool {
	return Audience(fl.Field().String()).Valid()
}
