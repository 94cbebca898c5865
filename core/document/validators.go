package document

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/fyp/core"
)

var (
	docTypeTag  = "doctype"
	docTypeText = "{0} must be one of proposal, srs, sdd, final-report or other"

	docExtTag  = "docext"
	docExtText = "only pdf, doc, docx, pptx and zip files are accepted"
)

// InitValidators registers the document validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(docTypeTag, func(fl validator.FieldLevel) bool {
		return Type(fl.Field().String()).Valid()
	})
	core.RegisterCustomTranslation(validate, translator, docTypeTag, docTypeText)

	_ = validate.RegisterValidation(docExtTag, func(fl validator.FieldLevel) bool {
		return hasAllowedExt(fl.Field().String())
	})
	core.RegisterCustomTranslation(validate, translator, docExtTag, docExtText)
}
