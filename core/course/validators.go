package course

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/prachishaw/ClassCapsule/core"
)

var (
	statusTag  = "assignmentstatus"
	statusText = "invalid assignment status"
)

// InitValidators registers the course validators; core.InitValidators must run first.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(validate, translator, statusTag, statusText)
}

func statusValidation(fl validator.FieldLevel) bool {
	return AssignmentStatus(fl.Field().String()).Valid()
}
