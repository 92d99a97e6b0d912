package employees

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phonePattern matches Indian mobile numbers with an optional +91 prefix.
var phonePattern = regexp.MustCompile(`^(\+91)?[6-9][0-9]{9}$`)

// EmployeeRequest is the body shape shared by create and update. Gender is
// normalized before validation, so only the stored codes pass oneof.
type EmployeeRequest struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone" validate:"required,in_phone"`
	Gender string `json:"gender" validate:"required,oneof=M F O"`
}

// NewValidator returns a validator with the module's custom rules registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("in_phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}
