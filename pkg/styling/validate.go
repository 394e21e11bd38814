package styling

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/razvanlitianu/stylekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// checkParams validates a modifier's parameter struct and converts the first
// failure into a ValidationError naming the modifier and offending parameter.
func checkParams(modifier string, params any) error {
	err := validatorInstance().Struct(params)
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		param := strings.ToLower(ve.Field())
		msg := fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
		return apperrors.NewValidationError(modifier, param, msg, err)
	}

	return apperrors.NewValidationError(modifier, "", err.Error(), err)
}
