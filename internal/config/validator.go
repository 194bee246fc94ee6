package config

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	medthemeerrors "github.com/emberhealth/medtheme/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Six hex digits only; the built-in hexcolor tag also accepts the
	// three-digit shorthand, which the token model forbids.
	hexRGBPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("hex_rgb", func(fl validator.FieldLevel) bool {
			return hexRGBPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func validateFile(file *File) error {
	if file == nil {
		return medthemeerrors.NewValidationError("palette", "palette file is nil", nil)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return medthemeerrors.NewValidationError("", err.Error(), err)
	}

	first := validationErrors[0]
	field := strings.TrimPrefix(first.Namespace(), "File.")
	switch first.Tag() {
	case "hex_rgb":
		return medthemeerrors.NewValidationError(field,
			"color values must be #RRGGBB hex triplets", err)
	case "required":
		return medthemeerrors.NewValidationError(field, "required section is missing", err)
	default:
		return medthemeerrors.NewValidationError(field, first.Error(), err)
	}
}
