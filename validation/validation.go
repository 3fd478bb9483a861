package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator"

	"github.com/Utkarsh123xd/Student-Sphere/db/docstore"
	"github.com/Utkarsh123xd/Student-Sphere/logger"
)

type Validator struct {
	validator                *validator.Validate
	logger                   logger.Logger
	tagValidationDetailsOnce sync.Once
	tagValidationDetailsMap  map[string]tagValidationDetails
}

type tagValidationDetails struct {
	validatorFunc validator.Func
	err           error
}

var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
var avatarPattern = regexp.MustCompile(`^(Avatar-\d+|initial-avatar)\.png$`)

// Attribute fields that update-profile may set.
var updatableProfileFields = map[string]struct{}{
	docstore.FieldBio:              {},
	docstore.FieldProgram:          {},
	docstore.FieldDept:             {},
	docstore.FieldYear:             {},
	docstore.FieldGraduation:       {},
	docstore.FieldUndergradCollege: {},
	docstore.FieldSpecialization:   {},
	docstore.FieldCG:               {},
	docstore.FieldLinkedIn:         {},
	docstore.FieldMajor:            {},
}

func New(logger logger.Logger) (*Validator, error) {
	validator := &Validator{validator: validator.New(), logger: logger}
	validator.validator.RegisterTagNameFunc(useJSONFieldNames)
	if err := validator.registerCustomValidatorsForTags(); err != nil {
		return nil, err
	}

	return validator, nil
}

func (v *Validator) Validate(i any) error {

	if err := v.validator.Struct(i); err != nil {
		v.logger.Warn("validation failed", "err", err.Error())
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {

			tagValidationDetails, ok := v.getTagValidationDetails()[validationErrs[0].Tag()]
			if ok {
				return tagValidationDetails.err
			}

			switch validationErrs[0].Tag() {
			case "required":
				return fmt.Errorf("missing required field '%s'", validationErrs[0].Field())

			case "min", "max":
				return fmt.Errorf("value or length of field '%s' is not in the expected range", validationErrs[0].Field())

			}
		}
		return err
	}
	return nil
}

func (v *Validator) getTagValidationDetails() map[string]tagValidationDetails {
	v.tagValidationDetailsOnce.Do(func() {
		v.tagValidationDetailsMap = map[string]tagValidationDetails{
			"valid_query":         {validatorFunc: v.isValidQuery, err: errors.New("invalid query")},
			"valid_handle":        {validatorFunc: v.isValidHandle, err: errors.New("invalid handle")},
			"valid_profile_field": {validatorFunc: v.isValidProfileField, err: errors.New("unknown profile field")},
			"valid_avatar":        {validatorFunc: v.isValidAvatar, err: errors.New("invalid avatar name")},
		}
	})
	return v.tagValidationDetailsMap
}

func (v *Validator) registerCustomValidatorsForTags() error {

	tagValidationDetailsMap := v.getTagValidationDetails()

	for tag, tagValidationDetails := range tagValidationDetailsMap {
		if err := v.validator.RegisterValidation(tag, tagValidationDetails.validatorFunc); err != nil {
			v.logger.Error("failed to register customer validator function", "err", err.Error())
			return err
		}
	}
	return nil
}

func useJSONFieldNames(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func (v *Validator) isValidQuery(fl validator.FieldLevel) bool {
	query := fl.Field().String()
	if len(query) == 0 {
		return false
	}
	if strings.TrimSpace(query) == "" {
		v.logger.Warn("query is empty", "query", query)
		return false
	}

	return true
}

func (v *Validator) isValidHandle(fl validator.FieldLevel) bool {
	handle := fl.Field().String()
	if len(handle) == 0 || len(handle) > 64 {
		return false
	}
	if !handlePattern.MatchString(handle) {
		v.logger.Warn("handle has unexpected characters", "handle", handle)
		return false
	}

	return true
}

func (v *Validator) isValidProfileField(fl validator.FieldLevel) bool {
	field := fl.Field().String()
	_, ok := updatableProfileFields[field]
	if !ok {
		v.logger.Warn("unknown profile field", "field", field)
	}
	return ok
}

func (v *Validator) isValidAvatar(fl validator.FieldLevel) bool {
	avatar := fl.Field().String()
	if !avatarPattern.MatchString(avatar) {
		v.logger.Warn("avatar name has unexpected shape", "avatar", avatar)
		return false
	}
	return true
}
