package api

import (
	"errors"
	"strings"
	"sync"

	"fitcoach/internal/schedule"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Custom validator tags for slot keys.
const (
	TagISODate  = "isodate"
	TagSlotTime = "slottime"
)

// ValidationError describes one rejected field.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

var registerOnce sync.Once

// RegisterValidators installs the slot tags on gin's binding engine. Safe to
// call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerTags(v)
		}
	})
}

func registerTags(v *validator.Validate) {
	_ = v.RegisterValidation(TagISODate, func(fl validator.FieldLevel) bool {
		_, err := schedule.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation(TagSlotTime, func(fl validator.FieldLevel) bool {
		return schedule.IsLabel(fl.Field().String())
	})
}

// ValidateStruct validates s with a standalone validator that knows the slot
// tags.
func ValidateStruct(s interface{}) []ValidationError {
	v := validator.New()
	registerTags(v)
	return collect(v.Struct(s))
}

func collect(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: errorMessage(fe),
		})
	}
	return out
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case TagISODate:
		return schedule.ErrInvalidDate.Error()
	case TagSlotTime:
		return schedule.ErrInvalidTime.Error()
	default:
		return fe.Field() + " is invalid"
	}
}

// BindError turns a gin binding error into a response. Slot tag failures keep
// their dedicated codes.
func BindError(err error) ErrorResponse {
	fields := collect(err)
	if len(fields) == 0 {
		return Err(CodeValidationFailed, "invalid request: "+err.Error())
	}
	for _, f := range fields {
		switch f.Tag {
		case TagISODate:
			return Err(CodeInvalidDate, f.Message)
		case TagSlotTime:
			return Err(CodeInvalidTime, f.Message)
		}
	}
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, f.Message)
	}
	return Err(CodeValidationFailed, strings.Join(msgs, "; "))
}
