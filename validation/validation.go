// Package validation checks dispatch requests structurally, including the
// conditional-requirement rules, and reports human-readable error lists.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Genocadio/nitifier/models"
)

// Report is the outcome of validating one request. Errors is empty when
// Valid is true.
type Report struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validator wraps a configured go-playground validator. Construct once and
// share; it is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	// Report JSON field names, not Go struct field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// DispatchRequest validates an issue notification request for the given
// channel. The event type is expected to be normalized already so the
// conditional assignee/escalation rules can match the canonical keys.
func (v *Validator) DispatchRequest(channel string, req *models.DispatchRequest) Report {
	errs := v.structErrors(req)

	if req.Recipient != "" {
		switch channel {
		case models.ChannelEmail:
			if v.validate.Var(req.Recipient, "email") != nil {
				errs = append(errs, "recipient must be a valid email address")
			}
		case models.ChannelSMS:
			if v.validate.Var(req.Recipient, "e164") != nil {
				errs = append(errs, "recipient must be an E.164 phone number")
			}
		}
	}

	return report(errs)
}

// TripRequest validates a trip notification request: destination and type
// are mandatory, remainingTime only for the time-remaining variant, and at
// least one of email/phone must be present and well-formed.
func (v *Validator) TripRequest(req *models.TripDispatchRequest) Report {
	return report(v.structErrors(req))
}

func (v *Validator) structErrors(req interface{}) []string {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, describe(fe))
	}
	return out
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		// Param is "<Field> <value>"; surface the triggering value.
		parts := strings.Fields(fe.Param())
		if len(parts) == 2 {
			return fmt.Sprintf("%s is required for %s notifications", field, parts[1])
		}
		return fmt.Sprintf("%s is required", field)
	case "required_without":
		return fmt.Sprintf("%s is required when %s is not provided", field, strings.ToLower(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "e164":
		return fmt.Sprintf("%s must be an E.164 phone number", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func report(errs []string) Report {
	return Report{Valid: len(errs) == 0, Errors: errs}
}
