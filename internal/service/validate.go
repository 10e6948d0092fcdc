package service

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Candidate is a log entry as submitted, before an ID is assigned.
type Candidate struct {
	Date     string  `json:"date" validate:"required"`
	Bedtime  string  `json:"bedtime" validate:"required"`
	Waketime string  `json:"waketime" validate:"required"`
	Quality  float64 `json:"quality" validate:"gte=1,lte=5"`
	Notes    string  `json:"notes"`
}

type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// ValidationError blocks a save; it carries every collected violation.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	msg := e.Errors[0]
	for _, m := range e.Errors[1:] {
		msg += "; " + m
	}
	return msg
}

// ValidateLog checks a candidate entry. All rule violations are collected
// rather than short-circuited; only a nil candidate collapses to the single
// generic error. Fractional quality values inside [1,5] are accepted.
func ValidateLog(c *Candidate) ValidationResult {
	if c == nil {
		return ValidationResult{Valid: false, Errors: []string{"Invalid entry"}}
	}
	var errs []string
	if err := validate.Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return ValidationResult{Valid: false, Errors: []string{"Invalid entry"}}
		}
		for _, fe := range verrs {
			switch fe.Field() {
			case "Date":
				errs = append(errs, "Date is required")
			case "Bedtime":
				errs = append(errs, "Bedtime is required")
			case "Waketime":
				errs = append(errs, "Wake time is required")
			case "Quality":
				errs = append(errs, "Quality must be 1 to 5")
			}
		}
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
