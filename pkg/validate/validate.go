// Package validate turns binding failures into a per-field result so clients
// learn exactly which input was rejected.
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError names one rejected input field and the rule it broke.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Result is the outcome of validating one request body.
type Result []FieldError

func (r Result) OK() bool { return len(r) == 0 }

// Fields returns the failing field names in order.
func (r Result) Fields() []string {
	names := make([]string, 0, len(r))
	for _, fe := range r {
		names = append(names, fe.Field)
	}
	return names
}

var once sync.Once

// Register installs the custom rules and json field naming on gin's
// validator. Safe to call more than once.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return StrongPassword(fl.Field().String())
		})
	})
}

// StrongPassword requires at least eight characters with a lower case
// letter, an upper case letter and a digit.
func StrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

// FromBinding converts an error returned by ShouldBind* into a Result.
// Errors that are not validator errors (bad JSON, wrong types) are reported
// against the pseudo field "body".
func FromBinding(err error) Result {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{{Field: "body", Rule: "malformed"}}
	}
	res := make(Result, 0, len(verrs))
	for _, fe := range verrs {
		res = append(res, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return res
}
