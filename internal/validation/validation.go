// Package validation checks request bodies with go-playground/validator and
// turns failures into the per-field messages the forms display.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	lettersRe = regexp.MustCompile(`^[A-Za-z\s]+$`)
	phoneRe   = regexp.MustCompile(`^\d{10}$`)
)

// Errors maps a JSON field name to a user-facing message.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e[f]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Messages overrides the default message for a failed rule. Keys are
// "<Struct>.<json field>.<tag>", e.g. "ReportRequest.contact_no.phone10".
type Messages map[string]string

// Validator validates structs tagged with `validate:"..."`.
type Validator struct {
	v        *validator.Validate
	messages Messages
}

// New creates a validator with the gateway's custom rules registered:
//
//	notblank   non-empty after trimming whitespace
//	letters    letters and spaces only, checked on the trimmed value
//	phone10    exactly ten digits
//	mintrim=N  at least N characters after trimming
func New(messages Messages) *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	must(v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	must(v.RegisterValidation("letters", func(fl validator.FieldLevel) bool {
		return lettersRe.MatchString(strings.TrimSpace(fl.Field().String()))
	}))
	must(v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("mintrim", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
	}))

	if messages == nil {
		messages = Messages{}
	}
	return &Validator{v: v, messages: messages}
}

// Struct validates s and returns Errors when any rule fails.
func (v *Validator) Struct(s interface{}) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe)
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = v.message(fe)
	}
	return out
}

func (v *Validator) message(fe validator.FieldError) string {
	if msg, ok := v.messages[fe.Namespace()+"."+fe.Tag()]; ok {
		return msg
	}

	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank", "required_if":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "mintrim":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "letters":
		return field + " can only contain letters and spaces"
	case "phone10":
		return field + " must be exactly 10 digits"
	default:
		return field + " is invalid"
	}
}

// fieldPath drops the struct name from the namespace so nested fields keep
// their dotted JSON path.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
