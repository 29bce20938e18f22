// Package schema is the validation boundary between raw store documents
// and typed entities. Documents are decoded and validated at every store
// interaction; raw maps never cross a component boundary.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names the way clients see them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// ValidationError reports every offending field of a payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Constraint))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Validate checks v against its validate tags and returns a
// *ValidationError naming each failed field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{
				Field:      fe.Field(),
				Constraint: constraint(fe),
			})
		}
		return out
	}
	return err
}

// Decode unmarshals a stored document into out and validates it. The
// store-assigned _id is dropped because entities carry no ID field.
func Decode(raw bson.Raw, out any) error {
	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return Validate(out)
}

// Describe renders a validation or binding failure as client-facing
// field detail. It understands both this package's errors and the
// validator errors gin's binding produces; anything else yields nil.
func Describe(err error) []FieldError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{
				Field:      strings.ToLower(fe.Field()),
				Constraint: constraint(fe),
			})
		}
		return out
	}
	return nil
}

func constraint(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}
