package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldType is the expected Go kind of a writable field
type FieldType string

const (
	FieldString FieldType = "string"
	FieldInt    FieldType = "int"
)

// FieldSchema describes one writable field of an entity
type FieldSchema struct {
	Name     string // JSON and column name
	Field    string // Go struct field
	Type     FieldType
	Required bool
	Unique   bool
	Indexed  bool
	Rules    string // validator/v10 tag applied to the value
}

// PokemonSchema lists the fields clients may write on a Pokemon
var PokemonSchema = []FieldSchema{
	{Name: "name", Field: "Name", Type: FieldString, Required: true, Unique: true, Indexed: true, Rules: "min=1,max=100"},
	{Name: "no", Field: "No", Type: FieldInt, Required: true, Unique: true, Indexed: true, Rules: "min=1,max=2147483647"},
}

// FieldErrors maps a field name to the reason it was rejected
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e[name])
	}
	return strings.Join(parts, ", ")
}

var validate = validator.New()

// ValidateFields checks values against schema. With partial set, missing
// required fields are accepted so the same schema serves updates.
// Unknown fields are rejected.
func ValidateFields(schema []FieldSchema, values map[string]any, partial bool) error {
	errs := FieldErrors{}

	for name := range values {
		if !hasField(schema, name) {
			errs[name] = "is not an allowed field"
		}
	}

	for _, f := range schema {
		v, ok := values[f.Name]
		if !ok || v == nil {
			if f.Required && !partial {
				errs[f.Name] = "is required"
			}
			continue
		}

		switch f.Type {
		case FieldString:
			if _, isString := v.(string); !isString {
				errs[f.Name] = "must be a string"
				continue
			}
		case FieldInt:
			if _, isInt := v.(int); !isInt {
				errs[f.Name] = "must be an integer"
				continue
			}
		}

		if f.Rules == "" {
			continue
		}
		if err := validate.Var(v, f.Rules); err != nil {
			errs[f.Name] = describe(err)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must not be less than %s", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must not be greater than %s", fe.Param())
	}
	return "failed on " + fe.Tag()
}

func hasField(schema []FieldSchema, name string) bool {
	for _, f := range schema {
		if f.Name == name {
			return true
		}
	}
	return false
}
