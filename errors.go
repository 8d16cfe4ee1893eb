package jsonschema

import (
	"errors"
	"fmt"

	"github.com/kaptinlin/go-i18n"
)

// === Schema Compilation Errors ===
var (
	// ErrUnsupportedSchema is returned when a schema document is neither an object nor a boolean.
	ErrUnsupportedSchema = errors.New("schema must be an object or a boolean")

	// ErrUnknownKeyword is returned when a schema object contains unrecognized keys.
	ErrUnknownKeyword = errors.New("schema contains unknown keywords")

	// ErrUnknownType is returned when a "type" value is not a known type name.
	ErrUnknownType = errors.New("unknown type name")

	// ErrInvalidMinMaxType is returned when a length or item bound is not a number.
	ErrInvalidMinMaxType = errors.New("length and item bounds must be integers")

	// ErrNonIntegralBound is returned when a bound requires integer semantics
	// but was given a float with a fractional part.
	ErrNonIntegralBound = errors.New("bound is not representable as an integer")

	// ErrInvalidRangeType is returned when a minimum or maximum is not a number.
	ErrInvalidRangeType = errors.New("range bounds must be numbers")

	// ErrInvalidMultipleOfType is returned when "multipleOf" is not a number.
	ErrInvalidMultipleOfType = errors.New("multipleOf must be a number")

	// ErrNonPositiveMultipleOf is returned when "multipleOf" is zero or negative.
	ErrNonPositiveMultipleOf = errors.New("multipleOf must be greater than zero")

	// ErrInvalidPatternType is returned when "pattern" is not a string.
	ErrInvalidPatternType = errors.New("pattern must be a string")

	// ErrInvalidEnumType is returned when "enum" is not an array.
	ErrInvalidEnumType = errors.New("enum must be an array")

	// ErrInvalidSubschemaList is returned when a combinator value is not an array.
	ErrInvalidSubschemaList = errors.New("combinator value must be an array of schemas")

	// ErrEmptySubschemaList is returned when a combinator array is empty.
	ErrEmptySubschemaList = errors.New("combinator array must not be empty")

	// ErrInvalidPropertiesType is returned when "properties" or
	// "patternProperties" is not an object.
	ErrInvalidPropertiesType = errors.New("properties value must be an object")

	// ErrInvalidRequiredType is returned when "required" is not an array of strings.
	ErrInvalidRequiredType = errors.New("required must be an array of strings")
)

// === Shared Compilation and Validation Errors ===
var (
	// ErrNumberString is returned when a number kept its textual form because
	// it fits neither int64 nor float64. Such values are not supported.
	ErrNumberString = errors.New("number-as-string values are not supported")

	// ErrInvalidUTF8 is returned when a string instance is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("string is not valid utf-8")
)

// === Decode Errors ===
var (
	// ErrJSONDecode is returned when a JSON document cannot be decoded.
	ErrJSONDecode = errors.New("json decode failed")

	// ErrYAMLDecode is returned when a YAML document cannot be decoded.
	ErrYAMLDecode = errors.New("yaml decode failed")
)

// SchemaError describes why a schema document failed to compile. It carries
// the offending keyword, a stable message code for localization, and the
// underlying sentinel error, which errors.Is can match through Unwrap.
type SchemaError struct {
	Keyword string         `json:"keyword"`
	Code    string         `json:"code"`
	Params  map[string]any `json:"params,omitempty"`
	Err     error          `json:"-"`
}

func newSchemaError(keyword, code string, err error, params ...map[string]any) *SchemaError {
	e := &SchemaError{
		Keyword: keyword,
		Code:    code,
		Err:     err,
	}
	if len(params) > 0 {
		e.Params = params[0]
	}
	return e
}

func (e *SchemaError) Error() string {
	if e.Keyword == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Keyword, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Localize returns a localized error message using the provided localizer.
func (e *SchemaError) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(e.Code, i18n.Vars(e.Params))
	}
	return e.Error()
}
