package jsonschema

import "math"

// typeMask is a set over the recognized type names. "number" and "integer"
// are distinct members so numeric instances can match either.
type typeMask uint16

const (
	typeObject typeMask = 1 << iota
	typeArray
	typeString
	typeBoolean
	typeNull
	typeNumber
	typeInteger
)

var typeNames = map[string]typeMask{
	"object":  typeObject,
	"array":   typeArray,
	"string":  typeString,
	"boolean": typeBoolean,
	"null":    typeNull,
	"number":  typeNumber,
	"integer": typeInteger,
}

// typeSet validates the "type" keyword.
type typeSet struct {
	mask typeMask
}

func compileTypes(doc Value) (schemaNode, int, error) {
	val, ok := doc.Lookup("type")
	if !ok {
		return nil, 0, nil
	}

	var mask typeMask
	switch val.Kind() {
	case KindString:
		m, err := typeNameMask(val.StringVal())
		if err != nil {
			return nil, 0, err
		}
		mask = m
	case KindArray:
		for _, item := range val.Items() {
			if item.Kind() != KindString {
				return nil, 0, newSchemaError("type", "unknown_type", ErrUnknownType, map[string]any{
					"name": item.Kind().String(),
				})
			}
			m, err := typeNameMask(item.StringVal())
			if err != nil {
				return nil, 0, err
			}
			mask |= m
		}
	default:
		return nil, 0, newSchemaError("type", "unknown_type", ErrUnknownType, map[string]any{
			"name": val.Kind().String(),
		})
	}

	return &typeSet{mask: mask}, 1, nil
}

func typeNameMask(name string) (typeMask, error) {
	mask, ok := typeNames[name]
	if !ok {
		return 0, newSchemaError("type", "unknown_type", ErrUnknownType, map[string]any{
			"name": name,
		})
	}
	return mask, nil
}

func (t *typeSet) validate(instance Value) (bool, error) {
	switch instance.Kind() {
	case KindObject:
		return t.mask&typeObject != 0, nil
	case KindArray:
		return t.mask&typeArray != 0, nil
	case KindString:
		return t.mask&typeString != 0, nil
	case KindBool:
		return t.mask&typeBoolean != 0, nil
	case KindNull:
		return t.mask&typeNull != 0, nil
	case KindInteger:
		// Integers are valid numbers per the JSON Schema specification.
		return t.mask&(typeInteger|typeNumber) != 0, nil
	case KindFloat:
		if t.mask&typeNumber != 0 {
			return true, nil
		}
		// A float with no fractional part matches "integer".
		f := instance.FloatVal()
		return t.mask&typeInteger != 0 && math.Floor(f) == f && math.Ceil(f) == f, nil
	case KindNumberString:
		return false, ErrNumberString
	}
	return false, nil
}

func (t *typeSet) release() {}
