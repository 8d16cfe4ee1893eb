package jsonschema

import (
	"math"
	"unicode/utf8"
)

type boundKind int

const (
	boundItems boundKind = iota
	boundLength
)

// minMax validates the "minItems"/"maxItems" and "minLength"/"maxLength"
// keyword pairs. min defaults to 0 and max to unbounded. Instances of other
// types accept.
type minMax struct {
	kind   boundKind
	min    int64
	max    int64
	hasMax bool
}

func compileItemBounds(doc Value) (schemaNode, int, error) {
	return compileMinMax(doc, boundItems, "minItems", "maxItems")
}

func compileLengthBounds(doc Value) (schemaNode, int, error) {
	return compileMinMax(doc, boundLength, "minLength", "maxLength")
}

func compileMinMax(doc Value, kind boundKind, minKey, maxKey string) (schemaNode, int, error) {
	minVal, hasMin := doc.Lookup(minKey)
	maxVal, hasMax := doc.Lookup(maxKey)
	if !hasMin && !hasMax {
		return nil, 0, nil
	}

	node := &minMax{kind: kind}
	consumed := 0

	if hasMin {
		n, err := boundInt(minKey, minVal)
		if err != nil {
			return nil, 0, err
		}
		node.min = n
		consumed++
	}
	if hasMax {
		n, err := boundInt(maxKey, maxVal)
		if err != nil {
			return nil, 0, err
		}
		node.max = n
		node.hasMax = true
		consumed++
	}

	return node, consumed, nil
}

// boundInt reads an integer bound, accepting floats whose value is exactly
// representable as a 64-bit integer.
func boundInt(keyword string, v Value) (int64, error) {
	switch v.Kind() {
	case KindInteger:
		return v.IntVal(), nil
	case KindFloat:
		f := v.FloatVal()
		if math.Trunc(f) != f || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, newSchemaError(keyword, "fractional_bound", ErrNonIntegralBound, map[string]any{
				"keyword": keyword,
			})
		}
		return int64(f), nil
	case KindNumberString:
		return 0, newSchemaError(keyword, "number_string", ErrNumberString)
	default:
		return 0, newSchemaError(keyword, "invalid_bound", ErrInvalidMinMaxType, map[string]any{
			"keyword": keyword,
			"kind":    v.Kind().String(),
		})
	}
}

func (m *minMax) validate(instance Value) (bool, error) {
	var n int64
	switch m.kind {
	case boundItems:
		if instance.Kind() != KindArray {
			return true, nil
		}
		n = int64(instance.Len())
	case boundLength:
		if instance.Kind() != KindString {
			return true, nil
		}
		count, err := countCodePoints(instance.StringVal())
		if err != nil {
			return false, err
		}
		n = count
	}

	if n < m.min {
		return false, nil
	}
	if m.hasMax && n > m.max {
		return false, nil
	}
	return true, nil
}

func (m *minMax) release() {}

// countCodePoints returns the number of Unicode code points in s, not its
// byte length.
func countCodePoints(s string) (int64, error) {
	if !utf8.ValidString(s) {
		return 0, ErrInvalidUTF8
	}
	return int64(utf8.RuneCountInString(s)), nil
}
