package jsonschema

import "math"

// multipleOf validates the "multipleOf" keyword. The divisor is strictly
// positive; non-numeric instances accept.
type multipleOf struct {
	divisor operand
}

func compileMultipleOf(doc Value) (schemaNode, int, error) {
	val, ok := doc.Lookup("multipleOf")
	if !ok {
		return nil, 0, nil
	}

	var divisor operand
	switch val.Kind() {
	case KindInteger:
		if val.IntVal() <= 0 {
			return nil, 0, newSchemaError("multipleOf", "non_positive_multiple_of", ErrNonPositiveMultipleOf)
		}
		divisor = operand{isInt: true, i: val.IntVal()}
	case KindFloat:
		if val.FloatVal() <= 0 {
			return nil, 0, newSchemaError("multipleOf", "non_positive_multiple_of", ErrNonPositiveMultipleOf)
		}
		divisor = operand{f: val.FloatVal()}
	case KindNumberString:
		return nil, 0, newSchemaError("multipleOf", "number_string", ErrNumberString)
	default:
		return nil, 0, newSchemaError("multipleOf", "invalid_multiple_of", ErrInvalidMultipleOfType, map[string]any{
			"kind": val.Kind().String(),
		})
	}

	return &multipleOf{divisor: divisor}, 1, nil
}

func (m *multipleOf) validate(instance Value) (bool, error) {
	switch instance.Kind() {
	case KindInteger:
		if m.divisor.isInt {
			return instance.IntVal()%m.divisor.i == 0, nil
		}
		return floatDivisible(float64(instance.IntVal()), m.divisor.f), nil
	case KindFloat:
		return floatDivisible(instance.FloatVal(), m.divisor.asFloat()), nil
	case KindNumberString:
		return false, ErrNumberString
	}
	return true, nil
}

func (m *multipleOf) release() {}

// floatDivisible reports whether value is an integer multiple of divisor.
// When the quotient is not exact, the product of the truncated quotient and
// the divisor is compared against the value within one unit of least
// precision, tolerating IEEE rounding on divisors like 0.1.
func floatDivisible(value, divisor float64) bool {
	quotient := value / divisor
	if quotient == math.Trunc(quotient) {
		return true
	}

	product := math.Trunc(quotient) * divisor
	return product == value ||
		math.Nextafter(product, math.Inf(1)) == value ||
		math.Nextafter(product, math.Inf(-1)) == value
}
