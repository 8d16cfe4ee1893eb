package jsonschema

import "math"

// operand holds a numeric keyword value in the representation the schema
// author wrote it in. Keeping the split matters: integer instances compare
// in integer space and float instances in float space.
type operand struct {
	isInt bool
	i     int64
	f     float64
}

// asInt coerces the operand to integer space, truncating float values.
func (o operand) asInt() int64 {
	if o.isInt {
		return o.i
	}
	return int64(math.Trunc(o.f))
}

// asFloat widens the operand to float space.
func (o operand) asFloat() float64 {
	if o.isInt {
		return float64(o.i)
	}
	return o.f
}

func numericOperand(keyword string, v Value) (operand, error) {
	switch v.Kind() {
	case KindInteger:
		return operand{isInt: true, i: v.IntVal()}, nil
	case KindFloat:
		return operand{f: v.FloatVal()}, nil
	case KindNumberString:
		return operand{}, newSchemaError(keyword, "number_string", ErrNumberString)
	default:
		return operand{}, newSchemaError(keyword, "invalid_range", ErrInvalidRangeType, map[string]any{
			"keyword": keyword,
			"kind":    v.Kind().String(),
		})
	}
}

// numberRange validates the "minimum"/"maximum" pair or, with exclusive set,
// the "exclusiveMinimum"/"exclusiveMaximum" pair. Non-numeric instances
// accept.
type numberRange struct {
	exclusive bool
	min       *operand
	max       *operand
}

func compileInclusiveRange(doc Value) (schemaNode, int, error) {
	return compileRange(doc, false, "minimum", "maximum")
}

func compileExclusiveRange(doc Value) (schemaNode, int, error) {
	return compileRange(doc, true, "exclusiveMinimum", "exclusiveMaximum")
}

func compileRange(doc Value, exclusive bool, minKey, maxKey string) (schemaNode, int, error) {
	minVal, hasMin := doc.Lookup(minKey)
	maxVal, hasMax := doc.Lookup(maxKey)
	if !hasMin && !hasMax {
		return nil, 0, nil
	}

	node := &numberRange{exclusive: exclusive}
	consumed := 0

	if hasMin {
		op, err := numericOperand(minKey, minVal)
		if err != nil {
			return nil, 0, err
		}
		node.min = &op
		consumed++
	}
	if hasMax {
		op, err := numericOperand(maxKey, maxVal)
		if err != nil {
			return nil, 0, err
		}
		node.max = &op
		consumed++
	}

	return node, consumed, nil
}

func (r *numberRange) validate(instance Value) (bool, error) {
	switch instance.Kind() {
	case KindInteger:
		n := instance.IntVal()
		if r.min != nil {
			lo := r.min.asInt()
			if n < lo || (r.exclusive && n == lo) {
				return false, nil
			}
		}
		if r.max != nil {
			hi := r.max.asInt()
			if n > hi || (r.exclusive && n == hi) {
				return false, nil
			}
		}
		return true, nil
	case KindFloat:
		f := instance.FloatVal()
		if r.min != nil {
			lo := r.min.asFloat()
			if f < lo || (r.exclusive && f == lo) {
				return false, nil
			}
		}
		if r.max != nil {
			hi := r.max.asFloat()
			if f > hi || (r.exclusive && f == hi) {
				return false, nil
			}
		}
		return true, nil
	case KindNumberString:
		return false, ErrNumberString
	}
	return true, nil
}

func (r *numberRange) release() {}
