package jsonschema

import "math"

// enumSchema validates "enum" and "const". It owns deep copies of the
// acceptable values; an instance accepts when it is deep-equal to any of
// them. "const" compiles to a singleton list.
type enumSchema struct {
	values []Value
}

func compileEnum(doc Value) (schemaNode, int, error) {
	val, ok := doc.Lookup("enum")
	if !ok {
		return nil, 0, nil
	}
	if val.Kind() != KindArray {
		return nil, 0, newSchemaError("enum", "invalid_enum", ErrInvalidEnumType, map[string]any{
			"kind": val.Kind().String(),
		})
	}

	values := make([]Value, 0, val.Len())
	for _, item := range val.Items() {
		values = append(values, item.clone())
	}
	return &enumSchema{values: values}, 1, nil
}

func compileConst(doc Value) (schemaNode, int, error) {
	val, ok := doc.Lookup("const")
	if !ok {
		return nil, 0, nil
	}
	return &enumSchema{values: []Value{val.clone()}}, 1, nil
}

func (e *enumSchema) validate(instance Value) (bool, error) {
	for _, candidate := range e.values {
		ok, err := deepEqual(candidate, instance)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func (e *enumSchema) release() {
	e.values = nil
}

// deepEqual compares two JSON values structurally. Integers and floats
// cross-compare: a float equals an integer when it has no fractional part
// and truncates to it. Arrays compare set-like: every element on the left
// must be deep-equal to some element on the right.
func deepEqual(a, b Value) (bool, error) {
	if a.Kind() == KindNumberString || b.Kind() == KindNumberString {
		return false, ErrNumberString
	}

	switch a.Kind() {
	case KindInteger:
		switch b.Kind() {
		case KindInteger:
			return a.IntVal() == b.IntVal(), nil
		case KindFloat:
			return floatEqualsInt(b.FloatVal(), a.IntVal()), nil
		}
		return false, nil
	case KindFloat:
		switch b.Kind() {
		case KindFloat:
			return a.FloatVal() == b.FloatVal(), nil
		case KindInteger:
			return floatEqualsInt(a.FloatVal(), b.IntVal()), nil
		}
		return false, nil
	}

	if a.Kind() != b.Kind() {
		return false, nil
	}

	switch a.Kind() {
	case KindNull:
		return true, nil
	case KindBool:
		return a.BoolVal() == b.BoolVal(), nil
	case KindString:
		return a.StringVal() == b.StringVal(), nil
	case KindArray:
		if a.Len() != b.Len() {
			return false, nil
		}
		for _, left := range a.Items() {
			found := false
			for _, right := range b.Items() {
				ok, err := deepEqual(left, right)
				if err != nil {
					return false, err
				}
				if ok {
					found = true
					break
				}
			}
			if !found {
				return false, nil
			}
		}
		return true, nil
	case KindObject:
		if a.Len() != b.Len() {
			return false, nil
		}
		for _, member := range a.Members() {
			other, ok := b.Lookup(member.Key)
			if !ok {
				return false, nil
			}
			eq, err := deepEqual(member.Value, other)
			if err != nil {
				return false, err
			}
			if !eq {
				return false, nil
			}
		}
		return true, nil
	}
	return false, nil
}

func floatEqualsInt(f float64, n int64) bool {
	if math.Trunc(f) != f || f < math.MinInt64 || f >= math.MaxInt64 {
		return false
	}
	return int64(f) == n
}
