package jsonschema

import "regexp"

// patternSchema validates the "pattern" keyword. The expression is not
// implicitly anchored: it accepts when it matches any substring of the
// instance. Non-string instances accept.
type patternSchema struct {
	re *regexp.Regexp
}

func compilePattern(doc Value) (schemaNode, int, error) {
	val, ok := doc.Lookup("pattern")
	if !ok {
		return nil, 0, nil
	}
	if val.Kind() != KindString {
		return nil, 0, newSchemaError("pattern", "invalid_pattern", ErrInvalidPatternType, map[string]any{
			"keyword": "pattern",
		})
	}

	re, err := regexp.Compile(val.StringVal())
	if err != nil {
		return nil, 0, newSchemaError("pattern", "invalid_pattern", err, map[string]any{
			"keyword": "pattern",
		})
	}
	return &patternSchema{re: re}, 1, nil
}

func (p *patternSchema) validate(instance Value) (bool, error) {
	if instance.Kind() != KindString {
		return true, nil
	}
	return p.re.MatchString(instance.StringVal()), nil
}

func (p *patternSchema) release() {
	p.re = nil
}
