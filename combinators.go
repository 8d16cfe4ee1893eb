package jsonschema

type combineMode int

const (
	combineAll combineMode = iota
	combineAny
	combineOne
)

// combinator validates "allOf", "anyOf" and "oneOf". The sub-schema list is
// non-empty by construction.
type combinator struct {
	mode     combineMode
	children []schemaNode
}

func compileAllOf(doc Value) (schemaNode, int, error) {
	return compileCombinator(doc, "allOf", combineAll)
}

func compileAnyOf(doc Value) (schemaNode, int, error) {
	return compileCombinator(doc, "anyOf", combineAny)
}

func compileOneOf(doc Value) (schemaNode, int, error) {
	return compileCombinator(doc, "oneOf", combineOne)
}

func compileCombinator(doc Value, keyword string, mode combineMode) (schemaNode, int, error) {
	val, ok := doc.Lookup(keyword)
	if !ok {
		return nil, 0, nil
	}
	if val.Kind() != KindArray {
		return nil, 0, newSchemaError(keyword, "invalid_subschema_list", ErrInvalidSubschemaList, map[string]any{
			"keyword": keyword,
			"kind":    val.Kind().String(),
		})
	}
	if val.Len() == 0 {
		return nil, 0, newSchemaError(keyword, "empty_subschema_list", ErrEmptySubschemaList, map[string]any{
			"keyword": keyword,
		})
	}

	children := make([]schemaNode, 0, val.Len())
	for _, item := range val.Items() {
		child, err := compileNode(item)
		if err != nil {
			releaseAll(children)
			return nil, 0, err
		}
		children = append(children, child)
	}

	return &combinator{mode: mode, children: children}, 1, nil
}

func (c *combinator) validate(instance Value) (bool, error) {
	switch c.mode {
	case combineAll:
		for _, child := range c.children {
			ok, err := child.validate(instance)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	case combineAny:
		for _, child := range c.children {
			ok, err := child.validate(instance)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case combineOne:
		accepted := 0
		for _, child := range c.children {
			ok, err := child.validate(instance)
			if err != nil {
				return false, err
			}
			if ok {
				accepted++
				// A second acceptance settles the outcome.
				if accepted > 1 {
					return false, nil
				}
			}
		}
		return accepted == 1, nil
	}
	return false, nil
}

func (c *combinator) release() {
	releaseAll(c.children)
	c.children = nil
}
