package jsonschema

import "regexp"

// propertyEntry is one compiled rule of an objectProps validator: either a
// literal key (pattern nil) or a compiled regular expression.
type propertyEntry struct {
	key      string
	pattern  *regexp.Regexp
	required bool
	child    schemaNode
}

// objectProps validates the joint semantics of "properties",
// "patternProperties", "additionalProperties" and "required". Entries keep
// compile order; non-object instances accept.
type objectProps struct {
	entries       []propertyEntry
	additional    schemaNode
	requiredCount int
}

func compileProperties(doc Value) (schemaNode, int, error) {
	requiredVal, hasRequired := doc.Lookup("required")
	propsVal, hasProps := doc.Lookup("properties")
	patternsVal, hasPatterns := doc.Lookup("patternProperties")
	additionalVal, hasAdditional := doc.Lookup("additionalProperties")
	if !hasRequired && !hasProps && !hasPatterns && !hasAdditional {
		return nil, 0, nil
	}

	node := &objectProps{}
	consumed := 0
	fail := func(err error) (schemaNode, int, error) {
		node.release()
		return nil, 0, err
	}

	// Required names come first so "properties" can attach sub-schemas to
	// them in place.
	if hasRequired {
		if requiredVal.Kind() != KindArray {
			return fail(newSchemaError("required", "invalid_required", ErrInvalidRequiredType))
		}
		for _, name := range requiredVal.Items() {
			if name.Kind() != KindString {
				return fail(newSchemaError("required", "invalid_required", ErrInvalidRequiredType))
			}
			node.entries = append(node.entries, propertyEntry{
				key:      name.StringVal(),
				required: true,
				child:    boolSchema{accept: true},
			})
		}
		node.requiredCount = len(node.entries)
		consumed++
	}

	if hasProps {
		if propsVal.Kind() != KindObject {
			return fail(newSchemaError("properties", "invalid_properties", ErrInvalidPropertiesType, map[string]any{
				"keyword": "properties",
				"kind":    propsVal.Kind().String(),
			}))
		}
		for _, member := range propsVal.Members() {
			child, err := compileNode(member.Value)
			if err != nil {
				return fail(err)
			}
			if idx := node.literalIndex(member.Key); idx >= 0 {
				node.entries[idx].child.release()
				node.entries[idx].child = child
			} else {
				node.entries = append(node.entries, propertyEntry{key: member.Key, child: child})
			}
		}
		consumed++
	}

	if hasPatterns {
		if patternsVal.Kind() != KindObject {
			return fail(newSchemaError("patternProperties", "invalid_properties", ErrInvalidPropertiesType, map[string]any{
				"keyword": "patternProperties",
				"kind":    patternsVal.Kind().String(),
			}))
		}
		for _, member := range patternsVal.Members() {
			re, err := regexp.Compile(member.Key)
			if err != nil {
				return fail(newSchemaError("patternProperties", "invalid_pattern", err, map[string]any{
					"keyword": "patternProperties",
				}))
			}
			child, err := compileNode(member.Value)
			if err != nil {
				return fail(err)
			}
			node.entries = append(node.entries, propertyEntry{pattern: re, child: child})
		}
		consumed++
	}

	if hasAdditional {
		child, err := compileNode(additionalVal)
		if err != nil {
			return fail(err)
		}
		node.additional = child
		consumed++
	}

	return node, consumed, nil
}

func (p *objectProps) literalIndex(key string) int {
	for i := range p.entries {
		if p.entries[i].pattern == nil && p.entries[i].key == key {
			return i
		}
	}
	return -1
}

func (p *objectProps) validate(instance Value) (bool, error) {
	if instance.Kind() != KindObject {
		return true, nil
	}

	requiredMatches := 0
	for _, member := range instance.Members() {
		matched := false
		failed := false

		for i := range p.entries {
			entry := &p.entries[i]
			if entry.pattern == nil {
				if entry.key != member.Key {
					continue
				}
			} else if !entry.pattern.MatchString(member.Key) {
				continue
			}

			matched = true
			if entry.required {
				requiredMatches++
			}
			ok, err := entry.child.validate(member.Value)
			if err != nil {
				return false, err
			}
			if !ok {
				failed = true
			}
		}

		if (!matched || failed) && p.additional != nil {
			ok, err := p.additional.validate(member.Value)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		// A failed member blocks acceptance even when additionalProperties
		// accepts its value.
		if failed {
			return false, nil
		}
	}

	return requiredMatches >= p.requiredCount, nil
}

func (p *objectProps) release() {
	for i := len(p.entries) - 1; i >= 0; i-- {
		if p.entries[i].child != nil {
			p.entries[i].child.release()
		}
		p.entries[i].pattern = nil
		p.entries[i].child = nil
	}
	p.entries = nil
	if p.additional != nil {
		p.additional.release()
		p.additional = nil
	}
}
