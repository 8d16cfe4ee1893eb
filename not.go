package jsonschema

// notSchema validates the "not" keyword by negating its child's result.
type notSchema struct {
	child schemaNode
}

func compileNot(doc Value) (schemaNode, int, error) {
	val, ok := doc.Lookup("not")
	if !ok {
		return nil, 0, nil
	}

	child, err := compileNode(val)
	if err != nil {
		return nil, 0, err
	}
	return &notSchema{child: child}, 1, nil
}

func (n *notSchema) validate(instance Value) (bool, error) {
	ok, err := n.child.validate(instance)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (n *notSchema) release() {
	n.child.release()
	n.child = nil
}
