package jsonschema

// Validate checks whether the instance satisfies the compiled schema.
// The boolean result is separate from the error channel: an error reports a
// defective input (invalid UTF-8, number-as-string values), never an
// ordinary mismatch.
func (s *Schema) Validate(instance Value) (bool, error) {
	return s.root.validate(instance)
}

// ValidateJSON decodes a JSON instance document and validates it.
func (s *Schema) ValidateJSON(data []byte) (bool, error) {
	instance, err := ParseJSON(data)
	if err != nil {
		return false, err
	}
	return s.Validate(instance)
}

// CompileAndValidate compiles a schema document, validates the instance once,
// and releases the intermediate compiled schema before returning.
func (c *Compiler) CompileAndValidate(schemaJSON, instanceJSON []byte) (bool, error) {
	schema, err := c.Compile(schemaJSON)
	if err != nil {
		return false, err
	}
	defer schema.Release()

	return schema.ValidateJSON(instanceJSON)
}

// CompileAndValidate compiles and validates with the default compiler.
func CompileAndValidate(schemaJSON, instanceJSON []byte) (bool, error) {
	return defaultCompiler.CompileAndValidate(schemaJSON, instanceJSON)
}
