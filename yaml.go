package jsonschema

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// CompileYAML compiles a schema document written in YAML. The document is
// converted to JSON and fed through the regular compile pipeline.
func (c *Compiler) CompileYAML(data []byte) (*Schema, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAMLDecode, err)
	}
	return c.Compile(jsonData)
}

// CompileYAML compiles a YAML schema document with the default compiler.
func CompileYAML(data []byte) (*Schema, error) {
	return defaultCompiler.CompileYAML(data)
}
