package jsonschema

import "strings"

// recognizedKeywords contains every schema keyword this validator supports.
// Keys outside this set fail compilation: unknown keywords are rejected, not
// ignored.
var recognizedKeywords = map[string]struct{}{
	"type":                 {},
	"minItems":             {},
	"maxItems":             {},
	"minLength":            {},
	"maxLength":            {},
	"minimum":              {},
	"maximum":              {},
	"exclusiveMinimum":     {},
	"exclusiveMaximum":     {},
	"multipleOf":           {},
	"properties":           {},
	"patternProperties":    {},
	"additionalProperties": {},
	"required":             {},
	"allOf":                {},
	"anyOf":                {},
	"oneOf":                {},
	"not":                  {},
	"enum":                 {},
	"const":                {},
	"pattern":              {},
}

// Compiler translates schema documents into compiled Schema trees.
type Compiler struct {
	jsonDecoder func(data []byte) (Value, error)
}

// NewCompiler creates a new Compiler instance with default settings.
func NewCompiler() *Compiler {
	return &Compiler{
		jsonDecoder: ParseJSON,
	}
}

// WithDecoderJSON configures a custom JSON decoder implementation.
func (c *Compiler) WithDecoderJSON(decoder func(data []byte) (Value, error)) *Compiler {
	c.jsonDecoder = decoder
	return c
}

var defaultCompiler = NewCompiler()

// Compile decodes and compiles a JSON schema document.
func (c *Compiler) Compile(data []byte) (*Schema, error) {
	doc, err := c.jsonDecoder(data)
	if err != nil {
		return nil, err
	}
	return c.CompileValue(doc)
}

// CompileValue compiles an already decoded schema document.
func (c *Compiler) CompileValue(doc Value) (*Schema, error) {
	root, err := compileNode(doc)
	if err != nil {
		return nil, err
	}
	return &Schema{root: root}, nil
}

// Compile compiles a JSON schema document with the default compiler.
func Compile(data []byte) (*Schema, error) {
	return defaultCompiler.Compile(data)
}

// CompileValue compiles a decoded schema document with the default compiler.
func CompileValue(doc Value) (*Schema, error) {
	return defaultCompiler.CompileValue(doc)
}

// compileNode dispatches on the document's JSON type. Booleans become the
// trivial schema, objects become a conjunction of keyword validators, and
// everything else is rejected.
func compileNode(doc Value) (schemaNode, error) {
	switch doc.Kind() {
	case KindBool:
		return boolSchema{accept: doc.BoolVal()}, nil
	case KindObject:
		return compileObject(doc)
	case KindNumberString:
		return nil, newSchemaError("", "number_string", ErrNumberString)
	default:
		return nil, newSchemaError("", "unsupported_schema", ErrUnsupportedSchema, map[string]any{
			"kind": doc.Kind().String(),
		})
	}
}

func compileObject(doc Value) (schemaNode, error) {
	// keywordGroups lists the compile procedures in the order their validators
	// are appended to the conjunction. Each consumes the keys of one keyword
	// group and returns a nil node when none of them are present.
	keywordGroups := []func(doc Value) (schemaNode, int, error){
		compileTypes,
		compileItemBounds,
		compileLengthBounds,
		compileInclusiveRange,
		compileExclusiveRange,
		compileMultipleOf,
		compileProperties,
		compileAllOf,
		compileAnyOf,
		compileOneOf,
		compileNot,
		compileEnum,
		compileConst,
		compilePattern,
	}

	var children []schemaNode
	consumed := 0

	for _, compile := range keywordGroups {
		node, keys, err := compile(doc)
		if err != nil {
			releaseAll(children)
			return nil, err
		}
		if node == nil {
			continue
		}
		children = append(children, node)
		consumed += keys
	}

	// Every key must have been consumed by exactly one group.
	if consumed != doc.Len() {
		releaseAll(children)
		return nil, newSchemaError("", "unknown_keyword", ErrUnknownKeyword, map[string]any{
			"keys": strings.Join(unknownKeys(doc), ", "),
		})
	}

	return &conjunction{children: children}, nil
}

func unknownKeys(doc Value) []string {
	var keys []string
	for _, member := range doc.Members() {
		if _, ok := recognizedKeywords[member.Key]; !ok {
			keys = append(keys, member.Key)
		}
	}
	return keys
}
