package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileYAML(t *testing.T) {
	schema, err := CompileYAML([]byte(`
type: object
properties:
  name:
    type: string
    minLength: 2
required:
  - name
additionalProperties: false
`))
	require.NoError(t, err)
	defer schema.Release()

	valid, err := schema.ValidateJSON([]byte(`{"name": "Jo"}`))
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = schema.ValidateJSON([]byte(`{"name": "J"}`))
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = schema.ValidateJSON([]byte(`{"name": "Jo", "extra": 1}`))
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestCompileYAMLRejectsUnknownKeywords(t *testing.T) {
	_, err := CompileYAML([]byte("type: string\nformat: email\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKeyword)
}

func TestCompileYAMLInvalidDocument(t *testing.T) {
	_, err := CompileYAML([]byte("{"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrYAMLDecode)
}
