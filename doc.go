// Package jsonschema implements a JSON Schema Draft 7 subset validator built
// around a compile step: a schema document is translated into a compact,
// pre-validated representation that can be evaluated repeatedly against
// instance documents.
//
// Schemas containing keywords outside the supported set are rejected at
// compile time rather than silently ignored.
package jsonschema
