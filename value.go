package jsonschema

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"
)

// Kind identifies the JSON type held by a Value.
type Kind int

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindInteger is a JSON number that fits a signed 64-bit integer.
	KindInteger
	// KindFloat is a JSON number carried as an IEEE-754 double.
	KindFloat
	// KindNumberString is a JSON number that fits neither representation.
	// Validators reject values of this kind with ErrNumberString.
	KindNumberString
	// KindString is a JSON string, stored as UTF-8 bytes.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object with members in document order.
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "number"
	case KindNumberString:
		return "number-string"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// MemberValue is one key/value pair of a JSON object, in document order.
type MemberValue struct {
	Key   string
	Value Value
}

// Value is a read-only JSON document node. The zero value is JSON null.
// Object members keep their document order, and numbers stay split into
// integer and float representations as the decoder classified them.
type Value struct {
	kind    Kind
	b       bool
	n       int64
	f       float64
	s       string
	items   []Value
	members []MemberValue
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a JSON boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns a JSON integer value.
func Int(n int64) Value { return Value{kind: KindInteger, n: n} }

// Float returns a JSON number value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// NumberString returns a number value that kept its textual form because it
// fits neither int64 nor float64.
func NumberString(text string) Value { return Value{kind: KindNumberString, s: text} }

// String returns a JSON string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns a JSON array value holding items in order.
func Array(items ...Value) Value { return Value{kind: KindArray, items: items} }

// Object returns a JSON object value holding members in order. Keys are
// expected to be unique; Lookup returns the first match.
func Object(members ...MemberValue) Value { return Value{kind: KindObject, members: members} }

// Member pairs a key with a value for constructing objects.
func Member(key string, value Value) MemberValue { return MemberValue{Key: key, Value: value} }

// Kind reports the JSON type of the value.
func (v Value) Kind() Kind { return v.kind }

// BoolVal returns the boolean payload of a KindBool value.
func (v Value) BoolVal() bool { return v.b }

// IntVal returns the integer payload of a KindInteger value.
func (v Value) IntVal() int64 { return v.n }

// FloatVal returns the float payload of a KindFloat value.
func (v Value) FloatVal() float64 { return v.f }

// StringVal returns the payload of a KindString value.
func (v Value) StringVal() string { return v.s }

// Bytes returns the UTF-8 bytes of a KindString value.
func (v Value) Bytes() []byte { return []byte(v.s) }

// NumberText returns the literal text of a KindNumberString value.
func (v Value) NumberText() string { return v.s }

// Items returns the elements of a KindArray value.
func (v Value) Items() []Value { return v.items }

// Members returns the members of a KindObject value in document order.
func (v Value) Members() []MemberValue { return v.members }

// Len returns the element count of an array or the member count of an object.
func (v Value) Len() int {
	if v.kind == KindArray {
		return len(v.items)
	}
	return len(v.members)
}

// Lookup returns the value of the member with the given key.
func (v Value) Lookup(key string) (Value, bool) {
	for _, member := range v.members {
		if member.Key == key {
			return member.Value, true
		}
	}
	return Value{}, false
}

// clone returns a deep copy of the value with no shared slices.
func (v Value) clone() Value {
	switch v.kind {
	case KindArray:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = item.clone()
		}
		return Value{kind: KindArray, items: items}
	case KindObject:
		members := make([]MemberValue, len(v.members))
		for i, member := range v.members {
			members[i] = MemberValue{Key: member.Key, Value: member.Value.clone()}
		}
		return Value{kind: KindObject, members: members}
	default:
		return v
	}
}

// ParseJSON decodes a JSON document into a Value, preserving object member
// order and classifying each number as integer or float; a number that fits
// neither becomes a KindNumberString value.
func ParseJSON(data []byte) (Value, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	v, err := readValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrJSONDecode, err)
	}
	return v, nil
}

func readValue(dec *jsontext.Decoder) (Value, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return Value{}, err
	}

	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 't':
		return Bool(true), nil
	case 'f':
		return Bool(false), nil
	case '"':
		return String(tok.String()), nil
	case '0':
		return classifyNumber(tok.String()), nil
	case '[':
		var items []Value
		for dec.PeekKind() != ']' {
			item, err := readValue(dec)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Array(items...), nil
	case '{':
		var members []MemberValue
		for dec.PeekKind() != '}' {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return Value{}, err
			}
			key := keyTok.String()
			val, err := readValue(dec)
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member(key, val))
		}
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Object(members...), nil
	}

	return Value{}, fmt.Errorf("unexpected token %v", tok.Kind())
}

// classifyNumber splits a JSON number literal into the integer or float
// representation, keeping the raw text when it fits neither.
func classifyNumber(text string) Value {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return Float(f)
	}
	return NumberString(text)
}
