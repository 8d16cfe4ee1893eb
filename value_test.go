package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONScalars(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind Kind
	}{
		{name: "null", data: `null`, kind: KindNull},
		{name: "true", data: `true`, kind: KindBool},
		{name: "false", data: `false`, kind: KindBool},
		{name: "string", data: `"hello"`, kind: KindString},
		{name: "integer", data: `42`, kind: KindInteger},
		{name: "negative integer", data: `-7`, kind: KindInteger},
		{name: "float", data: `3.14`, kind: KindFloat},
		{name: "integral float", data: `1.0`, kind: KindFloat},
		{name: "exponent", data: `1e2`, kind: KindFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseJSON([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestParseJSONNumberPayloads(t *testing.T) {
	v, err := ParseJSON([]byte(`42`))
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.IntVal())

	v, err = ParseJSON([]byte(`2.5`))
	require.NoError(t, err)
	assert.Equal(t, 2.5, v.FloatVal())

	// A number beyond the float64 range keeps its textual form.
	v, err = ParseJSON([]byte(`1e999`))
	require.NoError(t, err)
	assert.Equal(t, KindNumberString, v.Kind())
	assert.Equal(t, "1e999", v.NumberText())
}

func TestParseJSONObjectOrder(t *testing.T) {
	v, err := ParseJSON([]byte(`{"z": 1, "a": 2, "m": {"nested": true}}`))
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind())

	members := v.Members()
	require.Len(t, members, 3)
	assert.Equal(t, "z", members[0].Key)
	assert.Equal(t, "a", members[1].Key)
	assert.Equal(t, "m", members[2].Key)

	nested, ok := v.Lookup("m")
	require.True(t, ok)
	flag, ok := nested.Lookup("nested")
	require.True(t, ok)
	assert.True(t, flag.BoolVal())

	_, ok = v.Lookup("missing")
	assert.False(t, ok)
}

func TestParseJSONArray(t *testing.T) {
	v, err := ParseJSON([]byte(`[1, "two", [3]]`))
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind())
	require.Equal(t, 3, v.Len())

	items := v.Items()
	assert.Equal(t, KindInteger, items[0].Kind())
	assert.Equal(t, KindString, items[1].Kind())
	assert.Equal(t, KindArray, items[2].Kind())
}

func TestParseJSONMalformed(t *testing.T) {
	tests := []string{`{`, `[1,`, `{"a"}`, ``, `tru`}

	for _, data := range tests {
		t.Run(data, func(t *testing.T) {
			_, err := ParseJSON([]byte(data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrJSONDecode)
		})
	}
}

func TestValueClone(t *testing.T) {
	original, err := ParseJSON([]byte(`{"a": [1, 2], "b": {"c": "d"}}`))
	require.NoError(t, err)

	copied := original.clone()
	eq, err := deepEqual(original, copied)
	require.NoError(t, err)
	assert.True(t, eq)

	// The copy must not share slices with the original.
	copied.members[0].Value.items[0] = Int(99)
	arr, _ := original.Lookup("a")
	assert.Equal(t, int64(1), arr.Items()[0].IntVal())
}

func TestStringBytes(t *testing.T) {
	v := String("héllo")
	assert.Equal(t, []byte("héllo"), v.Bytes())
}
