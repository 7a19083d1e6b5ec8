package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_RoundTrip(t *testing.T) {
	original := New("hello world", map[string]any{
		"type":   "math",
		"weight": 2.5,
		"tags":   []any{"a", "b"},
	})

	decoded, err := Decode(original.Encode())
	require.NoError(t, err)

	assert.Equal(t, original.Content, decoded.Content)
	assert.Equal(t, original.Meta, decoded.Meta)
}

func TestEnvelope_RoundTrip_EmptyContent(t *testing.T) {
	decoded, err := Decode(New("", map[string]any{"type": "echo"}).Encode())
	require.NoError(t, err)
	assert.Equal(t, "", decoded.Content)
	assert.Equal(t, "echo", decoded.Kind())
}

func TestEncode_DefaultMeta(t *testing.T) {
	decoded, err := Decode(New("just content", nil).Encode())
	require.NoError(t, err)

	assert.Equal(t, "just content", decoded.Content)
	assert.NotNil(t, decoded.Meta)
	assert.Empty(t, decoded.Meta)
}

func TestEncode_ZeroValueEnvelope(t *testing.T) {
	var e Envelope
	decoded, err := Decode(e.Encode())
	require.NoError(t, err)
	assert.NotNil(t, decoded.Meta)
	assert.Empty(t, decoded.Meta)
}

func TestDecode_AbsentMeta(t *testing.T) {
	decoded, err := Decode([]byte(`{"content":"x"}`))
	require.NoError(t, err)
	assert.NotNil(t, decoded.Meta)
	assert.Empty(t, decoded.Meta)
}

func TestDecode_NullMeta(t *testing.T) {
	decoded, err := Decode([]byte(`{"content":"x","meta":null}`))
	require.NoError(t, err)
	assert.NotNil(t, decoded.Meta)
	assert.Empty(t, decoded.Meta)
}

func TestDecode_Malformed(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not json", "definitely not json"},
		{"json array", `["content"]`},
		{"json string", `"content"`},
		{"missing content", `{"meta":{"type":"math"}}`},
		{"non-string content", `{"content":42}`},
		{"non-object meta", `{"content":"x","meta":"nope"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestNew_CopiesMeta(t *testing.T) {
	meta := map[string]any{"type": "math"}
	e := New("5", meta)

	meta["type"] = "mutated"
	assert.Equal(t, "math", e.Kind())
}

func TestEnvelope_Kind_Default(t *testing.T) {
	assert.Equal(t, KindCustom, New("no type", nil).Kind())
	assert.Equal(t, KindCustom, New("empty type", map[string]any{"type": ""}).Kind())
	assert.Equal(t, KindCustom, New("wrong type", map[string]any{"type": 7}).Kind())
}

func TestNewTask(t *testing.T) {
	task := NewTask("math", "5")
	assert.Equal(t, "5", task.Content)
	assert.Equal(t, "math", task.Kind())
	assert.Equal(t, "", task.Status())
}

func TestNewResult(t *testing.T) {
	res := NewResult("done", "worker-1")
	assert.Equal(t, StatusSuccess, res.Status())
	assert.Equal(t, "worker-1", res.Source())
	assert.False(t, res.IsError())
}

func TestNewError(t *testing.T) {
	res := NewError("boom", "worker-1", "division by zero")
	assert.Equal(t, StatusError, res.Status())
	assert.Equal(t, "worker-1", res.Source())
	assert.Equal(t, "division by zero", res.ErrorDetail())
	assert.True(t, res.IsError())
}

func TestNewError_NoDetail(t *testing.T) {
	res := NewError("boom", "worker-1", "")
	assert.True(t, res.IsError())
	assert.Equal(t, "", res.ErrorDetail())
	_, present := res.Meta[KeyError]
	assert.False(t, present)
}
