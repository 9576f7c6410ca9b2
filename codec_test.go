package urlkit

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack"
)

func TestQueryMarshalJSON(t *testing.T) {
	b, err := json.Marshal(ParseQuery("z=1&a&m=x+y"))
	assert.NoError(t, err)
	assert.Equal(t, `{"z":"1","a":null,"m":"x y"}`, string(b))

	b, err = json.Marshal(ParseQuery(""))
	assert.NoError(t, err)
	assert.Equal(t, `{}`, string(b))
}

func TestQueryUnmarshalJSON(t *testing.T) {
	q := &Query{}
	assert.NoError(t, json.Unmarshal(
		[]byte(`{"z":"1","a":null,"n":2.5,"b":true}`),
		q,
	))
	assert.Equal(t, []string{"z", "a", "n", "b"}, q.Keys())
	assert.True(t, q.GetValue("a", StringValue("x")).IsNull())
	assert.Equal(t, "2.5", q.GetValue("n", NullValue()).String())
	assert.Equal(t, "true", q.GetValue("b", NullValue()).String())

	err := json.Unmarshal([]byte(`["a"]`), q)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	err = json.Unmarshal([]byte(`{"a":{"b":1}}`), q)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, 4, q.Count())
}

func TestQueryMsgpack(t *testing.T) {
	q := ParseQuery("z=1&a&m=x+y")

	b, err := msgpack.Marshal(q)
	require.NoError(t, err)

	var dq Query
	assert.NoError(t, msgpack.Unmarshal(b, &dq))
	assert.Equal(t, q.Pairs(), dq.Pairs())
	assert.True(t, q.SameValueAs(&dq))

	b, err = msgpack.Marshal(map[string]interface{}{"n": 1})
	require.NoError(t, err)
	assert.NoError(t, msgpack.Unmarshal(b, &dq))
	assert.Equal(t, "n=1", dq.String())
}
