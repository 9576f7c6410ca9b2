package urlkit

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack"
)

// MarshalJSON implements the `json.Marshaler`. The q is encoded as a JSON
// object with its keys in order and null values as JSON nulls.
func (q *Query) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, p := range q.Pairs() {
		if i > 0 {
			buf.WriteByte(',')
		}

		kb, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}

		buf.Write(kb)
		buf.WriteByte(':')

		if p.Value.IsNull() {
			buf.WriteString("null")
			continue
		}

		vb, err := json.Marshal(p.Value.String())
		if err != nil {
			return nil, err
		}

		buf.Write(vb)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON implements the `json.Unmarshaler`. The b must be a JSON
// object whose values are strings, numbers, booleans or nulls. Key order is
// kept.
func (q *Query) UnmarshalJSON(b []byte) error {
	d := json.NewDecoder(bytes.NewReader(b))
	d.UseNumber()

	if t, err := d.Token(); err != nil {
		return err
	} else if t != json.Delim('{') {
		return newError(KindInvalidInput, "query JSON must be an object")
	}

	nq := &Query{}
	for d.More() {
		t, err := d.Token()
		if err != nil {
			return err
		}

		key := t.(string)

		if t, err = d.Token(); err != nil {
			return err
		}

		var v Value
		switch t := t.(type) {
		case nil:
		case string:
			v = StringValue(t)
		case json.Number:
			v = StringValue(t.String())
		case bool:
			v = StringValue(fmt.Sprint(t))
		default:
			return newError(
				KindInvalidInput,
				"unsupported query JSON value for key %q",
				key,
			)
		}

		nq.set(key, v)
	}

	if _, err := d.Token(); err != nil {
		return err
	}

	*q = *nq

	return nil
}

// EncodeMsgpack implements the `msgpack.CustomEncoder`. The q is encoded
// as a map with its keys in order and null values as nils.
func (q *Query) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(q.Count()); err != nil {
		return err
	}

	for _, p := range q.Pairs() {
		if err := enc.EncodeString(p.Key); err != nil {
			return err
		}

		var err error
		if p.Value.IsNull() {
			err = enc.EncodeNil()
		} else {
			err = enc.EncodeString(p.Value.String())
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// DecodeMsgpack implements the `msgpack.CustomDecoder`.
func (q *Query) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}

	nq := &Query{}
	for i := 0; i < n; i++ {
		key, err := dec.DecodeString()
		if err != nil {
			return err
		}

		iv, err := dec.DecodeInterface()
		if err != nil {
			return err
		}

		var v Value
		if iv != nil {
			s, ok := stringify(iv)
			if !ok {
				return newError(
					KindInvalidInput,
					"unsupported query msgpack value type %T for key %q",
					iv,
					key,
				)
			}

			v = StringValue(s)
		}

		nq.set(key, v)
	}

	*q = *nq

	return nil
}
