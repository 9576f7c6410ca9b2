package urlkit

import (
	"errors"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Bind binds the pairs of the q into the v, which must be a pointer of a
// struct. Fields are matched by their "query" tag, or by their name when
// untagged, and string values are converted to the field types. Null values
// are skipped.
func (q *Query) Bind(v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() ||
		rv.Elem().Kind() != reflect.Struct {
		return newError(
			KindInvalidArgument,
			"binding element must be a pointer of a struct, got %T",
			v,
		)
	}

	params := make(map[string]interface{}, q.Count())
	q.Range(func(key string, v Value) bool {
		if !v.IsNull() {
			params[key] = v.String()
		}

		return true
	})

	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "query",
		WeaklyTypedInput: true,
		Result:           v,
	})
	if err != nil {
		return err
	}

	if err := d.Decode(params); err != nil {
		var me *mapstructure.Error
		if errors.As(err, &me) && len(me.Errors) > 0 {
			return newError(KindInvalidInput, "%s", me.Errors[0])
		}

		return newError(KindInvalidInput, "%v", err)
	}

	return nil
}
