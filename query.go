package urlkit

import (
	"net/url"
	"sort"
	"strings"
)

// Value is a query value. It either holds a string or is null, the latter
// being a key without any "=" such as the "foo" in "?foo&bar=".
//
// The zero value is null.
type Value struct {
	str   string
	valid bool
}

// StringValue returns a `Value` that holds the s.
func StringValue(s string) Value {
	return Value{
		str:   s,
		valid: true,
	}
}

// NullValue returns a null `Value`.
func NullValue() Value {
	return Value{}
}

// String returns the string held by the v. It returns "" when the v is
// null.
func (v Value) String() string {
	return v.str
}

// IsNull reports whether the v is null.
func (v Value) IsNull() bool {
	return !v.valid
}

// Pair is a key-value pair of a `Query`.
type Pair struct {
	Key   string
	Value Value
}

// Query is the query component of a URL. It is an ordered mapping from
// unique keys to values. A `Query` is never modified after it has been
// built, so it is safe for concurrent use.
type Query struct {
	keys   []string
	values map[string]Value
}

// NewQuery returns a pointer of a new instance of the `Query` built from
// the data.
//
// The data may be nil, a query string (string, []byte or `fmt.Stringer`),
// a `Query`, a `[]Pair`, a `map[string]Value`, a `map[string]string`, a
// `map[string]interface{}` or a `url.Values`. Pairs taken from a Go map are
// ordered by key since Go maps carry no order.
func NewQuery(data interface{}) (*Query, error) {
	pairs, err := queryPairs(data)
	if err != nil {
		return nil, err
	}

	q := &Query{}
	for _, p := range pairs {
		q.set(p.Key, p.Value)
	}

	return q, nil
}

// ParseQuery returns a pointer of a new instance of the `Query` parsed from
// the s. A single leading "?" is ignored.
func ParseQuery(s string) *Query {
	q := &Query{}
	for _, p := range parseQueryPairs(s) {
		q.set(p.Key, p.Value)
	}

	return q
}

// set sets the v for the key, keeping the position of an existing key.
func (q *Query) set(key string, v Value) {
	if q.values == nil {
		q.values = map[string]Value{}
	}

	if _, ok := q.values[key]; !ok {
		q.keys = append(q.keys, key)
	}

	q.values[key] = v
}

// clone returns a deep copy of the q.
func (q *Query) clone() *Query {
	c := &Query{
		keys:   make([]string, len(q.keys)),
		values: make(map[string]Value, len(q.values)),
	}

	copy(c.keys, q.keys)
	for k, v := range q.values {
		c.values[k] = v
	}

	return c
}

// Count returns the number of pairs in the q.
func (q *Query) Count() int {
	return len(q.keys)
}

// Keys returns all keys of the q in order.
func (q *Query) Keys() []string {
	keys := make([]string, len(q.keys))
	copy(keys, q.keys)
	return keys
}

// KeysWithValue returns the keys of the q whose value is exactly the v.
func (q *Query) KeysWithValue(v Value) []string {
	keys := []string{}
	for _, k := range q.keys {
		if q.values[k] == v {
			keys = append(keys, k)
		}
	}

	return keys
}

// HasKey reports whether the q contains the key.
func (q *Query) HasKey(key string) bool {
	_, ok := q.values[key]
	return ok
}

// Lookup returns the value for the key and reports whether it exists.
func (q *Query) Lookup(key string) (Value, bool) {
	v, ok := q.values[key]
	return v, ok
}

// GetValue returns the value for the key, or the def if the key does not
// exist.
func (q *Query) GetValue(key string, def Value) Value {
	if v, ok := q.values[key]; ok {
		return v
	}

	return def
}

// Pairs returns a copy of all pairs of the q in order.
func (q *Query) Pairs() []Pair {
	pairs := make([]Pair, 0, len(q.keys))
	for _, k := range q.keys {
		pairs = append(pairs, Pair{
			Key:   k,
			Value: q.values[k],
		})
	}

	return pairs
}

// Range calls the f for each pair of the q in order until the f returns
// false.
func (q *Query) Range(f func(key string, v Value) bool) {
	for _, k := range q.keys {
		if !f(k, q.values[k]) {
			return
		}
	}
}

// MergeWith returns a new `Query` holding the pairs of the q overwritten by
// the pairs of the data. Keys that are new to the q are appended. The data
// accepts what the `NewQuery` accepts.
func (q *Query) MergeWith(data interface{}) (*Query, error) {
	pairs, err := queryPairs(data)
	if err != nil {
		return nil, err
	}

	mq := q.clone()
	for _, p := range pairs {
		mq.set(p.Key, p.Value)
	}

	return mq, nil
}

// WithValue returns a new `Query` that holds only the data.
func (q *Query) WithValue(data interface{}) (*Query, error) {
	return NewQuery(data)
}

// Get returns the query string of the q encoded as per RFC 3986 with pairs
// joined by "&". It reports false when the q is empty.
func (q *Query) Get() (string, bool) {
	if len(q.keys) == 0 {
		return "", false
	}

	return buildQuery(q.Pairs(), QueryRFC3986, "&"), true
}

// String implements the `Component`.
func (q *Query) String() string {
	s, _ := q.Get()
	return s
}

// URIComponent implements the `Component`.
func (q *Query) URIComponent() string {
	if s := q.String(); s != "" {
		return "?" + s
	}

	return ""
}

// SameValueAs implements the `Component`.
func (q *Query) SameValueAs(c Component) bool {
	return sameValue(q, c)
}

func (*Query) formattable() {}

// queryPairs returns the pairs held by the data.
func queryPairs(data interface{}) ([]Pair, error) {
	switch d := data.(type) {
	case nil:
		return nil, nil
	case *Query:
		if d == nil {
			return nil, nil
		}

		return d.Pairs(), nil
	case Query:
		return d.Pairs(), nil
	case []Pair:
		pairs := make([]Pair, len(d))
		copy(pairs, d)
		return pairs, nil
	case map[string]Value:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		pairs := make([]Pair, 0, len(d))
		for _, k := range keys {
			pairs = append(pairs, Pair{Key: k, Value: d[k]})
		}

		return pairs, nil
	case map[string]string:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		pairs := make([]Pair, 0, len(d))
		for _, k := range keys {
			pairs = append(pairs, Pair{Key: k, Value: StringValue(d[k])})
		}

		return pairs, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		pairs := make([]Pair, 0, len(d))
		for _, k := range keys {
			var v Value
			switch dv := d[k].(type) {
			case nil:
			case Value:
				v = dv
			default:
				s, ok := stringify(dv)
				if !ok {
					return nil, newError(
						KindInvalidInput,
						"unsupported query value type %T for key %q",
						dv,
						k,
					)
				}

				v = StringValue(s)
			}

			pairs = append(pairs, Pair{Key: k, Value: v})
		}

		return pairs, nil
	case url.Values:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		pairs := make([]Pair, 0, len(d))
		for _, k := range keys {
			var v Value
			if vs := d[k]; len(vs) > 0 {
				v = StringValue(vs[0])
			}

			pairs = append(pairs, Pair{Key: k, Value: v})
		}

		return pairs, nil
	}

	s, ok := stringify(data)
	if !ok {
		return nil, newError(
			KindInvalidInput,
			"unsupported query data type %T",
			data,
		)
	}

	return parseQueryPairs(s), nil
}

// parseQueryPairs parses the s as an "application/x-www-form-urlencoded"
// query string. The s is split on "&" and "=" before anything is decoded,
// so an escaped "&" or "=" never acts as a delimiter.
func parseQueryPairs(s string) []Pair {
	s = strings.TrimPrefix(s, "?")

	pairs := []Pair{}
	for _, raw := range strings.Split(s, "&") {
		if raw == "" {
			continue
		}

		var v Value
		k := raw
		if i := strings.IndexByte(raw, '='); i >= 0 {
			k = raw[:i]
			v = StringValue(unescapeQuery(raw[i+1:]))
		}

		pairs = append(pairs, Pair{
			Key:   unescapeQuery(k),
			Value: v,
		})
	}

	return pairs
}

// unescapeQuery decodes the s as a form value. A malformed escape leaves
// the s untouched.
func unescapeQuery(s string) string {
	us, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}

	return us
}

// escapeQuery encodes the s as a query key or value by using the enc.
func escapeQuery(s string, enc QueryEncoding) string {
	s = url.QueryEscape(s)
	if enc == QueryRFC3986 {
		s = strings.Replace(s, "+", "%20", -1)
	}

	return s
}

// buildQuery joins the pairs into a query string by using the enc and sep.
// Null values render as a bare key.
func buildQuery(pairs []Pair, enc QueryEncoding, sep string) string {
	b := strings.Builder{}
	for i, p := range pairs {
		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(escapeQuery(p.Key, enc))
		if !p.Value.IsNull() {
			b.WriteByte('=')
			b.WriteString(escapeQuery(p.Value.String(), enc))
		}
	}

	return b.String()
}

