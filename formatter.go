package urlkit

import "strings"

// HostEncoding is the way a `Formatter` renders hosts.
type HostEncoding uint8

// The host encodings.
const (
	// HostUnicode renders hosts in their Unicode form.
	HostUnicode HostEncoding = iota

	// HostASCII renders every non-ASCII host label in its punycode
	// ("xn--") form.
	HostASCII
)

// ParseHostEncoding returns the `HostEncoding` named by the s, which is
// either "unicode" or "ascii".
func ParseHostEncoding(s string) (HostEncoding, error) {
	switch strings.ToLower(s) {
	case "unicode":
		return HostUnicode, nil
	case "ascii":
		return HostASCII, nil
	}

	return 0, newError(KindInvalidArgument, "unknown host encoding %q", s)
}

// String returns the string value of the he.
func (he HostEncoding) String() string {
	switch he {
	case HostUnicode:
		return "unicode"
	case HostASCII:
		return "ascii"
	}

	return "unknown"
}

// QueryEncoding is the way a `Formatter` escapes query keys and values.
type QueryEncoding uint8

// The query encodings.
const (
	// QueryRFC3986 escapes everything outside of the RFC 3986 unreserved
	// set, spaces included ("%20").
	QueryRFC3986 QueryEncoding = iota

	// QueryRFC1738 escapes as per "application/x-www-form-urlencoded",
	// where a space is a "+".
	QueryRFC1738
)

// ParseQueryEncoding returns the `QueryEncoding` named by the s, which is
// either "rfc3986" or "rfc1738".
func ParseQueryEncoding(s string) (QueryEncoding, error) {
	switch strings.ToLower(s) {
	case "rfc3986":
		return QueryRFC3986, nil
	case "rfc1738":
		return QueryRFC1738, nil
	}

	return 0, newError(KindInvalidArgument, "unknown query encoding %q", s)
}

// String returns the string value of the qe.
func (qe QueryEncoding) String() string {
	switch qe {
	case QueryRFC3986:
		return "rfc3986"
	case QueryRFC1738:
		return "rfc1738"
	}

	return "unknown"
}

// Formattable is a component that a `Formatter` knows how to render. It is
// implemented by the `Host`, the `Query` and the `URL` only.
type Formattable interface {
	Component

	formattable()
}

// Formatter renders components under a set of encoding rules.
//
// A `Formatter` never modifies what it renders. It is not safe to
// reconfigure a `Formatter` while it is being used by other goroutines.
type Formatter struct {
	hostEncoding   HostEncoding
	queryEncoding  QueryEncoding
	querySeparator string
}

// NewFormatter returns a pointer of a new instance of the `Formatter` that
// renders Unicode hosts and RFC 3986 queries joined by "&".
func NewFormatter() *Formatter {
	return &Formatter{
		hostEncoding:   HostUnicode,
		queryEncoding:  QueryRFC3986,
		querySeparator: "&",
	}
}

// HostEncoding returns the host encoding of the f.
func (f *Formatter) HostEncoding() HostEncoding {
	return f.hostEncoding
}

// SetHostEncoding sets the host encoding of the f.
func (f *Formatter) SetHostEncoding(he HostEncoding) error {
	if he != HostUnicode && he != HostASCII {
		return newError(
			KindInvalidArgument,
			"unknown host encoding %d",
			he,
		)
	}

	f.hostEncoding = he

	return nil
}

// QueryEncoding returns the query encoding of the f.
func (f *Formatter) QueryEncoding() QueryEncoding {
	return f.queryEncoding
}

// SetQueryEncoding sets the query encoding of the f.
func (f *Formatter) SetQueryEncoding(qe QueryEncoding) error {
	if qe != QueryRFC3986 && qe != QueryRFC1738 {
		return newError(
			KindInvalidArgument,
			"unknown query encoding %d",
			qe,
		)
	}

	f.queryEncoding = qe

	return nil
}

// QuerySeparator returns the string that the f uses to join query pairs.
func (f *Formatter) QuerySeparator() string {
	return f.querySeparator
}

// SetQuerySeparator sets the string that the f uses to join query pairs.
// The sep must not be empty.
func (f *Formatter) SetQuerySeparator(sep string) error {
	if sep == "" {
		return newError(
			KindInvalidArgument,
			"query separator must not be empty",
		)
	}

	f.querySeparator = sep

	return nil
}

// Format renders the c as per the rules of the f.
func (f *Formatter) Format(c Formattable) (string, error) {
	switch c := c.(type) {
	case *Host:
		if c != nil {
			return f.FormatHost(c)
		}
	case *Query:
		if c != nil {
			return f.FormatQuery(c), nil
		}
	case *URL:
		if c != nil {
			return f.FormatURL(c)
		}
	}

	return "", newError(KindInvalidArgument, "unformattable component %T", c)
}

// FormatHost renders the h as per the host encoding of the f.
func (f *Formatter) FormatHost(h *Host) (string, error) {
	if f.hostEncoding != HostASCII {
		return h.String(), nil
	}

	s, err := h.ToASCII()
	if err != nil {
		WARN(
			"urlkit: failed to transcode host",
			map[string]interface{}{
				"host":  h.String(),
				"error": err.Error(),
			},
		)

		return "", err
	}

	return s, nil
}

// FormatQuery renders the q, without any leading "?", as per the query
// encoding and separator of the f.
func (f *Formatter) FormatQuery(q *Query) string {
	return buildQuery(q.Pairs(), f.queryEncoding, f.querySeparator)
}

// FormatURL renders the u with its host and query rendered as per the rules
// of the f.
func (f *Formatter) FormatURL(u *URL) (string, error) {
	host, err := f.FormatHost(u.Host())
	if err != nil {
		return "", err
	}

	return u.build(host, f.FormatQuery(u.Query())), nil
}
