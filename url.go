package urlkit

import (
	"net/url"
	"strconv"
	"strings"
)

// URL is a URL made of its components. Like its components, a `URL` is never
// modified after it has been built.
type URL struct {
	scheme   *Scheme
	userInfo *UserInfo
	host     *Host
	port     *Port
	path     *Path
	query    *Query
	fragment *Fragment
}

// NewURL returns a pointer of a new instance of the `URL` with every
// component empty.
func NewURL() *URL {
	return &URL{
		scheme:   &Scheme{},
		userInfo: &UserInfo{},
		host:     &Host{},
		port:     &Port{},
		path:     &Path{},
		query:    &Query{},
		fragment: &Fragment{},
	}
}

// ParseURL returns a pointer of a new instance of the `URL` parsed from the
// raw.
func ParseURL(raw string) (*URL, error) {
	pu, err := url.Parse(raw)
	if err != nil {
		return nil, newError(KindInvalidInput, "%v", err)
	}

	u := NewURL()

	if u.scheme, err = NewScheme(pu.Scheme); err != nil {
		return nil, err
	}

	if pu.User != nil {
		pass, _ := pu.User.Password()
		u.userInfo = NewUserInfo(pu.User.Username(), pass)
	}

	if u.host, err = NewHost(pu.Hostname()); err != nil {
		return nil, err
	}

	if ps := pu.Port(); ps != "" {
		n, err := strconv.Atoi(ps)
		if err != nil {
			return nil, newError(KindInvalidInput, "invalid port %q", ps)
		}

		if u.port, err = NewPort(n); err != nil {
			return nil, err
		}
	}

	if pu.Opaque != "" {
		u.path = ParsePath(pu.Opaque)
	} else {
		u.path = ParsePath(pu.EscapedPath())
	}

	u.query = ParseQuery(pu.RawQuery)
	u.fragment = NewFragment(pu.EscapedFragment())

	return u, nil
}

// Scheme returns the scheme of the u.
func (u *URL) Scheme() *Scheme {
	return u.scheme
}

// UserInfo returns the user information of the u.
func (u *URL) UserInfo() *UserInfo {
	return u.userInfo
}

// Host returns the host of the u.
func (u *URL) Host() *Host {
	return u.host
}

// Port returns the port of the u.
func (u *URL) Port() *Port {
	return u.port
}

// Path returns the path of the u.
func (u *URL) Path() *Path {
	return u.path
}

// Query returns the query of the u.
func (u *URL) Query() *Query {
	return u.query
}

// Fragment returns the fragment of the u.
func (u *URL) Fragment() *Fragment {
	return u.fragment
}

// WithScheme returns a copy of the u with the s as its scheme.
func (u *URL) WithScheme(s *Scheme) *URL {
	c := *u
	if c.scheme = s; s == nil {
		c.scheme = &Scheme{}
	}

	return &c
}

// WithUserInfo returns a copy of the u with the ui as its user information.
func (u *URL) WithUserInfo(ui *UserInfo) *URL {
	c := *u
	if c.userInfo = ui; ui == nil {
		c.userInfo = &UserInfo{}
	}

	return &c
}

// WithHost returns a copy of the u with the h as its host.
func (u *URL) WithHost(h *Host) *URL {
	c := *u
	if c.host = h; h == nil {
		c.host = &Host{}
	}

	return &c
}

// WithPort returns a copy of the u with the p as its port.
func (u *URL) WithPort(p *Port) *URL {
	c := *u
	if c.port = p; p == nil {
		c.port = &Port{}
	}

	return &c
}

// WithPath returns a copy of the u with the p as its path.
func (u *URL) WithPath(p *Path) *URL {
	c := *u
	if c.path = p; p == nil {
		c.path = &Path{}
	}

	return &c
}

// WithQuery returns a copy of the u with the q as its query.
func (u *URL) WithQuery(q *Query) *URL {
	c := *u
	if c.query = q; q == nil {
		c.query = &Query{}
	}

	return &c
}

// WithFragment returns a copy of the u with the f as its fragment.
func (u *URL) WithFragment(f *Fragment) *URL {
	c := *u
	if c.fragment = f; f == nil {
		c.fragment = &Fragment{}
	}

	return &c
}

// build assembles the u by using the host and query already rendered by the
// caller. The query carries no leading "?".
func (u *URL) build(host, query string) string {
	b := strings.Builder{}
	b.WriteString(u.scheme.URIComponent())

	if host != "" {
		b.WriteString("//")
		b.WriteString(u.userInfo.URIComponent())
		b.WriteString(host)
		b.WriteString(u.port.URIComponent())
	}

	if p := u.path.String(); p != "" {
		if host != "" && !u.path.IsAbsolute() {
			b.WriteByte('/')
		}

		b.WriteString(p)
	}

	if query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}

	b.WriteString(u.fragment.URIComponent())

	return b.String()
}

// String implements the `Component`.
func (u *URL) String() string {
	return u.build(u.host.String(), u.query.String())
}

// URIComponent implements the `Component`.
func (u *URL) URIComponent() string {
	return u.String()
}

// SameValueAs implements the `Component`.
func (u *URL) SameValueAs(c Component) bool {
	return sameValue(u, c)
}

func (*URL) formattable() {}
