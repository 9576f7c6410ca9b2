package urlkit

import (
	"strconv"
	"strings"
)

// Scheme is the scheme component of a URL.
type Scheme struct {
	value string
}

// NewScheme returns a pointer of a new instance of the `Scheme` for the s.
// The s is lowercased.
func NewScheme(s string) (*Scheme, error) {
	s = strings.ToLower(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return nil, newError(
				KindInvalidInput,
				"invalid scheme %q",
				s,
			)
		}
	}

	return &Scheme{value: s}, nil
}

// String implements the `Component`.
func (s *Scheme) String() string {
	return s.value
}

// URIComponent implements the `Component`.
func (s *Scheme) URIComponent() string {
	if s.value == "" {
		return ""
	}

	return s.value + ":"
}

// SameValueAs implements the `Component`.
func (s *Scheme) SameValueAs(c Component) bool {
	return sameValue(s, c)
}

// UserInfo is the user information component of a URL.
type UserInfo struct {
	user        string
	pass        string
	hasPassword bool
}

// NewUserInfo returns a pointer of a new instance of the `UserInfo`. An
// empty user makes the pass meaningless, so it is dropped.
func NewUserInfo(user, pass string) *UserInfo {
	if user == "" {
		return &UserInfo{}
	}

	return &UserInfo{
		user:        user,
		pass:        pass,
		hasPassword: pass != "",
	}
}

// User returns the user of the ui.
func (ui *UserInfo) User() string {
	return ui.user
}

// Password returns the password of the ui and reports whether it is set.
func (ui *UserInfo) Password() (string, bool) {
	return ui.pass, ui.hasPassword
}

// String implements the `Component`.
func (ui *UserInfo) String() string {
	if ui.hasPassword {
		return ui.user + ":" + ui.pass
	}

	return ui.user
}

// URIComponent implements the `Component`.
func (ui *UserInfo) URIComponent() string {
	if ui.user == "" {
		return ""
	}

	return ui.String() + "@"
}

// SameValueAs implements the `Component`.
func (ui *UserInfo) SameValueAs(c Component) bool {
	return sameValue(ui, c)
}

// Port is the port component of a URL. The zero value means no port.
type Port struct {
	value int
}

// NewPort returns a pointer of a new instance of the `Port` for the n. The
// n must be 0 (no port) or within 1 and 65535.
func NewPort(n int) (*Port, error) {
	if n < 0 || n > 65535 {
		return nil, newError(
			KindInvalidInput,
			"port %d is out of range",
			n,
		)
	}

	return &Port{value: n}, nil
}

// Int returns the port number of the p. It returns 0 when there is no
// port.
func (p *Port) Int() int {
	return p.value
}

// String implements the `Component`.
func (p *Port) String() string {
	if p.value == 0 {
		return ""
	}

	return strconv.Itoa(p.value)
}

// URIComponent implements the `Component`.
func (p *Port) URIComponent() string {
	if p.value == 0 {
		return ""
	}

	return ":" + p.String()
}

// SameValueAs implements the `Component`.
func (p *Port) SameValueAs(c Component) bool {
	return sameValue(p, c)
}

// Fragment is the fragment component of a URL.
type Fragment struct {
	value string
}

// NewFragment returns a pointer of a new instance of the `Fragment` for
// the s. A single leading "#" is ignored.
func NewFragment(s string) *Fragment {
	return &Fragment{value: strings.TrimPrefix(s, "#")}
}

// String implements the `Component`.
func (f *Fragment) String() string {
	return f.value
}

// URIComponent implements the `Component`.
func (f *Fragment) URIComponent() string {
	if f.value == "" {
		return ""
	}

	return "#" + f.value
}

// SameValueAs implements the `Component`.
func (f *Fragment) SameValueAs(c Component) bool {
	return sameValue(f, c)
}
