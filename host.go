package urlkit

import (
	"net"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// Host is the host component of a URL. Registered names are kept in their
// lowercased, NFC-normalized Unicode form. IPv6 literals are lowercased and
// always bracketed.
type Host struct {
	value string
	ip    bool
}

// NewHost returns a pointer of a new instance of the `Host` for the s. Any
// "xn--" label of the s is decoded to Unicode. An IPv6 address is accepted
// with or without its brackets.
func NewHost(s string) (*Host, error) {
	if s == "" {
		return &Host{}, nil
	}

	bracketed := strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
	if bracketed {
		s = s[1 : len(s)-1]
	}

	if strings.Contains(s, ":") {
		ip, zone := s, ""
		if i := strings.IndexByte(s, '%'); i >= 0 {
			ip = s[:i]
			zone = strings.TrimPrefix(strings.TrimPrefix(s[i:], "%25"), "%")
		}

		if net.ParseIP(ip) == nil {
			return nil, newError(
				KindInvalidInput,
				"invalid IPv6 host %q",
				s,
			)
		}

		v := "[" + strings.ToLower(ip)
		if zone != "" {
			v += "%25" + zone
		}

		return &Host{value: v + "]", ip: true}, nil
	} else if bracketed {
		return nil, newError(
			KindInvalidInput,
			"invalid IP literal host %q",
			s,
		)
	}

	if net.ParseIP(s) != nil {
		return &Host{value: s, ip: true}, nil
	}

	if i := strings.IndexAny(s, " /?#@:[]\\"); i >= 0 {
		return nil, newError(
			KindInvalidInput,
			"invalid character %q in host %q",
			s[i],
			s,
		)
	}

	us, err := idna.Punycode.ToUnicode(norm.NFC.String(strings.ToLower(s)))
	if err != nil {
		return nil, newError(
			KindInvalidInput,
			"invalid host %q: %v",
			s,
			err,
		)
	}

	return &Host{value: us}, nil
}

// IsIP reports whether the h is an IP literal.
func (h *Host) IsIP() bool {
	return h.ip
}

// Labels returns the dot-separated labels of the h. An IP literal is a
// single label.
func (h *Host) Labels() []string {
	if h.value == "" {
		return nil
	} else if h.ip {
		return []string{h.value}
	}

	return strings.Split(h.value, ".")
}

// ToASCII returns the h with every non-ASCII label transcoded to its
// punycode form.
func (h *Host) ToASCII() (string, error) {
	if h.ip || h.value == "" {
		return h.value, nil
	}

	s, err := idna.Punycode.ToASCII(h.value)
	if err != nil {
		return "", newError(
			KindInvalidInput,
			"failed to transcode host %q: %v",
			h.value,
			err,
		)
	}

	return s, nil
}

// String implements the `Component`.
func (h *Host) String() string {
	return h.value
}

// URIComponent implements the `Component`.
func (h *Host) URIComponent() string {
	return h.value
}

// SameValueAs implements the `Component`.
func (h *Host) SameValueAs(c Component) bool {
	return sameValue(h, c)
}

func (*Host) formattable() {}
