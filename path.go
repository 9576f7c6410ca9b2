package urlkit

import "strings"

// Path is the path component of a URL. It is a sequence of segments that
// may start with a "/" (absolute) and may end with a "/" (trailing slash).
type Path struct {
	segments      []string
	absolute      bool
	trailingSlash bool
}

// ParsePath returns a pointer of a new instance of the `Path` parsed from
// the raw.
func ParsePath(raw string) *Path {
	p := &Path{}
	if strings.HasPrefix(raw, "/") {
		p.absolute = true
		raw = raw[1:]
	}

	if raw == "" {
		return p
	}

	p.segments = strings.Split(raw, "/")
	if n := len(p.segments); p.segments[n-1] == "" {
		p.segments = p.segments[:n-1]
		p.trailingSlash = true
	}

	return p
}

// NewPath returns a pointer of a new instance of the `Path` made of the
// segments. A trailing empty segment means a trailing slash.
func NewPath(segments []string, absolute bool) *Path {
	p := &Path{
		absolute: absolute,
	}

	if n := len(segments); n > 0 && segments[n-1] == "" {
		segments = segments[:n-1]
		p.trailingSlash = true
	}

	if len(segments) > 0 {
		p.segments = make([]string, len(segments))
		copy(p.segments, segments)
	}

	return p
}

// Segments returns a copy of the segments of the p.
func (p *Path) Segments() []string {
	ss := make([]string, len(p.segments))
	copy(ss, p.segments)
	return ss
}

// IsAbsolute reports whether the p starts with a "/".
func (p *Path) IsAbsolute() bool {
	return p.absolute
}

// HasTrailingSlash reports whether the p ends with a "/" after its last
// segment.
func (p *Path) HasTrailingSlash() bool {
	return p.trailingSlash && len(p.segments) > 0
}

// Normalize returns a new `Path` with the "." and ".." segments of the p
// resolved as per RFC 3986, section 5.2.4. An absolute path never climbs
// above its root, while a relative path keeps the leading ".." segments
// that it cannot resolve.
func (p *Path) Normalize() *Path {
	np := &Path{
		absolute:      p.absolute,
		trailingSlash: p.trailingSlash,
	}

	out := []string{}
	for i, s := range p.segments {
		last := i == len(p.segments)-1
		switch s {
		case ".":
			if last {
				np.trailingSlash = true
			}
		case "..":
			if n := len(out); n > 0 && out[n-1] != ".." {
				out = out[:n-1]
			} else if !p.absolute {
				out = append(out, s)
			}

			if last {
				np.trailingSlash = true
			}
		default:
			out = append(out, s)
		}
	}

	if len(out) > 0 {
		np.segments = out
	} else {
		np.trailingSlash = false
	}

	return np
}

// Basename returns the last segment of the p. It returns "" when the p is
// empty or ends with a "/".
func (p *Path) Basename() string {
	if len(p.segments) == 0 || p.trailingSlash {
		return ""
	}

	return p.segments[len(p.segments)-1]
}

// Extension returns the extension of the basename of the p, without the
// ".". Dot files such as ".htaccess" have no extension.
func (p *Path) Extension() string {
	bn := p.Basename()
	if i := strings.LastIndexByte(bn, '.'); i > 0 {
		return bn[i+1:]
	}

	return ""
}

// WithExtension returns a new `Path` whose basename carries the ext instead
// of the current extension of the p. A leading "." of the ext is optional.
// An empty ext removes the extension.
func (p *Path) WithExtension(ext string) (*Path, error) {
	ext = strings.TrimPrefix(ext, ".")
	if strings.Contains(ext, "/") {
		return nil, newError(
			KindInvalidArgument,
			"extension %q must not contain a path delimiter",
			ext,
		)
	}

	bn := p.Basename()
	if bn == "" {
		return nil, newError(
			KindLogic,
			"cannot add an extension to an empty basename",
		)
	}

	if cext := p.Extension(); cext != "" {
		bn = bn[:len(bn)-len(cext)-1]
	}

	if ext != "" {
		bn += "." + ext
	}

	ss := p.Segments()
	ss[len(ss)-1] = bn

	return &Path{
		segments:      ss,
		absolute:      p.absolute,
		trailingSlash: p.trailingSlash,
	}, nil
}

// String implements the `Component`.
func (p *Path) String() string {
	s := strings.Join(p.segments, "/")
	if p.absolute {
		s = "/" + s
	}

	if p.HasTrailingSlash() {
		s += "/"
	}

	return s
}

// URIComponent implements the `Component`. A path has no delimiter of its
// own.
func (p *Path) URIComponent() string {
	return p.String()
}

// SameValueAs implements the `Component`.
func (p *Path) SameValueAs(c Component) bool {
	return sameValue(p, c)
}
