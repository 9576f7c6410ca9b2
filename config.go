package urlkit

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v2"
)

// FormatterConfig is a set of configurations for a `Formatter`. An empty
// field leaves the matching setting of the `Formatter` untouched.
type FormatterConfig struct {
	// HostEncoding is the name of the host encoding, either "unicode" or
	// "ascii".
	//
	// It's called "host_encoding" in the config file.
	HostEncoding string `mapstructure:"host_encoding"`

	// QueryEncoding is the name of the query encoding, either "rfc3986"
	// or "rfc1738".
	//
	// It's called "query_encoding" in the config file.
	QueryEncoding string `mapstructure:"query_encoding"`

	// QuerySeparator is the string used to join query pairs.
	//
	// It's called "query_separator" in the config file.
	QuerySeparator string `mapstructure:"query_separator"`
}

// LoadFormatterConfig returns the `FormatterConfig` read from the config
// file found in the filename path. The format of the file is chosen by its
// extension: ".toml", ".yaml", ".yml", ".ini" or ".json".
func LoadFormatterConfig(filename string) (*FormatterConfig, error) {
	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, newError(
			KindInvalidInput,
			"failed to read config file %q: %v",
			filename,
			err,
		)
	}

	fc, err := ParseFormatterConfig(filepath.Ext(filename), b)
	if err != nil {
		return nil, err
	}

	INFO(
		"urlkit: formatter config loaded",
		map[string]interface{}{
			"file": filename,
		},
	)

	return fc, nil
}

// ParseFormatterConfig returns the `FormatterConfig` parsed from the b in
// the format, which is one of "toml", "yaml", "yml", "ini" and "json" with
// an optional leading ".".
func ParseFormatterConfig(format string, b []byte) (*FormatterConfig, error) {
	m := map[string]interface{}{}

	var err error
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "toml":
		err = toml.Unmarshal(b, &m)
	case "yaml", "yml":
		err = yaml.Unmarshal(b, &m)
	case "ini":
		var f *ini.File
		if f, err = ini.Load(b); err == nil {
			for k, v := range f.Section("").KeysHash() {
				m[k] = v
			}
		}
	case "json":
		err = json.Unmarshal(b, &m)
	default:
		return nil, newError(
			KindInvalidArgument,
			"unsupported config format %q",
			format,
		)
	}

	if err != nil {
		return nil, newError(
			KindInvalidInput,
			"failed to parse %s config: %v",
			format,
			err,
		)
	}

	fc := &FormatterConfig{}
	md := &mapstructure.Metadata{}

	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Metadata:         md,
		WeaklyTypedInput: true,
		Result:           fc,
	})
	if err != nil {
		return nil, err
	}

	if err := d.Decode(m); err != nil {
		return nil, newError(
			KindInvalidInput,
			"failed to decode config: %v",
			err,
		)
	}

	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		WARN(
			"urlkit: unknown formatter config keys",
			map[string]interface{}{
				"keys": md.Unused,
			},
		)
	}

	return fc, nil
}

// ApplyConfig applies the fc to the f. Either every setting of the fc is
// applied or, when any of them is invalid, none is.
func (f *Formatter) ApplyConfig(fc *FormatterConfig) error {
	nf := *f

	if fc.HostEncoding != "" {
		he, err := ParseHostEncoding(fc.HostEncoding)
		if err != nil {
			return err
		}

		nf.hostEncoding = he
	}

	if fc.QueryEncoding != "" {
		qe, err := ParseQueryEncoding(fc.QueryEncoding)
		if err != nil {
			return err
		}

		nf.queryEncoding = qe
	}

	if fc.QuerySeparator != "" {
		if err := nf.SetQuerySeparator(fc.QuerySeparator); err != nil {
			return err
		}
	}

	*f = nf

	return nil
}

// NewFormatterFromFile returns a pointer of a new instance of the
// `Formatter` configured by the config file found in the filename path.
func NewFormatterFromFile(filename string) (*Formatter, error) {
	fc, err := LoadFormatterConfig(filename)
	if err != nil {
		return nil, err
	}

	f := NewFormatter()
	if err := f.ApplyConfig(fc); err != nil {
		return nil, err
	}

	return f, nil
}
