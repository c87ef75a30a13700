package cliargs

import (
	"strings"
	"unicode/utf8"
)

// Field describes one field of a schema from which an option configuration
// is made by MakeOptCfgs.
type Field struct {
	Name      string // field identifier, the default option name
	Kind      Kind
	Seq       bool   // the field takes a sequence of values
	Meta      string // names and defaults in the mini-language of Config
	Desc      string
	ArgInHelp string
	Target    any // optional pointer taking the values, see ParseFields
}

// MakeOptCfgs makes option configurations from fields using the default
// Config.
func MakeOptCfgs(fields []Field) ([]*OptCfg, error) {
	return NewConfig().MakeOptCfgs(fields)
}

// MakeOptCfgs makes one option configuration per field. Fields of kind
// KindBool make options taking no argument, all other kinds make options
// taking one. Defaults are converted and validated as runtime values would
// be. The result is nil if there is any error, which is either
// IllegalOptionType, FailToConvertDefaultsInConfig, or one of the errors
// reported when validating configurations.
func (c *Config) MakeOptCfgs(fields []Field) ([]*OptCfg, error) {
	c = c.copy()
	cfgs := make([]*OptCfg, 0, len(fields))
	for _, f := range fields {
		cfg, err := c.makeOptCfg(f)
		if err != nil {
			return nil, err
		}
		cfgs = append(cfgs, cfg)
	}
	if _, err := newRegistry(cfgs); err != nil {
		return nil, err
	}
	return cfgs, nil
}

func (c *Config) makeOptCfg(f Field) (*OptCfg, error) {
	if f.Kind == KindInvalid || f.Kind > KindDuration {
		return nil, IllegalOptionType{Field: f.Name, Kind: f.Kind}
	}
	names, defaults := c.parseMeta(f.Meta)
	if len(names) == 0 {
		names = []string{f.Name}
	}
	cfg := &OptCfg{
		StoreKey:  names[0],
		Names:     names,
		HasArg:    f.Kind != KindBool,
		IsArray:   f.Seq,
		Defaults:  defaults,
		Converter: f.Kind.Converter(),
		Desc:      f.Desc,
		ArgInHelp: f.ArgInHelp,
	}
	return cfg, nil
}

// parseMeta splits metadata into names and defaults. Defaults are nil when
// there is no separator.
func (c *Config) parseMeta(meta string) ([]string, []string) {
	sep := string(c.GetSpecial(SpecSeparator))
	namePart, defPart, hasDefaults := strings.Cut(meta, sep)

	var names []string
	if namePart != "" {
		for _, n := range strings.Split(namePart, string(c.GetSpecial(SpecAliasSeparator))) {
			if n = strings.TrimSpace(n); n != "" {
				names = append(names, n)
			}
		}
	}
	if !hasDefaults {
		return names, nil
	}
	return names, c.parseDefaults(defPart)
}

// parseDefaults parses the part after the separator. Values are split
// naively: a delimiter inside a value cannot be escaped.
func (c *Config) parseDefaults(s string) []string {
	open := c.GetSpecial(SpecOpenList)
	closing := string(c.GetSpecial(SpecCloseList))
	if !strings.HasSuffix(s, closing) {
		return []string{s}
	}
	delim := string(c.GetSpecial(SpecListDelimiter))
	body, ok := "", false
	if r, size := utf8.DecodeRuneInString(s); r == open {
		body, ok = s[size:len(s)-len(closing)], true
	} else if r2, size2 := utf8.DecodeRuneInString(s[size:]); size < len(s) && r2 == open && size+size2 <= len(s)-len(closing) {
		delim = string(r)
		body, ok = s[size+size2:len(s)-len(closing)], true
	}
	if !ok {
		return []string{s}
	}
	if body == "" {
		return []string{}
	}
	return strings.Split(body, delim)
}
