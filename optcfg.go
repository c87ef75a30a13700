package cliargs

// AnyOption is the store key of the catch-all configuration. A configuration
// with this key, or with this first name, accepts any option not otherwise
// configured and keeps its values as raw strings under the name used on the
// command line.
const AnyOption = "*"

// Converter converts one raw option value.
type Converter func(value string) (any, error)

// Validator checks one converted option value. It must not modify it.
type Validator func(value any) error

// Postparser processes the complete list of values of an option after all
// tokens were scanned and defaults applied. It returns the list to keep.
type Postparser func(values []any) ([]any, error)

// OptCfg is the configuration of an option. The fields can be set directly
// or with methods designed to support chaining:
//
//	cliargs.Opt("verbose", "v").Doc("print more")
//	cliargs.Opt("include", "I").Arg().Array().Help("<dir>")
//	cliargs.Opt("level").Arg().Default("3").Convert(cliargs.IntConverter(64))
//
// A configuration is validated when passed to a Parse function and is only
// read afterwards, so it can be shared by any number of parses.
type OptCfg struct {
	StoreKey   string   // the canonical key of values, defaults to the first name
	Names      []string // names and aliases, without hyphens
	HasArg     bool
	IsArray    bool
	Defaults   []string // nil means no defaults, an empty slice an empty list
	Converter  Converter
	Validator  Validator
	Postparser Postparser
	Desc       string // help text
	ArgInHelp  string // argument placeholder in help text
}

// Opt returns a new configuration with names. The first name is also the
// store key unless Key is used.
func Opt(names ...string) *OptCfg {
	return &OptCfg{Names: names}
}

// CatchAll returns a configuration accepting any option not otherwise
// configured.
func CatchAll() *OptCfg {
	return &OptCfg{StoreKey: AnyOption}
}

// Key sets the store key.
func (c *OptCfg) Key(key string) *OptCfg {
	c.StoreKey = key
	return c
}

// Arg indicates that the option takes an argument.
func (c *OptCfg) Arg() *OptCfg {
	c.HasArg = true
	return c
}

// Array indicates that the option can take any number of values. Only
// options taking an argument can be arrays.
func (c *OptCfg) Array() *OptCfg {
	c.IsArray = true
	return c
}

// Default sets the values taken when the option is absent. Calling it
// without values sets an empty list.
func (c *OptCfg) Default(values ...string) *OptCfg {
	if values == nil {
		values = []string{}
	}
	c.Defaults = values
	return c
}

// Convert sets the converter of raw values. Without one, values are kept as
// strings.
func (c *OptCfg) Convert(f Converter) *OptCfg {
	c.Converter = f
	return c
}

// Validate sets a validator run on every converted value.
func (c *OptCfg) Validate(f Validator) *OptCfg {
	c.Validator = f
	return c
}

// Post sets the postparser.
func (c *OptCfg) Post(f Postparser) *OptCfg {
	c.Postparser = f
	return c
}

// Doc sets the help text.
func (c *OptCfg) Doc(desc string) *OptCfg {
	c.Desc = desc
	return c
}

// Help sets the placeholder of the argument in help text.
func (c *OptCfg) Help(arg string) *OptCfg {
	c.ArgInHelp = arg
	return c
}

// key returns the effective store key.
func (c *OptCfg) key() string {
	if c.StoreKey != "" {
		return c.StoreKey
	}
	if len(c.Names) > 0 {
		return c.Names[0]
	}
	return ""
}

func (c *OptCfg) isCatchAll() bool {
	return c.StoreKey == AnyOption || (len(c.Names) > 0 && c.Names[0] == AnyOption)
}

// names returns the names of the option, the store key if none.
func (c *OptCfg) names() []string {
	if len(c.Names) == 0 {
		return []string{c.key()}
	}
	return c.Names
}

// assign converts and validates one raw value.
func (c *OptCfg) assign(value string) (any, error) {
	var (
		v   any = value
		err error
	)
	if c.Converter != nil {
		if v, err = c.Converter(value); err != nil {
			return nil, err
		}
	}
	if c.Validator != nil {
		if err = c.Validator(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}
