package cliargs

// Cmd is a parsed command line.
type Cmd struct {
	Name string           // base name of the program or sub-command
	Args []string         // positional arguments in sequence
	Opts map[string][]any // option values by store key
}

// HasOpt returns true if the option with store key is present, either given
// on the command line or set from defaults.
func (c Cmd) HasOpt(key string) bool {
	_, ok := c.Opts[key]
	return ok
}

// OptArg returns the first value of the option with store key, nil if none.
func (c Cmd) OptArg(key string) any {
	if values := c.Opts[key]; len(values) > 0 {
		return values[0]
	}
	return nil
}

// OptArgs returns the values of the option with store key. The result is nil
// if the option is absent, and empty for an option taking no argument.
func (c Cmd) OptArgs(key string) []any {
	return c.Opts[key]
}

// Get returns the first value of the option with store key if it has type T.
func Get[T any](c Cmd, key string) (T, bool) {
	v, ok := c.OptArg(key).(T)
	return v, ok
}

// GetAll returns the values of the option with store key which have type T.
func GetAll[T any](c Cmd, key string) []T {
	values := c.Opts[key]
	if values == nil {
		return nil
	}
	result := make([]T, 0, len(values))
	for _, v := range values {
		if t, ok := v.(T); ok {
			result = append(result, t)
		}
	}
	return result
}
