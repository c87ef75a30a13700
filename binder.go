package cliargs

// binder accumulates option values by store key.
type binder struct {
	reg  *registry
	opts map[string][]any
}

func newBinder(reg *registry) *binder {
	return &binder{reg: reg, opts: make(map[string][]any)}
}

// collectOpt records one option occurrence. The value is meaningful only when
// hasValue is true.
func (b *binder) collectOpt(name, value string, hasValue bool) error {
	cfg := b.reg.lookup(name)
	if cfg == nil {
		if b.reg.catchAll == nil {
			return UnconfiguredOption{Option: name}
		}
		list, ok := b.opts[name]
		if !ok {
			list = []any{}
		}
		if hasValue {
			list = append(list, value)
		}
		b.opts[name] = list
		return nil
	}

	key := cfg.key()
	if !cfg.HasArg {
		if hasValue {
			return OptionTakesNoArg{Option: name, StoreKey: key}
		}
		if _, ok := b.opts[key]; !ok {
			b.opts[key] = []any{}
		}
		return nil
	}
	if !hasValue {
		return OptionNeedsArg{Option: name, StoreKey: key}
	}
	list := b.opts[key]
	if !cfg.IsArray && len(list) > 0 {
		return OptionIsNotArray{Option: name, StoreKey: key, Value: value}
	}
	v, err := cfg.assign(value)
	if err != nil {
		return FailToConvertOptionArg{Option: name, StoreKey: key, Value: value, Err: err}
	}
	b.opts[key] = append(list, v)
	return nil
}

// finish applies defaults to absent options, then runs postparsers. The
// result is the first postparser error.
func (b *binder) finish() error {
	for _, cfg := range b.reg.cfgs {
		key := cfg.key()
		defaults, ok := b.reg.defaults[key]
		if !ok || cfg.isCatchAll() {
			continue
		}
		if _, present := b.opts[key]; !present {
			b.opts[key] = append([]any{}, defaults...)
		}
	}
	var firstErr error
	for _, cfg := range b.reg.cfgs {
		if cfg.Postparser == nil || cfg.isCatchAll() {
			continue
		}
		key := cfg.key()
		values, ok := b.opts[key]
		if !ok {
			continue
		}
		values, err := cfg.Postparser(values)
		if err != nil {
			if firstErr == nil {
				firstErr = FailToBindField{StoreKey: key, Err: err}
			}
			continue
		}
		if values == nil {
			values = []any{}
		}
		b.opts[key] = values
	}
	return firstErr
}
