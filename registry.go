package cliargs

// registry indexes validated option configurations by name.
type registry struct {
	cfgs     []*OptCfg
	names    map[string]*OptCfg
	defaults map[string][]any // converted defaults by store key
	catchAll *OptCfg
}

// newRegistry validates cfgs and returns a registry. Configurations are
// checked in sequence and the first problem is returned.
func newRegistry(cfgs []*OptCfg) (*registry, error) {
	r := &registry{
		cfgs:     cfgs,
		names:    make(map[string]*OptCfg),
		defaults: make(map[string][]any),
	}
	keys := make(map[string]bool, len(cfgs))
	for _, cfg := range cfgs {
		if cfg.isCatchAll() {
			if r.catchAll == nil {
				r.catchAll = cfg
			}
			continue
		}
		key := cfg.key()
		if key == "" {
			continue
		}
		if keys[key] {
			return nil, StoreKeyIsDuplicated{StoreKey: key}
		}
		keys[key] = true
		if !cfg.HasArg {
			if cfg.IsArray {
				return nil, ConfigIsArrayButHasNoArg{StoreKey: key}
			}
			if len(cfg.Defaults) > 0 {
				return nil, ConfigHasDefaultsButHasNoArg{StoreKey: key}
			}
		}
		for _, name := range cfg.names() {
			if _, ok := r.names[name]; ok {
				return nil, OptionNameIsDuplicated{Option: name, StoreKey: key}
			}
			r.names[name] = cfg
		}
		if cfg.Defaults != nil {
			values := make([]any, 0, len(cfg.Defaults))
			for _, d := range cfg.Defaults {
				v, err := cfg.assign(d)
				if err != nil {
					return nil, FailToConvertDefaultsInConfig{StoreKey: key, Value: d, Err: err}
				}
				values = append(values, v)
			}
			r.defaults[key] = values
		}
	}
	return r, nil
}

// lookup returns the configuration of an option name, nil if none.
func (r *registry) lookup(name string) *OptCfg {
	return r.names[name]
}

// takesArg returns true if the option name is configured to take an
// argument.
func (r *registry) takesArg(name string) bool {
	if cfg := r.lookup(name); cfg != nil {
		return cfg.HasArg
	}
	return false
}
