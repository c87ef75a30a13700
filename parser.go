package cliargs

import "path/filepath"

// Result is the outcome of a parse: the command, the configurations used and
// the first error, if any. The command is filled as far as possible even when
// there is an error, unless the configurations themselves are invalid, in
// which case it is empty.
type Result struct {
	Cmd     Cmd
	OptCfgs []*OptCfg
	err     error
}

// Err returns the first error found while parsing, nil if none.
func (r Result) Err() error {
	return r.err
}

// SubCmd is the remainder of a command line after the first positional
// argument, as found by the ParseUntilSubCmd functions. It is parsed
// independently with its own configurations.
type SubCmd struct {
	Name           string // the first positional argument
	args           []string
	afterEndMarker bool
}

// Args returns the tokens following the sub-command name.
func (s *SubCmd) Args() []string {
	return s.args
}

// AfterEndMarker returns true if the sub-command was found after "--". In
// this case all its tokens are positional arguments.
func (s *SubCmd) AfterEndMarker() bool {
	return s.afterEndMarker
}

// Parse parses the sub-command accepting any option.
func (s *SubCmd) Parse() Result {
	r, _ := parse(s.Name, s.args, schemaless(), false, s.afterEndMarker)
	return r
}

// ParseWith parses the sub-command with option configurations.
func (s *SubCmd) ParseWith(cfgs []*OptCfg) Result {
	r, _ := parse(s.Name, s.args, cfgs, false, s.afterEndMarker)
	return r
}

// ParseUntilSubCmd parses the sub-command accepting any option, up to the
// next sub-command.
func (s *SubCmd) ParseUntilSubCmd() (Result, *SubCmd) {
	return parse(s.Name, s.args, schemaless(), true, s.afterEndMarker)
}

// ParseUntilSubCmdWith parses the sub-command with option configurations, up
// to the next sub-command.
func (s *SubCmd) ParseUntilSubCmdWith(cfgs []*OptCfg) (Result, *SubCmd) {
	return parse(s.Name, s.args, cfgs, true, s.afterEndMarker)
}

// Parse parses a command line without option configurations: any option is
// accepted, and any value is kept as a string under the name of the option.
// As with os.Args, argv[0] is the program.
func Parse(argv []string) Result {
	r, _ := parseArgv(argv, schemaless(), false)
	return r
}

// ParseWith parses a command line with option configurations. As with
// os.Args, argv[0] is the program.
func ParseWith(argv []string, cfgs []*OptCfg) Result {
	r, _ := parseArgv(argv, cfgs, false)
	return r
}

// ParseUntilSubCmd is like Parse but stops at the first positional argument,
// which is taken as the name of a sub-command. The sub-command is nil if
// there is none.
func ParseUntilSubCmd(argv []string) (Result, *SubCmd) {
	return parseArgv(argv, schemaless(), true)
}

// ParseUntilSubCmdWith is like ParseWith but stops at the first positional
// argument, which is taken as the name of a sub-command. The sub-command is
// nil if there is none.
func ParseUntilSubCmdWith(argv []string, cfgs []*OptCfg) (Result, *SubCmd) {
	return parseArgv(argv, cfgs, true)
}

// helpers

// invalid returns the result of a parse with invalid configurations.
func invalid(cfgs []*OptCfg, err error) Result {
	return Result{Cmd: Cmd{Args: []string{}, Opts: map[string][]any{}}, OptCfgs: cfgs, err: err}
}

func schemaless() []*OptCfg {
	return []*OptCfg{CatchAll()}
}

func parseArgv(argv []string, cfgs []*OptCfg, untilSubCmd bool) (Result, *SubCmd) {
	var name string
	var args []string
	if len(argv) > 0 {
		name = filepath.Base(argv[0])
		args = argv[1:]
	}
	return parse(name, args, cfgs, untilSubCmd, false)
}

// parse validates cfgs, scans args and binds option values.
func parse(name string, args []string, cfgs []*OptCfg, untilSubCmd, frozen bool) (Result, *SubCmd) {
	reg, err := newRegistry(cfgs)
	if err != nil {
		return invalid(cfgs, err), nil
	}
	result := Result{Cmd: Cmd{Name: name, Args: []string{}}, OptCfgs: cfgs}

	b := newBinder(reg)
	s := &scanner{
		collectArg: func(arg string) {
			result.Cmd.Args = append(result.Cmd.Args, arg)
		},
		collectOpt:    b.collectOpt,
		takesArg:      reg.takesArg,
		untilFirstArg: untilSubCmd,
	}
	at, err := s.scan(args, frozen)
	if e := b.finish(); err == nil {
		err = e
	}
	result.Cmd.Opts = b.opts
	result.err = err

	if at == nil {
		return result, nil
	}
	return result, &SubCmd{
		Name:           args[at.index],
		args:           args[at.index+1:],
		afterEndMarker: at.afterEndMarker,
	}
}
