package cliargs

import "strings"

// scanner classifies command line tokens one at a time and reports them to
// its callbacks. It never stops on an error: the first error is kept and
// returned once all tokens have been seen.
type scanner struct {
	collectArg func(arg string)
	collectOpt func(name, value string, hasValue bool) error
	takesArg   func(name string) bool

	// stop before the first positional argument
	untilFirstArg bool
}

// stop is where a scan in untilFirstArg mode stopped.
type stop struct {
	index          int  // index of the first positional argument
	afterEndMarker bool // true if found after "--"
}

type scanState uint8

const (
	ssOption   scanState = iota // options and arguments mixed
	ssValue                     // next token is the value of a pending option
	ssArgsOnly                  // after "--"
)

// scan scans args. When frozen is true, all tokens are positional from the
// start. The result is nil unless untilFirstArg is set and a positional
// argument was found.
func (s *scanner) scan(args []string, frozen bool) (*stop, error) {
	var (
		firstErr error
		pending  string // option waiting for its value
	)
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	state := ssOption
	if frozen {
		state = ssArgsOnly
	}

	last := len(args) - 1
	for i, arg := range args {
		switch state {

		case ssArgsOnly:
			if s.untilFirstArg {
				return &stop{index: i, afterEndMarker: true}, firstErr
			}
			s.collectArg(arg)
			continue

		case ssValue:
			record(s.collectOpt(pending, arg, true))
			pending = ""
			state = ssOption
			continue
		}

		switch {

		case arg == "--":
			state = ssArgsOnly

		case strings.HasPrefix(arg, "--"):
			name, err := s.scanLong(arg[2:])
			record(err)
			if name != "" {
				if i < last && s.takesArg(name) {
					pending, state = name, ssValue
				} else {
					record(s.collectOpt(name, "", false))
				}
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			name, err := s.scanShort(arg[1:])
			record(err)
			if name != "" {
				if i < last && s.takesArg(name) {
					pending, state = name, ssValue
				} else {
					record(s.collectOpt(name, "", false))
				}
			}

		default:
			// includes "-" and the empty string
			if s.untilFirstArg {
				return &stop{index: i}, firstErr
			}
			s.collectArg(arg)
		}
	}
	return nil, firstErr
}

// scanLong scans a long option without its leading hyphens. When the option
// has an inline value it is collected here and the result is empty. Otherwise
// the result is the option name, still to be collected by the caller.
func (s *scanner) scanLong(opt string) (string, error) {
	for i, r := range opt {
		switch {
		case i == 0:
			if !validLead(r) {
				return "", OptionHasInvalidChar{Option: opt}
			}
		case r == '=':
			return "", s.collectOpt(opt[:i], opt[i+1:], true)
		case !valid(r):
			return "", OptionHasInvalidChar{Option: opt}
		}
	}
	return opt, nil
}

// scanShort scans a cluster of short options without the leading hyphen.
// Every letter is an option. All options but the last are collected here,
// and so is the last one when it has an inline value. Otherwise the result is
// the name of the last option, still to be collected by the caller. Invalid
// characters are reported and skipped. An "=" following an invalid character
// ends the cluster.
func (s *scanner) scanShort(cluster string) (string, error) {
	var (
		firstErr error
		name     string
	)
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for i, r := range cluster {
		if r == '=' && name == "" {
			// the value of an invalid option
			if i == 0 {
				record(OptionHasInvalidChar{Option: string(r)})
			}
			return "", firstErr
		}
		if name != "" {
			if r == '=' {
				record(s.collectOpt(name, cluster[i+1:], true))
				return "", firstErr
			}
			record(s.collectOpt(name, "", false))
			name = ""
		}
		if validLead(r) {
			name = string(r)
		} else {
			record(OptionHasInvalidChar{Option: string(r)})
		}
	}
	return name, firstErr
}
