/*
Package cliargs parses the arguments of a program into a command: a name, a
list of positional arguments, and the values of options, grouped by a store
key. Options are described by configurations, written by hand or made from a
list of fields with a small metadata language, or not described at all.

The simplest use needs no configuration at all:

	package main

	import (
		"fmt"
		"os"

		"github.com/jpvetterli/cliargs"
	)

	func main() {
		r := cliargs.Parse(os.Args)
		if err := r.Err(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(r.Cmd.Args, r.Cmd.HasOpt("verbose"))
	}

Without configurations, any option is accepted, an option written with a value
keeps the value as a string, and an option written without one is simply
present. Given the arguments

	--foo-bar -a --baz -bc=3 qux -c=4 quux

the command has the positional arguments qux and quux, the options foo-bar, a,
baz, b and c are present, and c has the values 3 and 4.

# Command Line Syntax

Arguments are processed one at a time, exactly as received from the system.
Nothing is unquoted or expanded. An argument is one of:

	--name          a long option
	--name=value    a long option with a value
	--name value    the same, if name is configured to take an argument
	-x              a short option
	-x=value        a short option with a value
	-x value        the same, if x is configured to take an argument
	-xyz            the short options x, y, and z
	-xyz=value      the short options x and y, and z with a value
	--              the end of options: all that follows is positional
	-               a positional argument (by convention, standard input)
	anything else   a positional argument

A long option name starts with an ASCII letter followed by ASCII letters,
digits and hyphens. A short option is an ASCII letter. Any other character
makes the option invalid. Options and positional arguments can be mixed in
any order.

# Configurations

An OptCfg configures an option: its names, the store key of its values,
whether it takes an argument and more than one, default values, and
functions to convert, validate and post-process values. Configurations are
conveniently written by chaining:

	cfgs := []*cliargs.OptCfg{
		cliargs.Opt("verbose", "v").Doc("print more"),
		cliargs.Opt("level", "l").Arg().Default("3").Convert(cliargs.IntConverter(0)),
		cliargs.Opt("include", "I").Arg().Array().Help("<dir>"),
	}
	r := cliargs.ParseWith(os.Args, cfgs)

Configurations are validated before any argument is looked at. Invalid
configurations are a bug in the program: the command is empty and the error
tells what is wrong. A configuration with the store key "*" (see CatchAll)
accepts any option not otherwise configured.

# Errors

Errors found in arguments do not stop parsing. All arguments are processed,
and the command holds everything which could be understood. Only the first
error is kept and returned by Result.Err. All errors have distinct types,
which can be tested with errors.As.

# Fields

Configurations can be made from a list of fields, each with a name, a kind,
and metadata. The metadata language is explained with Config. The fields can
have targets taking values after parsing:

	var (
		verbose bool
		level   = 3
	)
	r := cliargs.ParseFields(os.Args, []cliargs.Field{
		cliargs.FieldFor("verbose", &verbose, "verbose,v"),
		cliargs.FieldFor("level", &level, "level,l"),
	})

Fields can also be read from a YAML or TOML document with LoadSchema.

# Sub-commands

ParseUntilSubCmd and ParseUntilSubCmdWith stop at the first positional
argument and return it as a SubCmd, which is parsed separately with its own
configurations:

	r, sub := cliargs.ParseUntilSubCmdWith(os.Args, globalCfgs)
	if sub != nil && sub.Name == "run" {
		rr := sub.ParseWith(runCfgs)
		...
	}

When the sub-command comes after "--", all its arguments are positional.
*/
package cliargs
