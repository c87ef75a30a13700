// Command cliargs parses a command line with the options described in a
// schema file and prints the result as YAML. It is useful to try out a
// schema before writing the program using it.
//
//	cliargs -s app.yaml app --level=4 -v file1 file2
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/jpvetterli/cliargs"
	"gopkg.in/yaml.v3"
)

var toolCfgs = []*cliargs.OptCfg{
	cliargs.Opt("schema", "s").Arg().Help("<file>").Doc("schema file, YAML or TOML (.toml)"),
	cliargs.Opt("nested", "n").Doc("stop at the first positional argument of the parsed command"),
	cliargs.Opt("usage", "u").Doc("print the options of the schema instead of parsing"),
	cliargs.Opt("verbose", "v").Doc("log what is done on standard error"),
	cliargs.Opt("help", "h").Doc("print this help and exit"),
}

// output is what is printed for a parsed command.
type output struct {
	Name   string           `yaml:"name"`
	Args   []string         `yaml:"args"`
	Opts   map[string][]any `yaml:"opts"`
	Error  string           `yaml:"error,omitempty"`
	SubCmd *subOutput       `yaml:"subcmd,omitempty"`
}

type subOutput struct {
	Name           string   `yaml:"name"`
	Args           []string `yaml:"args"`
	AfterEndMarker bool     `yaml:"after_end_marker,omitempty"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("cliargs: ")
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func run(argv []string, w io.Writer) error {
	r, target := cliargs.ParseUntilSubCmdWith(argv, toolCfgs)
	if err := r.Err(); err != nil {
		return err
	}
	cmd := r.Cmd
	if cmd.HasOpt("help") {
		cliargs.PrintDoc(w, toolCfgs, "Usage: %s [options] PROGRAM [ARGS...]", cmd.Name)
		return nil
	}
	if !cmd.HasOpt("verbose") {
		log.SetOutput(io.Discard)
	}

	path, ok := cliargs.Get[string](cmd, "schema")
	if !ok {
		return fmt.Errorf("no schema (try --help)")
	}
	schema, err := cliargs.LoadSchema(path)
	if err != nil {
		return err
	}
	fields, err := schema.ToFields()
	if err != nil {
		return err
	}
	log.Printf("%d fields in %s", len(fields), path)

	if cmd.HasOpt("usage") {
		cfgs, err := cliargs.MakeOptCfgs(fields)
		if err != nil {
			return err
		}
		name := "PROGRAM"
		if target != nil {
			name = target.Name
		}
		cliargs.PrintDoc(w, cfgs, "Usage: %s [options]", name)
		return nil
	}
	if target == nil {
		return fmt.Errorf("no command line to parse (try --help)")
	}

	var (
		parsed cliargs.Result
		sub    *cliargs.SubCmd
	)
	if cmd.HasOpt("nested") {
		parsed, sub = target.ParseFieldsUntilSubCmd(fields)
	} else {
		parsed = target.ParseFields(fields)
	}
	log.Printf("parsed %q with %d options", target.Name, len(parsed.OptCfgs))

	out := output{
		Name: parsed.Cmd.Name,
		Args: parsed.Cmd.Args,
		Opts: parsed.Cmd.Opts,
	}
	if err := parsed.Err(); err != nil {
		out.Error = err.Error()
	}
	if sub != nil {
		out.SubCmd = &subOutput{Name: sub.Name, Args: sub.Args(), AfterEndMarker: sub.AfterEndMarker()}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if err := parsed.Err(); err != nil {
		return err
	}
	return nil
}
