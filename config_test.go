package cliargs_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jpvetterli/cliargs"
)

// test a few configurations

func TestNewConfig1(t *testing.T) {
	c := cliargs.NewConfig()
	expect([5]rune{'=', ',', '[', ']', ','}, c, t)
}

func TestNewConfig2(t *testing.T) {
	c := cliargs.NewConfig()
	c.SetSpecial(cliargs.SpecSeparator, ':')
	c.SetSpecial(cliargs.SpecAliasSeparator, '/')
	c.SetSpecial(cliargs.SpecOpenList, '<')
	c.SetSpecial(cliargs.SpecCloseList, '>')
	c.SetSpecial(cliargs.SpecListDelimiter, ';')
	expect([5]rune{':', '/', '<', '>', ';'}, c, t)
}

func TestNewConfig3(t *testing.T) {
	c := cliargs.NewConfig()
	c.SetSpecial(cliargs.SpecListDelimiter, ';')
	c.SetSpecial(cliargs.SpecAliasSeparator, ';')
	expect([5]rune{'=', ';', '[', ']', ';'}, c, t)
}

func expect(chars [5]rune, c *cliargs.Config, t *testing.T) {
	specs := []struct {
		name string
		spec rune
	}{
		{"separator", c.GetSpecial(cliargs.SpecSeparator)},
		{"alias separator", c.GetSpecial(cliargs.SpecAliasSeparator)},
		{"open list", c.GetSpecial(cliargs.SpecOpenList)},
		{"close list", c.GetSpecial(cliargs.SpecCloseList)},
		{"list delimiter", c.GetSpecial(cliargs.SpecListDelimiter)},
	}
	for i, s := range specs {
		if s.spec != chars[i] {
			t.Errorf("unexpected %s '%c', expected '%c'", s.name, s.spec, chars[i])
		}
	}
}

func TestConfigMakeOptCfgs(t *testing.T) {
	c := cliargs.NewConfig()
	c.SetSpecial(cliargs.SpecSeparator, ':')
	c.SetSpecial(cliargs.SpecAliasSeparator, '|')
	c.SetSpecial(cliargs.SpecOpenList, '(')
	c.SetSpecial(cliargs.SpecCloseList, ')')
	cfgs, err := c.MakeOptCfgs([]cliargs.Field{
		{Name: "ports", Kind: cliargs.KindInt, Seq: true, Meta: "port|p:(80,443)"},
		{Name: "host", Kind: cliargs.KindString, Meta: "host|H:a=b"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"port", "p"}, cfgs[0].Names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"80", "443"}, cfgs[0].Defaults); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a=b"}, cfgs[1].Defaults); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}

	// changes after the call have no effect on the configurations
	c.SetSpecial(cliargs.SpecSeparator, '=')
	r := cliargs.ParseWith([]string{"app"}, cfgs)
	if diff := cmp.Diff([]int{80, 443}, cliargs.GetAll[int](r.Cmd, "port")); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

// test config panics

func TestConfigPanic1(t *testing.T) {
	defer panicHandler(`cannot use ' ' as separator: not a valid special character`, t)
	cliargs.NewConfig().SetSpecial(cliargs.SpecSeparator, ' ')
}

func TestConfigPanic2(t *testing.T) {
	defer panicHandler(`cannot use 'a' as open list: not a valid special character`, t)
	cliargs.NewConfig().SetSpecial(cliargs.SpecOpenList, 'a')
}

func TestConfigPanic3(t *testing.T) {
	defer panicHandler(`cannot use '_' as list delimiter: not a valid special character`, t)
	cliargs.NewConfig().SetSpecial(cliargs.SpecListDelimiter, '_')
}

func TestConfigPanic4(t *testing.T) {
	defer panicHandler(`cannot use '[' as close list: already used`, t)
	cliargs.NewConfig().SetSpecial(cliargs.SpecCloseList, '[')
}

func TestConfigPanic5(t *testing.T) {
	defer panicHandler(`cannot use '=' as alias separator: already used`, t)
	cliargs.NewConfig().SetSpecial(cliargs.SpecAliasSeparator, '=')
}

func TestConfigPanic6(t *testing.T) {
	defer panicHandler(`unknown special: 9`, t)
	cliargs.NewConfig().SetSpecial(9, '%')
}

func TestConfigPanic7(t *testing.T) {
	defer panicHandler(`unknown special: 7`, t)
	cliargs.NewConfig().GetSpecial(7)
}

func panicHandler(expected string, t *testing.T) {
	err := recover()
	if err == nil {
		if len(expected) > 0 {
			t.Errorf(`(recovery) no error caught, expected: "%s"`, expected)
		}
	} else {
		if e, ok := err.(error); !ok {
			t.Errorf("(recovery) unexpected error: %v", err)
		} else if e.Error() != expected {
			t.Errorf(`(recovery) unexpected error message: "%s" expected: "%s"`, err, expected)
		}
	}
}
