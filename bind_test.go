package cliargs_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jpvetterli/cliargs"
)

func TestParseFieldsTargets(t *testing.T) {
	var (
		verbose  bool
		level    = 3
		name     string
		includes []string
		timeout  time.Duration
		ratio    *float64
		ports    []uint16
		kept     = "keep"
	)
	fields := []cliargs.Field{
		cliargs.FieldFor("verbose", &verbose, "verbose,v"),
		cliargs.FieldFor("level", &level, "level,l"),
		cliargs.FieldFor("name", &name, "name,n=anonymous"),
		cliargs.FieldFor("includes", &includes, "include,I"),
		cliargs.FieldFor("timeout", &timeout, "=5s"),
		cliargs.FieldFor("ratio", &ratio, ""),
		cliargs.FieldFor("ports", &ports, "port,p=[80,443]"),
		cliargs.FieldFor("kept", &kept, ""),
	}
	r := cliargs.ParseFields(argv("-vl", "7", "-I", "a", "file", "--include=b", "--ratio", "0.25"), fields)
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !verbose || level != 7 || name != "anonymous" || timeout != 5*time.Second || kept != "keep" {
		t.Errorf("unexpected values: %v %v %q %v %q", verbose, level, name, timeout, kept)
	}
	if ratio == nil || *ratio != 0.25 {
		t.Errorf("unexpected ratio: %v", ratio)
	}
	if diff := cmp.Diff([]string{"a", "b"}, includes); diff != "" {
		t.Errorf("includes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint16{80, 443}, ports); diff != "" {
		t.Errorf("ports mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"file"}, r.Cmd.Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFieldsAbsentKeepsTarget(t *testing.T) {
	level := 3
	verbose := true
	r := cliargs.ParseFields(argv(), []cliargs.Field{
		cliargs.FieldFor("level", &level, ""),
		cliargs.FieldFor("verbose", &verbose, ""),
	})
	if r.Err() != nil || level != 3 || !verbose {
		t.Errorf("unexpected result: %v %d %v", r.Err(), level, verbose)
	}
}

func TestFieldFor(t *testing.T) {
	var (
		s  string
		b  bool
		bs []bool
		d  []time.Duration
		p  *int64
		m  map[string]string
	)
	var fieldForData = []struct {
		target any
		kind   cliargs.Kind
		seq    bool
	}{
		{&s, cliargs.KindString, false},
		{&b, cliargs.KindBool, false},
		{&bs, cliargs.KindInvalid, true},
		{&d, cliargs.KindDuration, true},
		{&p, cliargs.KindInt64, false},
		{&m, cliargs.KindInvalid, false},
		{s, cliargs.KindInvalid, false},
		{nil, cliargs.KindInvalid, false},
	}
	for i, data := range fieldForData {
		f := cliargs.FieldFor("f", data.target, "")
		if f.Kind != data.kind || f.Seq != data.seq {
			t.Errorf("%d: kind %v seq %v, expected: %v %v", i, f.Kind, f.Seq, data.kind, data.seq)
		}
	}
}

func TestParseFieldsBindError(t *testing.T) {
	var n int
	var s string
	r := cliargs.ParseFields(argv("-n", "1", "-s", "x"), []cliargs.Field{
		{Name: "n", Kind: cliargs.KindInt, Target: &s},
		{Name: "s", Kind: cliargs.KindString, Target: &n},
	})
	var e cliargs.FailToBindField
	if !errors.As(r.Err(), &e) || e.Field != "n" || e.StoreKey != "n" {
		t.Fatalf("unexpected error: %v", r.Err())
	}
	if r.Cmd.OptArg("n") != 1 || r.Cmd.OptArg("s") != "x" {
		t.Errorf("unexpected options: %v", r.Cmd.Opts)
	}
}

func TestParseFieldsParseErrorFirst(t *testing.T) {
	var s string
	r := cliargs.ParseFields(argv("-s", "x", "--bad"), []cliargs.Field{
		{Name: "s", Kind: cliargs.KindString, Target: &s},
		{Name: "t", Kind: cliargs.KindInt, Meta: "t=1", Target: &s},
	})
	if r.Err() != (cliargs.UnconfiguredOption{Option: "bad"}) {
		t.Errorf("unexpected error: %v", r.Err())
	}
	if s != "x" {
		t.Errorf("target not bound: %q", s)
	}
}

func TestParseFieldsInvalid(t *testing.T) {
	r := cliargs.ParseFields(argv("-x"), []cliargs.Field{{Name: "x"}})
	if r.Err() != (cliargs.IllegalOptionType{Field: "x"}) {
		t.Errorf("unexpected error: %v", r.Err())
	}
	if r.Cmd.Name != "" || r.OptCfgs != nil {
		t.Errorf("unexpected result: %+v", r)
	}
}

func TestSubCmdParseFields(t *testing.T) {
	var (
		force bool
		depth int
	)
	r, sub := cliargs.ParseUntilSubCmd(argv("-v", "clean", "-f", "--depth", "2", "dir"))
	if r.Err() != nil || sub == nil {
		t.Fatalf("unexpected result: %v %v", r.Err(), sub)
	}
	rr := sub.ParseFields([]cliargs.Field{
		cliargs.FieldFor("force", &force, "force,f"),
		cliargs.FieldFor("depth", &depth, ""),
	})
	if err := rr.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !force || depth != 2 || rr.Cmd.Name != "clean" {
		t.Errorf("unexpected values: %v %d %q", force, depth, rr.Cmd.Name)
	}

	force, depth = false, 0
	rr, next := sub.ParseFieldsUntilSubCmd([]cliargs.Field{
		cliargs.FieldFor("force", &force, "force,f"),
		cliargs.FieldFor("depth", &depth, ""),
	})
	if rr.Err() != nil || next == nil || next.Name != "dir" || !force || depth != 2 {
		t.Errorf("unexpected result: %v %+v %v %d", rr.Err(), next, force, depth)
	}
}
