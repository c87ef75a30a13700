package cliargs

import (
	"fmt"
	"io"
	"strings"
)

// helpColumn is the width of the option column of PrintDoc.
const helpColumn = 20

// PrintDoc uses a Writer to print a usage line followed by one entry per
// option configuration, in sequence. The catch-all configuration is not
// printed. Names of one character are printed with one hyphen, others with
// two. Options taking an argument show ArgInHelp, or <key> if not set:
//
//	Usage: prog [options] files...
//
//	Options:
//	  -v, --verbose      print more
//	  -I, --include <dir> ...
//	                     add a directory (default: [.])
//
// The usage line is printed with Fprintf from format and a, followed by an
// empty line. When format is empty, no usage line is printed.
func PrintDoc(w io.Writer, cfgs []*OptCfg, format string, a ...any) {
	if format != "" {
		fmt.Fprintf(w, format, a...)
		fmt.Fprintln(w)
		fmt.Fprintln(w)
	}
	var entries []*OptCfg
	for _, c := range cfgs {
		if !c.isCatchAll() && c.key() != "" {
			entries = append(entries, c)
		}
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "the command takes no option")
		return
	}
	fmt.Fprintln(w, "Options:")
	for _, c := range entries {
		head := optionHead(c)
		info := c.Desc
		if c.Defaults != nil {
			if info != "" {
				info += " "
			}
			info += fmt.Sprintf("(default: [%s])", strings.Join(c.Defaults, " "))
		}
		switch {
		case info == "":
			fmt.Fprintf(w, "  %s\n", head)
		case len(head) > helpColumn-1:
			fmt.Fprintf(w, "  %s\n", head)
			fmt.Fprintf(w, "  %-*s %s\n", helpColumn-1, "", info)
		default:
			fmt.Fprintf(w, "  %-*s %s\n", helpColumn-1, head, info)
		}
	}
}

// optionHead returns the names of an option and its argument placeholder.
func optionHead(c *OptCfg) string {
	var b strings.Builder
	for i, n := range c.names() {
		if i > 0 {
			b.WriteString(", ")
		}
		if len(n) == 1 {
			b.WriteString("-")
		} else {
			b.WriteString("--")
		}
		b.WriteString(n)
	}
	if c.HasArg {
		arg := c.ArgInHelp
		if arg == "" {
			arg = "<" + c.key() + ">"
		}
		b.WriteString(" ")
		b.WriteString(arg)
	}
	if c.IsArray {
		b.WriteString(" ...")
	}
	return b.String()
}
