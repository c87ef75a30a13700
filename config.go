package cliargs

import "fmt"

type specConstant uint8

// Special character constants for Config methods.
const (
	SpecSeparator      specConstant = iota // between names and defaults
	SpecAliasSeparator                     // between names
	SpecOpenList                           // opens a list of defaults
	SpecCloseList                          // closes a list of defaults
	SpecListDelimiter                      // between defaults, unless overridden
)

// Config holds the special characters of the mini-language used in field
// metadata by MakeOptCfgs. The syntax is
//
//	[name[,alias...]][=defaults]
//
// where defaults is either a single value taken literally, or a list
// [v1,v2,...], or a list d[v1 d v2 d ...] with the character d before the
// opening bracket as delimiter. With default special characters:
//
//	foo-bar,f       names foo-bar and f, no defaults
//	=3              name from the field, one default "3"
//	=               name from the field, one default ""
//	f=[]            name f, an empty list of defaults
//	f=[1,2]         name f, defaults "1" and "2"
//	f=:[1,5:2,5]    name f, defaults "1,5" and "2,5"
type Config struct {
	specList [5]rune
}

var specialDescription = [5]string{
	"separator",
	"alias separator",
	"open list",
	"close list",
	"list delimiter",
}

// NewConfig returns the address of a new default Config.
func NewConfig() *Config {
	return &Config{
		specList: [5]rune{'=', ',', '[', ']', ','},
	}
}

func (c *Config) copy() *Config {
	return &Config{specList: c.specList}
}

// GetSpecial returns the character currently corresponding to a special
// character identified by its constant.
func (c *Config) GetSpecial(which specConstant) rune {
	switch which {
	case SpecSeparator, SpecAliasSeparator, SpecOpenList, SpecCloseList, SpecListDelimiter:
		return c.specList[which]
	}
	panic(fmt.Errorf(`unknown special: %v`, which))
}

// SetSpecial changes a special character identified by a constant. Panics if
// ch is invalid, or is already used, or if spec is unknown. The list
// delimiter may be the same as the alias separator.
func (c *Config) SetSpecial(spec specConstant, ch rune) {
	switch spec {
	case SpecSeparator:
	case SpecAliasSeparator:
	case SpecOpenList:
	case SpecCloseList:
	case SpecListDelimiter:
	default:
		panic(fmt.Errorf(`unknown special: %v`, spec))
	}
	if !validSpecial(ch) {
		panic(fmt.Errorf("cannot use '%c' as %s: not a valid special character", ch, specialDescription[spec]))
	}
	if c.isDuplicate(spec, ch) {
		panic(fmt.Errorf("cannot use '%c' as %s: already used", ch, specialDescription[spec]))
	}
	c.specList[spec] = ch
}

func (c *Config) isDuplicate(spec specConstant, ch rune) bool {
	for i, r := range c.specList {
		other := specConstant(i)
		if other == spec || r != ch {
			continue
		}
		if (spec == SpecListDelimiter && other == SpecAliasSeparator) ||
			(spec == SpecAliasSeparator && other == SpecListDelimiter) {
			continue
		}
		return true
	}
	return false
}
