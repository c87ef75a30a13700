package cliargs

import "unicode"

// validLead returns true iff char can start an option name: an ASCII letter.
func validLead(char rune) bool {
	return char <= unicode.MaxASCII && unicode.IsLetter(char)
}

// valid returns true iff char is valid in an option name after the first
// character. Valid characters are ASCII letters, digits and the hyphen.
func valid(char rune) bool {
	return char <= unicode.MaxASCII && (unicode.IsLetter(char) || unicode.IsDigit(char) || char == '-')
}

// validSpecial returns true iff char is valid as a special character of the
// metadata mini-language. Valid special characters are graphic, not white
// space, not valid in a name.
func validSpecial(char rune) bool {
	return !valid(char) && char != '_' && unicode.IsGraphic(char) && !unicode.IsSpace(char)
}
