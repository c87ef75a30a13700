package cliargs

import "fmt"

// OptionHasInvalidChar is the error when an option name contains a character
// other than an ASCII letter, digit or hyphen, or does not start with a letter.
type OptionHasInvalidChar struct {
	Option string
}

func (e OptionHasInvalidChar) Error() string {
	return fmt.Sprintf(`option contains an invalid character: "%s"`, e.Option)
}

// UnconfiguredOption is the error when an option is not configured and no
// catch-all configuration is present.
type UnconfiguredOption struct {
	Option string
}

func (e UnconfiguredOption) Error() string {
	return fmt.Sprintf(`option not configured: "%s"`, e.Option)
}

// OptionNeedsArg is the error when an option taking an argument was given
// without one.
type OptionNeedsArg struct {
	Option   string
	StoreKey string
}

func (e OptionNeedsArg) Error() string {
	return fmt.Sprintf(`option needs an argument: "%s" (key: %s)`, e.Option, e.StoreKey)
}

// OptionTakesNoArg is the error when an option taking no argument was given
// one.
type OptionTakesNoArg struct {
	Option   string
	StoreKey string
}

func (e OptionTakesNoArg) Error() string {
	return fmt.Sprintf(`option takes no argument: "%s" (key: %s)`, e.Option, e.StoreKey)
}

// OptionIsNotArray is the error when a single-valued option is given a
// second value. The first value stays bound.
type OptionIsNotArray struct {
	Option   string
	StoreKey string
	Value    string
}

func (e OptionIsNotArray) Error() string {
	return fmt.Sprintf(`option cannot take more than one value: "%s" (key: %s, value: "%s")`, e.Option, e.StoreKey, e.Value)
}

// FailToConvertOptionArg is the error when the converter or the validator of
// an option rejects a value given on the command line.
type FailToConvertOptionArg struct {
	Option   string
	StoreKey string
	Value    string
	Err      error
}

func (e FailToConvertOptionArg) Error() string {
	return fmt.Sprintf(`invalid value for option "%s" (key: %s): "%s": %v`, e.Option, e.StoreKey, e.Value, e.Err)
}

func (e FailToConvertOptionArg) Unwrap() error { return e.Err }

// StoreKeyIsDuplicated is the error when two configurations share a store
// key.
type StoreKeyIsDuplicated struct {
	StoreKey string
}

func (e StoreKeyIsDuplicated) Error() string {
	return fmt.Sprintf(`store key "%s" is used by more than one configuration`, e.StoreKey)
}

// OptionNameIsDuplicated is the error when two configurations share a name
// or alias.
type OptionNameIsDuplicated struct {
	Option   string
	StoreKey string
}

func (e OptionNameIsDuplicated) Error() string {
	return fmt.Sprintf(`option name "%s" (key: %s) clashes with an existing name or alias`, e.Option, e.StoreKey)
}

// ConfigIsArrayButHasNoArg is the error when a configuration is multi-valued
// but takes no argument.
type ConfigIsArrayButHasNoArg struct {
	StoreKey string
}

func (e ConfigIsArrayButHasNoArg) Error() string {
	return fmt.Sprintf(`configuration "%s" is an array but takes no argument`, e.StoreKey)
}

// ConfigHasDefaultsButHasNoArg is the error when a configuration has default
// values but takes no argument.
type ConfigHasDefaultsButHasNoArg struct {
	StoreKey string
}

func (e ConfigHasDefaultsButHasNoArg) Error() string {
	return fmt.Sprintf(`configuration "%s" has default values but takes no argument`, e.StoreKey)
}

// FailToConvertDefaultsInConfig is the error when a default value of a
// configuration is rejected by its converter or validator.
type FailToConvertDefaultsInConfig struct {
	StoreKey string
	Value    string
	Err      error
}

func (e FailToConvertDefaultsInConfig) Error() string {
	return fmt.Sprintf(`invalid default value for "%s": "%s": %v`, e.StoreKey, e.Value, e.Err)
}

func (e FailToConvertDefaultsInConfig) Unwrap() error { return e.Err }

// IllegalOptionType is the error when a field has a kind no converter
// exists for.
type IllegalOptionType struct {
	Field string
	Kind  Kind
}

func (e IllegalOptionType) Error() string {
	return fmt.Sprintf(`field "%s" has unsupported kind %v`, e.Field, e.Kind)
}

// FailToBindField is the error when the values of an option cannot be post
// processed or assigned to the target of a field.
type FailToBindField struct {
	Field    string
	StoreKey string
	Err      error
}

func (e FailToBindField) Error() string {
	if e.Field == "" {
		return fmt.Sprintf(`cannot process values of "%s": %v`, e.StoreKey, e.Err)
	}
	return fmt.Sprintf(`cannot bind "%s" to field %s: %v`, e.StoreKey, e.Field, e.Err)
}

func (e FailToBindField) Unwrap() error { return e.Err }
