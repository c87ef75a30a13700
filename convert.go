package cliargs

import (
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the type of the values of a field.
type Kind uint8

// Kinds supported by MakeOptCfgs.
const (
	KindInvalid Kind = iota
	KindString
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDuration
)

var kindNames = [...]string{
	"invalid",
	"string",
	"bool",
	"int",
	"int8",
	"int16",
	"int32",
	"int64",
	"uint",
	"uint8",
	"uint16",
	"uint32",
	"uint64",
	"float32",
	"float64",
	"duration",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the kind with the given name, as returned by
// Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if i > 0 && n == s {
			return Kind(i), nil
		}
	}
	return KindInvalid, fmt.Errorf(`unknown kind "%s"`, s)
}

// Converter returns the converter for values of kind k, nil for KindBool and
// for unsupported kinds. The converted values have the Go type named by the
// kind. Integers are parsed with base prefixes, as by strconv.ParseInt with
// base 0.
func (k Kind) Converter() Converter {
	switch k {
	case KindString:
		return StringConverter
	case KindInt:
		return IntConverter(0)
	case KindInt8:
		return IntConverter(8)
	case KindInt16:
		return IntConverter(16)
	case KindInt32:
		return IntConverter(32)
	case KindInt64:
		return IntConverter(64)
	case KindUint:
		return UintConverter(0)
	case KindUint8:
		return UintConverter(8)
	case KindUint16:
		return UintConverter(16)
	case KindUint32:
		return UintConverter(32)
	case KindUint64:
		return UintConverter(64)
	case KindFloat32:
		return FloatConverter(32)
	case KindFloat64:
		return FloatConverter(64)
	case KindDuration:
		return DurationConverter
	}
	return nil
}

// StringConverter returns the value unchanged.
func StringConverter(value string) (any, error) {
	return value, nil
}

// DurationConverter converts a value with time.ParseDuration.
func DurationConverter(value string) (any, error) {
	return time.ParseDuration(value)
}

// IntConverter returns a converter of signed integers of bitSize bits (0 for
// int). The type of converted values is int, int8, int16, int32 or int64.
func IntConverter(bitSize int) Converter {
	return func(value string) (any, error) {
		i, err := strconv.ParseInt(value, 0, bitSize)
		if err != nil {
			return nil, err
		}
		switch bitSize {
		case 8:
			return int8(i), nil
		case 16:
			return int16(i), nil
		case 32:
			return int32(i), nil
		case 64:
			return i, nil
		}
		return int(i), nil
	}
}

// UintConverter returns a converter of unsigned integers of bitSize bits (0
// for uint). The type of converted values is uint, uint8, uint16, uint32 or
// uint64.
func UintConverter(bitSize int) Converter {
	return func(value string) (any, error) {
		u, err := strconv.ParseUint(value, 0, bitSize)
		if err != nil {
			return nil, err
		}
		switch bitSize {
		case 8:
			return uint8(u), nil
		case 16:
			return uint16(u), nil
		case 32:
			return uint32(u), nil
		case 64:
			return u, nil
		}
		return uint(u), nil
	}
}

// FloatConverter returns a converter of floating point numbers of bitSize
// bits, 32 or 64. The type of converted values is float32 or float64.
func FloatConverter(bitSize int) Converter {
	return func(value string) (any, error) {
		f, err := strconv.ParseFloat(value, bitSize)
		if err != nil {
			return nil, err
		}
		if bitSize == 32 {
			return float32(f), nil
		}
		return f, nil
	}
}
