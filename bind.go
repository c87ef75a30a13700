package cliargs

import (
	"fmt"
	"reflect"
	"time"
)

// ParseFields makes option configurations from fields, parses argv with them
// and assigns option values to the targets of the fields. If the fields are
// invalid, the command is empty and the error is the configuration error.
// Otherwise the error is the first parsing error, or if there is none, the
// first FailToBindField error.
//
// A target is a pointer to a variable whose type agrees with the kind of the
// field: a scalar, a slice of scalars for a sequence, or a pointer to a
// scalar, allocated when the option is present. Targets of absent options
// keep their value.
func ParseFields(argv []string, fields []Field) Result {
	cfgs, err := MakeOptCfgs(fields)
	if err != nil {
		return invalid(nil, err)
	}
	r := ParseWith(argv, cfgs)
	bindFields(&r, fields)
	return r
}

// ParseFieldsUntilSubCmd is like ParseFields but stops at the first
// positional argument, which is taken as the name of a sub-command.
func ParseFieldsUntilSubCmd(argv []string, fields []Field) (Result, *SubCmd) {
	cfgs, err := MakeOptCfgs(fields)
	if err != nil {
		return invalid(nil, err), nil
	}
	r, sub := ParseUntilSubCmdWith(argv, cfgs)
	bindFields(&r, fields)
	return r, sub
}

// ParseFields parses the sub-command like the function ParseFields.
func (s *SubCmd) ParseFields(fields []Field) Result {
	cfgs, err := MakeOptCfgs(fields)
	if err != nil {
		return invalid(nil, err)
	}
	r := s.ParseWith(cfgs)
	bindFields(&r, fields)
	return r
}

// ParseFieldsUntilSubCmd parses the sub-command like the function
// ParseFieldsUntilSubCmd.
func (s *SubCmd) ParseFieldsUntilSubCmd(fields []Field) (Result, *SubCmd) {
	cfgs, err := MakeOptCfgs(fields)
	if err != nil {
		return invalid(nil, err), nil
	}
	r, sub := s.ParseUntilSubCmdWith(cfgs)
	bindFields(&r, fields)
	return r, sub
}

// FieldFor returns a field for target, with a kind agreeing with the type of
// the variable target points to. The kind is KindInvalid if the type is not
// supported.
func FieldFor(name string, target any, meta string) Field {
	kind, seq := kindOf(target)
	return Field{Name: name, Kind: kind, Seq: seq, Meta: meta, Target: target}
}

// helpers

// bindFields assigns values to field targets. cfgs in r agree with fields.
func bindFields(r *Result, fields []Field) {
	for i, f := range fields {
		if f.Target == nil {
			continue
		}
		key := r.OptCfgs[i].key()
		values, ok := r.Cmd.Opts[key]
		if !ok {
			continue
		}
		if err := bind(f, values); err != nil && r.err == nil {
			r.err = FailToBindField{Field: f.Name, StoreKey: key, Err: err}
		}
	}
}

// bind assigns values to the target of f.
func bind(f Field, values []any) error {
	if p := reflect.ValueOf(f.Target); p.Kind() != reflect.Ptr || p.IsNil() {
		return fmt.Errorf("target is not a valid pointer")
	}
	v := reflValue(f.Target)
	if f.Kind == KindBool {
		// presence
		return assign(true, v)
	}
	if v.Kind() == reflect.Slice {
		s := reflect.MakeSlice(v.Type(), len(values), len(values))
		for i, value := range values {
			if err := assign(value, s.Index(i)); err != nil {
				return fmt.Errorf("value at offset %d: %v", i, err)
			}
		}
		v.Set(s)
		return nil
	}
	if len(values) == 0 {
		return nil
	}
	// if more values than one, the last wins
	return assign(values[len(values)-1], v)
}

// assign assigns value to v, allocating v if it is a nil pointer.
func assign(value any, v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		v = v.Elem()
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return fmt.Errorf("no value")
	}
	if rv.Kind() != v.Kind() || !rv.Type().ConvertibleTo(v.Type()) {
		return fmt.Errorf("%v value cannot be assigned to %v", rv.Type(), v.Type())
	}
	v.Set(rv.Convert(v.Type()))
	return nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// kindOf returns the kind of the variable target points to and whether it is
// a sequence.
func kindOf(target any) (Kind, bool) {
	if p := reflect.ValueOf(target); p.Kind() != reflect.Ptr || p.IsNil() {
		return KindInvalid, false
	}
	t := reflValue(target).Type()
	seq := false
	if t.Kind() == reflect.Slice {
		t, seq = t.Elem(), true
	}
	if t.Kind() == reflect.Ptr && !seq {
		t = t.Elem()
	}
	if t == durationType {
		return KindDuration, seq
	}
	switch t.Kind() {
	case reflect.String:
		return KindString, seq
	case reflect.Bool:
		if seq {
			return KindInvalid, seq
		}
		return KindBool, seq
	case reflect.Int:
		return KindInt, seq
	case reflect.Int8:
		return KindInt8, seq
	case reflect.Int16:
		return KindInt16, seq
	case reflect.Int32:
		return KindInt32, seq
	case reflect.Int64:
		return KindInt64, seq
	case reflect.Uint:
		return KindUint, seq
	case reflect.Uint8:
		return KindUint8, seq
	case reflect.Uint16:
		return KindUint16, seq
	case reflect.Uint32:
		return KindUint32, seq
	case reflect.Uint64:
		return KindUint64, seq
	case reflect.Float32:
		return KindFloat32, seq
	case reflect.Float64:
		return KindFloat64, seq
	}
	return KindInvalid, seq
}

// reflValue returns the value of target using reflection
func reflValue(target any) reflect.Value {
	return reflect.Indirect(reflect.ValueOf(target))
}
