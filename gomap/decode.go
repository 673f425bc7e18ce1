// Package gomap decodes BML trees into Go values.
//
// Leaf values are converted with strconv according to the destination kind.
// A bool destination for a node without data, such as a bare attribute
// name, is true. Struct fields select children by name; a slice field
// collects every child of its name in order.
package gomap

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/bml-format/go-bml/ir"
	"github.com/bml-format/go-bml/parse"
)

var ErrDecode = errors.New("cannot decode")

// IRFromer is implemented by types decoding themselves from a node.
type IRFromer interface {
	FromIR(*ir.Node) error
}

var (
	fromerType    = reflect.TypeFor[IRFromer]()
	unmarshalType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Load parses d and decodes the document into p, which must be a non-nil
// pointer.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	return FromIR(doc.Root(), p)
}

// FromIR decodes n into p, which must be a non-nil pointer.
func FromIR(n *ir.Node, p any) error {
	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("%w: into %T, need a non-nil pointer", ErrDecode, p)
	}
	return decode(n, v.Elem(), "")
}

func decode(n *ir.Node, v reflect.Value, path string) error {
	if v.CanAddr() {
		switch pv := v.Addr(); {
		case pv.Type().Implements(fromerType):
			return wrap(pv.Interface().(IRFromer).FromIR(n), path)
		case pv.Type().Implements(unmarshalType):
			s, _ := n.LookupValue()
			return wrap(pv.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)), path)
		}
	}
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return decode(n, v.Elem(), path)
	case reflect.Struct:
		return decodeStruct(n, v, path)
	case reflect.Map:
		return decodeMap(n, v, path)
	case reflect.Slice:
		return decodeLines(n.Lines(), v, path)
	case reflect.Interface:
		if v.Type().NumMethod() != 0 {
			return fmt.Errorf("%w: %s into %s", ErrDecode, path, v.Type())
		}
		if x := toAny(n); x != nil {
			v.Set(reflect.ValueOf(x))
		} else {
			v.SetZero()
		}
		return nil
	}
	s, ok := n.LookupValue()
	if !ok && v.Kind() == reflect.Bool {
		s = "true"
	}
	return wrap(setScalar(s, v), path)
}

func wrap(err error, path string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDecode) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "/" + name
}

func decodeStruct(n *ir.Node, v reflect.Value, path string) error {
	ty := v.Type()
	for i := range ty.NumField() {
		sf := ty.Field(i)
		f, ok := fieldOf(sf)
		if !ok {
			continue
		}
		fv := v.Field(i)
		switch {
		case f.data:
			s, _ := n.LookupValue()
			if err := wrap(setScalar(s, fv), path); err != nil {
				return err
			}
			continue
		case f.lines:
			if err := decodeLines(n.Lines(), fv, path); err != nil {
				return err
			}
			continue
		}
		named := n.Named(f.name)
		if len(named) == 0 {
			continue
		}
		p := join(path, f.name)
		if fv.Kind() == reflect.Slice && !reflect.PointerTo(fv.Type()).Implements(unmarshalType) {
			s := reflect.MakeSlice(fv.Type(), len(named), len(named))
			for j, c := range named {
				if err := decode(c, s.Index(j), p); err != nil {
					return err
				}
			}
			fv.Set(s)
			continue
		}
		if err := decode(named[0], fv, p); err != nil {
			return err
		}
	}
	return nil
}

// decodeMap sets one key per child name; later children of a name win.
func decodeMap(n *ir.Node, v reflect.Value, path string) error {
	if v.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("%w: %s into %s", ErrDecode, path, v.Type())
	}
	if v.IsNil() {
		v.Set(reflect.MakeMap(v.Type()))
	}
	for name, c := range n.All() {
		e := reflect.New(v.Type().Elem()).Elem()
		if err := decode(c, e, join(path, name)); err != nil {
			return err
		}
		v.SetMapIndex(reflect.ValueOf(name).Convert(v.Type().Key()), e)
	}
	return nil
}

func decodeLines(lines []string, v reflect.Value, path string) error {
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("%w: %s: lines into %s", ErrDecode, path, v.Type())
	}
	s := reflect.MakeSlice(v.Type(), len(lines), len(lines))
	for i, ln := range lines {
		if err := wrap(setScalar(ln, s.Index(i)), path); err != nil {
			return err
		}
	}
	v.Set(s)
	return nil
}

func setScalar(s string, v reflect.Value) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("%w: value into %s", ErrDecode, v.Type())
	}
	return nil
}

// toAny gives nil or a string for leaves and a map of names otherwise.
func toAny(n *ir.Node) any {
	if n.Len() == 0 {
		v, ok := n.LookupValue()
		if !ok {
			return nil
		}
		return v
	}
	m := map[string]any{}
	if v, ok := n.LookupValue(); ok {
		m[":"] = v
	}
	for name, c := range n.All() {
		m[name] = toAny(c)
	}
	return m
}
