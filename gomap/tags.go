package gomap

import (
	"reflect"
	"strings"
)

// field is how a struct field maps onto a node, from its `bml` tag:
//
//	Host  string   `bml:"host"`
//	Ports []int    `bml:"port"`
//	Desc  string   `bml:",data"`
//	Notes []string `bml:",lines"`
//	Skip  int      `bml:"-"`
//
// Without a tag the lower cased field name is used.
type field struct {
	name  string
	data  bool
	lines bool
}

func fieldOf(f reflect.StructField) (field, bool) {
	if !f.IsExported() {
		return field{}, false
	}
	tag, ok := f.Tag.Lookup("bml")
	if tag == "-" {
		return field{}, false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if !ok || name == "" {
		name = strings.ToLower(f.Name)
	}
	res := field{name: name}
	for _, o := range strings.Split(opts, ",") {
		switch o {
		case "data":
			res.data = true
		case "lines":
			res.lines = true
		}
	}
	return res, true
}
