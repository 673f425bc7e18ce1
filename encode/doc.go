// Package encode writes BML trees as canonical text.
//
// # Usage
//
//	doc, _ := parse.ParseString("server\n  proxy host=\"proxy.example.com\" port=8080\n")
//	err := encode.Encode(doc, os.Stdout)
//
//	// Four space indentation for one call, colored for a terminal
//	err = encode.Encode(doc, os.Stdout,
//	    encode.EncodeIndent("    ", 0),
//	    encode.EncodeColors(encode.NewColors()))
//
// # Output
//
// Top level elements are separated by one blank line. An element with no
// attributes and exactly one data line is written inline as "name: value";
// otherwise data lines follow the header as ":line", one level deeper.
// Attribute values keep their quoting unless a bare value would not parse
// back, in which case they are quoted.
//
// Encoding then parsing yields a tree Equal to the original. The text itself
// is canonical, not a copy of the input.
//
// # Related Packages
//
//   - github.com/bml-format/go-bml/ir - Tree representation
//   - github.com/bml-format/go-bml/parse - Parse text to a tree
package encode
