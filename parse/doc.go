// Package parse parses BML text into an ir.Document.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	server, _ := doc.First("server")
//	port, _ := server.First("port")
//	fmt.Println(port.Value())
//
// Syntax errors satisfy errors.Is(err, ErrParse) and carry a
// *token.TokenizeErr with the offending position. No partial tree is
// returned on error.
//
// # Options
//
//	positions := map[*ir.Node]*token.Pos{}
//	doc, err := parse.Parse(data, parse.ParsePositions(positions))
//
// ParseIndent records the indentation of the input on the document so it can
// be encoded the same way.
//
// # Related Packages
//
//   - github.com/bml-format/go-bml/ir - the tree
//   - github.com/bml-format/go-bml/encode - Encode a tree to text
//   - github.com/bml-format/go-bml/token - Tokenization
package parse
