// Package token turns BML text into nested productions.
//
// [Tokenize] scans the input line by line and then discovers the tree
// structure from indentation. Indentation is compared as whole strings
// on a stack rather than by counting characters, so tabs and spaces may be
// mixed as long as each level is used consistently.
//
// The result is a sequence of top level [RNode] pairs followed by one [REOI]
// pair. Each node pair holds its [RName], [RData] lines, [RAttr] attributes
// and nested [RNode] pairs in source order.
package token
