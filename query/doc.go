// Package query finds nodes in BML trees.
//
// # Paths
//
// A path is a slash separated list of child names. A name may carry an
// index selecting among children of the same name, counted from zero:
//
//	host, err := query.Get(doc.Root(), "server/proxy/host")
//	port, err := query.Get(doc.Root(), "server[1]/proxy/port")
//
// Attributes are children too, so a path can end at one.
//
// # Predicates
//
// Select walks a tree depth first and returns every node for which an
// expr-lang boolean expression holds. The expression sees an Env:
//
//	ms, err := query.Select(doc.Root(), `Name == "proxy" && Attrs.port == "8080"`)
//	ms, err := query.Select(doc.Root(), `Kind == "Element" && Child("service") == "true"`)
package query
