// Package libdiff computes and prints line diffs of BML text, typically
// between a file and its canonical form.
package libdiff
