// Package libdiff computes structural differences between Value trees.
//
// A diff is a list of Changes sorted by path. Maps are compared by key and
// arrays by index. Strings which share most of their text produce a Text
// change carrying character edits from github.com/sergi/go-diff.
package libdiff
