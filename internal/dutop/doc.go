// Package dutop provides parallel disk usage analysis.
//
// It walks a directory tree using fastwalk for parallel traversal,
// attributes the actual allocated size of every file to the immediate
// child of the root that contains it, counts hard-linked files once,
// and reports the largest consumers.
package dutop
