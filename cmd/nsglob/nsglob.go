// The nsglob command searches the local filesystem for paths matching a
// glob pattern.
//
// Example:
//
//	$ nsglob '**/*_test.go'
//	fnmatch_test.go
//	fs_test.go
//	glob_test.go
//	ungroup_test.go
//
// Make sure to quote the pattern as necessary for your shell, otherwise
// the shell will expand the pattern itself.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/globdev/nsglob"
)

var (
	dotMatch  = flag.Bool("a", false, "match names beginning with a dot")
	caseMatch = flag.Bool("c", false, "match case-sensitively")
	trace     = flag.Bool("v", false, "write traversal trace logs to stderr")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-a] [-c] [-v] pattern\n", os.Args[0])
		os.Exit(1)
	}

	flags := nsglob.DefaultFlags
	if *dotMatch {
		flags |= nsglob.DotMatch
	}
	if *caseMatch {
		flags &^= nsglob.IgnoreCase
	}

	opts := []nsglob.Option{nsglob.WithFlags(flags)}
	if *trace {
		opts = append(opts, nsglob.WithTraceLogs(os.Stderr))
	}

	n := 0
	for path := range nsglob.GlobLocal(flag.Arg(0), opts...) {
		fmt.Println(path)
		n++
	}
	if n == 0 {
		os.Exit(1)
	}
}
