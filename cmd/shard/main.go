// Command shard renders JSON view descriptors with the headless view factory.
//
// Usage:
//
//	shard render <source>         Build, measure and print a view tree
//	shard kind <source>           Print the root kind of a descriptor
//	shard check <source...>       Build and measure many descriptors
//	shard version                 Print version information
//
// A source is a file path, "-" for stdin, or an http(s) URL.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
