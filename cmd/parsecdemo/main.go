// Command parsecdemo is a manual smoke-test for the parsec package:
// flag-parsed, prints its findings to stdout, and exits. It is not part of
// the library's contract.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/wbrookfield/parsec/examples"
)

var (
	grammar = flag.String("grammar", "arithmetic", "which example grammar to run: arithmetic or keyvalue")
	input   = flag.String("input", "", "the text to parse")
)

func main() {
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "parsecdemo: -input is required")
		os.Exit(2)
	}

	switch *grammar {
	case "arithmetic":
		runArithmetic(*input)
	case "keyvalue":
		runKeyValue(*input)
	default:
		fmt.Fprintf(os.Stderr, "parsecdemo: unknown grammar %q (want arithmetic or keyvalue)\n", *grammar)
		os.Exit(2)
	}
}

func runArithmetic(input string) {
	r := examples.Arithmetic().Run(input)
	if r.IsFail() {
		fmt.Println("parse failed")
		fmt.Println("expected:", r.Expected())
		fmt.Println("got:", r.Got())
		os.Exit(1)
	}
	fmt.Println("result:", r.Output())
	if rem := r.Remainder(); rem != "" {
		fmt.Println("unconsumed input:", rem)
	}
}

func runKeyValue(input string) {
	r := examples.KeyValueConfig().Run(input)
	if r.IsFail() {
		fmt.Println("parse failed")
		fmt.Println("expected:", r.Expected())
		fmt.Println("got:", r.Got())
		os.Exit(1)
	}
	for _, entry := range r.Output() {
		fmt.Printf("%s = %s\n", entry.Key, entry.Value)
	}
	if rem := r.Remainder(); rem != "" {
		fmt.Println("unconsumed input:", rem)
	}
}
