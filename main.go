package main

import (
	"context"
	"io"
	"log"
	"os"
)

func init() {
	// Diagnostics are only printed with --debug.
	log.SetOutput(io.Discard)
	log.SetFlags(0)
	log.SetPrefix("head: ")
}

func main() {
	os.Exit(root(context.Background(), os.Args[1:]...))
}
