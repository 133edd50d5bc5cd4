package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/stealthrocket/head/internal/head"
	"github.com/stealthrocket/head/internal/print/human"
)

type options struct {
	file       string
	stop       head.Stop
	emitter    *head.Emitter
	decompress head.Compression
	verbose    bool
}

func run(ctx context.Context, opts options) error {
	input, err := head.Open(opts.file, opts.decompress)
	if err != nil {
		var readError *head.ReadError
		if errors.As(err, &readError) {
			return fmt.Errorf("%s: %w", inputName(opts.file), err)
		}
		return err
	}
	defer input.Close()

	log.Printf("copying %s of %s (decompress: %s, buffer size: %v)",
		opts.stop, input.Name, opts.decompress, human.Bytes(opts.emitter.BufferSize))

	if opts.verbose {
		fmt.Printf("==> %s <==\n", input.Name)
	}

	n, err := opts.emitter.Copy(os.Stdout, input, opts.stop)
	log.Printf("copied %v from %s", human.Bytes(n), input.Name)
	if err != nil {
		return fmt.Errorf("%s: %w", input.Name, err)
	}
	return nil
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return head.StdinName
	}
	return path
}
