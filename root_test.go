package main_test

import (
	"testing"

	"github.com/stealthrocket/head/internal/assert"
)

var root = tests{
	"show the head help with the short option": func(t *testing.T) {
		stdout, stderr, exitCode := head(t, "", "-h")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thead [options] [file]\n")
		assert.Equal(t, stderr, "")
	},

	"show the head help with the long option": func(t *testing.T) {
		stdout, stderr, exitCode := head(t, "", "--help")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thead [options] [file]\n")
		assert.Equal(t, stderr, "")
	},

	"the help is shown without reading the input": func(t *testing.T) {
		stdout, _, exitCode := head(t, "alpha\n", "-n", "1", "-h")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "Usage:\thead ")
	},

	"the version starts with the prefix head": func(t *testing.T) {
		stdout, stderr, exitCode := head(t, "", "--version")
		assert.Equal(t, exitCode, 0)
		assert.HasPrefix(t, stdout, "head ")
		assert.Equal(t, stderr, "")
	},

	"passing an unsupported flag causes an error": func(t *testing.T) {
		stdout, stderr, exitCode := head(t, "alpha\n", "-_")
		assert.Equal(t, exitCode, 2)
		assert.Equal(t, stdout, "")
		assert.Equal(t, stderr, "head: flag provided but not defined: -_\n")
	},

	"passing more than one file causes an error": func(t *testing.T) {
		stdout, stderr, exitCode := head(t, "", "a.txt", "b.txt")
		assert.Equal(t, exitCode, 2)
		assert.Equal(t, stdout, "")
		assert.Equal(t, stderr, "head: extra operand \"b.txt\", only one file can be read\n")
	},

	"line and byte counts are mutually exclusive": func(t *testing.T) {
		stdout, stderr, exitCode := head(t, "alpha\n", "-n", "1", "-c", "1")
		assert.Equal(t, exitCode, 2)
		assert.Equal(t, stdout, "")
		assert.Equal(t, stderr, "head: options -n and -c are mutually exclusive\n")
	},

	"an unsupported decompression format causes an error": func(t *testing.T) {
		stdout, stderr, exitCode := head(t, "alpha\n", "--decompress", "lzma")
		assert.Equal(t, exitCode, 2)
		assert.Equal(t, stdout, "")
		assert.HasPrefix(t, stderr, "head: invalid value \"lzma\" for flag -decompress: ")
	},

	"debug logs are written to stderr": func(t *testing.T) {
		stdout, stderr, exitCode := head(t, "alpha\nbeta\n", "--debug", "-n", "1")
		assert.Equal(t, exitCode, 0)
		assert.Equal(t, stdout, "alpha\n")
		assert.Contains(t, stderr, "head: copying 1 line of standard input")
		assert.Contains(t, stderr, "head: copied 6 from standard input")
	},
}
