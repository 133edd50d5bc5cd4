package main_test

import (
	"strings"
	"testing"

	"github.com/stealthrocket/head/internal/assert"
)

var bytes = tests{
	"the number of bytes is set with the short option": func(t *testing.T) {
		stdout, stderr, exitCode := head(t, "hello world", "-c", "5")
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, "hello")
		assert.Equal(t, stderr, "")
	},

	"the number of bytes is set with the long option": func(t *testing.T) {
		stdout, _, exitCode := head(t, "hello world", "--bytes", "7")
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, "hello w")
	},

	"newlines are copied like any other byte": func(t *testing.T) {
		stdout, _, exitCode := head(t, "a\nb\nc\n", "-c", "4")
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, "a\nb\n")
	},

	"fewer bytes than requested are all printed": func(t *testing.T) {
		stdout, stderr, exitCode := head(t, "hello", "-c", "18446744073709551615")
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, "hello")
		assert.Equal(t, stderr, "")
	},

	"large counts are copied in chunks": func(t *testing.T) {
		input := strings.Repeat("0123456789abcdef", 4096)
		stdout, _, exitCode := head(t, input, "-c", "50000")
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, input[:50000])
	},

	"a count of zero bytes is rejected": func(t *testing.T) {
		stdout, stderr, exitCode := head(t, "hello", "-c", "0")
		assert.Equal(t, exitCode, 2)
		assert.Equal(t, stdout, "")
		assert.Equal(t, stderr, "head: invalid value \"0\" for flag -c: count must be greater than zero\n")
	},

	"the byte count takes precedence over the default line count": func(t *testing.T) {
		stdout, _, exitCode := head(t, numberedLines(20), "-c", "14")
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, "line 1\nline 2\n")
	},
}
