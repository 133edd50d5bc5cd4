package main_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stealthrocket/head/internal/assert"
)

func gzipText(t *testing.T, s string) []byte {
	t.Helper()
	buf := new(strings.Builder)
	w := gzip.NewWriter(buf)
	_, err := w.Write([]byte(s))
	assert.OK(t, err)
	assert.OK(t, w.Close())
	return []byte(buf.String())
}

var input = tests{
	"the input is read from a file": func(t *testing.T) {
		path := writeFile(t, "input.txt", []byte(text))
		stdout, stderr, exitCode := head(t, "ignored\n", "-n", "1", path)
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, strings.SplitAfter(text, "\n")[0])
		assert.Equal(t, stderr, "")
	},

	"options may follow the file": func(t *testing.T) {
		path := writeFile(t, "input.txt", []byte(text))
		stdout, _, exitCode := head(t, "", path, "-c", "5")
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, "Lorem")
	},

	"a dash reads the standard input": func(t *testing.T) {
		stdout, _, exitCode := head(t, "alpha\nbeta\n", "-", "-n", "1")
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, "alpha\n")
	},

	"a double dash ends the options": func(t *testing.T) {
		path := writeFile(t, "input.txt", []byte(text))
		stdout, _, exitCode := head(t, "", "-c", "5", "--", path)
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, "Lorem")
	},

	"a file which does not exist causes an error": func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.txt")
		stdout, stderr, exitCode := head(t, "alpha\n", path)
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stdout, "")
		assert.Equal(t, stderr, "ERR: head: open "+path+": no such file or directory\n")
	},

	"a read error fails after printing the output": func(t *testing.T) {
		dir := t.TempDir()
		stdout, stderr, exitCode := head(t, "", dir)
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stdout, "")
		assert.HasPrefix(t, stderr, "ERR: head: "+dir+": read: ")
	},

	"the verbose header names the file": func(t *testing.T) {
		path := writeFile(t, "input.txt", []byte("alpha\nbeta\n"))
		stdout, _, exitCode := head(t, "", "-v", "-n", "1", path)
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, "==> "+path+" <==\nalpha\n")
	},

	"the verbose header names the standard input": func(t *testing.T) {
		stdout, _, exitCode := head(t, "alpha\n", "--verbose")
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, "==> standard input <==\nalpha\n")
	},

	"gzip input is decompressed": func(t *testing.T) {
		path := writeFile(t, "input.txt.gz", gzipText(t, text))
		stdout, _, exitCode := head(t, "", "--decompress", "gzip", "-n", "2", path)
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, strings.Join(strings.SplitAfter(text, "\n")[:2], ""))
	},

	"compression is detected automatically": func(t *testing.T) {
		path := writeFile(t, "input.gz", gzipText(t, text))
		stdout, _, exitCode := head(t, "", "--decompress=auto", "-c", "11", path)
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, "Lorem ipsum")
	},

	"automatic detection passes plain text through": func(t *testing.T) {
		stdout, _, exitCode := head(t, "plain\ntext\n", "--decompress=auto", "-n", "1")
		assert.Equal(t, exitCode, 0)
		assert.Output(t, stdout, "plain\n")
	},

	"input which is not gzip causes an error": func(t *testing.T) {
		stdout, stderr, exitCode := head(t, "plain text\n", "--decompress", "gzip")
		assert.Equal(t, exitCode, 1)
		assert.Equal(t, stdout, "")
		assert.HasPrefix(t, stderr, "ERR: head: standard input: read: gzip: ")
	},
}
