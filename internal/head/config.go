package head

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/stealthrocket/head/internal/buffer"
	"github.com/stealthrocket/head/internal/print/human"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "~/.config/head/config.yaml"
	defaultLines      = 10
)

// ConfigPath is the path to the head configuration.
var ConfigPath human.Path = defaultConfigPath

// Config is the head configuration, holding the defaults of options which
// are not set on the command line.
type Config struct {
	Lines      uint64      `yaml:"lines"`
	BufferSize human.Bytes `yaml:"buffer-size"`
	Decompress Compression `yaml:"decompress"`
}

// DefaultConfig is the configuration used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		Lines:      defaultLines,
		BufferSize: buffer.DefaultSize,
		Decompress: Uncompressed,
	}
}

// LoadConfig opens and reads the configuration file.
func LoadConfig() (*Config, error) {
	r, path, err := OpenConfig()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	c, err := ReadConfig(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// OpenConfig opens the configuration file. If the file does not exist, the
// returned reader yields the default configuration.
func OpenConfig() (io.ReadCloser, string, error) {
	path, err := ConfigPath.Resolve()
	if err != nil {
		return nil, path, err
	}
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, path, err
		}
		b, _ := yaml.Marshal(DefaultConfig())
		return io.NopCloser(bytes.NewReader(b)), path, nil
	}
	return f, path, nil
}

// ReadConfig reads and parses configuration. Fields missing from r keep their
// default values.
func ReadConfig(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate returns an error if c holds values that head cannot run with, and
// normalizes the spelling of the compression format.
func (c *Config) Validate() error {
	if c.Lines == 0 {
		return fmt.Errorf("lines: %w", ErrZeroCount)
	}
	if c.BufferSize == 0 {
		return errors.New("buffer-size: must be greater than zero")
	}
	if c.BufferSize > maxBufferSize {
		return fmt.Errorf("buffer-size: must not exceed %v", maxBufferSize)
	}
	d, err := ParseCompression(string(c.Decompress))
	if err != nil {
		return fmt.Errorf("decompress: %w", err)
	}
	c.Decompress = d
	return nil
}

const maxBufferSize = 64 * human.MiB

// Emitter returns an emitter configured by c.
func (c *Config) Emitter() *Emitter {
	return &Emitter{BufferSize: int(c.BufferSize)}
}
