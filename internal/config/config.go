// Package config resolves btree settings from defaults, .env files and the
// process environment. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Environment keys.
const (
	KeyFile      = "BTREE_FILE"
	KeySkipDeep  = "BTREE_SKIP_DEEP"
	KeyMaxLeaves = "BTREE_MAX_LEAVES"
	KeySeed      = "BTREE_SEED"
	KeyCharset   = "BTREE_CHARSET"
	KeyLog       = "BTREE_LOG"
	KeyLogDir    = "BTREE_LOG_DIR"
)

// Defaults.
const (
	DefaultFile     = "btree.bt"
	DefaultSkipDeep = 6
	DefaultCharset  = "utf-8"
)

// DefaultEnvFiles are read in order; a later file overrides an earlier one.
var DefaultEnvFiles = []string{".env", ".env.local"}

// ErrInvalidValue is returned when a key holds a value of the wrong shape.
var ErrInvalidValue = errors.New("config: invalid value")

// Config is the resolved btree configuration.
type Config struct {
	File      string // tree file loaded and saved by `btree run`
	SkipDeep  int    // console depth ceiling, -1 disables it
	MaxLeaves int    // node count for generation, 0 means ask
	Seed      int64  // RNG seed for generated values
	HasSeed   bool   // Seed was set explicitly
	Charset   string // text encoding of the tree file
	LogLevel  string // "" disables logging
	LogDir    string // log directory, "" for the default
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		File:     DefaultFile,
		SkipDeep: DefaultSkipDeep,
		Charset:  DefaultCharset,
	}
}

// LookupFunc reads one environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load resolves defaults, then every existing env file on fs (files
// defaults to DefaultEnvFiles), then lookup (os.LookupEnv when nil).
func Load(fs afero.Fs, lookup LookupFunc, files ...string) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if len(files) == 0 {
		files = DefaultEnvFiles
	}

	fileVars, err := ReadEnvFiles(fs, files...)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()
	get := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
	if err = cfg.apply(get); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadEnvFiles parses the given env files that exist on fs into one map.
// Files are merged in order, the last definition of a variable wins.
func ReadEnvFiles(fs afero.Fs, files ...string) (map[string]string, error) {
	found := lo.Filter(files, func(path string, _ int) bool {
		ok, err := afero.Exists(fs, path)
		if err != nil || !ok {
			return false
		}
		dir, err := afero.IsDir(fs, path)
		return err == nil && !dir
	})

	envMap := map[string]string{}
	for _, path := range found {
		f, err := fs.Open(path)
		if err != nil {
			return nil, err
		}
		vars, err := godotenv.Parse(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		envMap = lo.Assign(envMap, vars)
	}
	return envMap, nil
}

// apply overlays every key that get reports as set.
func (c *Config) apply(get func(string) (string, bool)) error {
	if v, ok := get(KeyFile); ok && v != "" {
		c.File = v
	}
	if v, ok := get(KeyCharset); ok && v != "" {
		c.Charset = strings.ToLower(v)
	}
	if v, ok := get(KeyLog); ok {
		c.LogLevel = v
	}
	if v, ok := get(KeyLogDir); ok {
		c.LogDir = v
	}
	if v, ok := get(KeySkipDeep); ok {
		n, err := atoi(KeySkipDeep, v)
		if err != nil {
			return err
		}
		if n < -1 {
			return fmt.Errorf("%w: %s=%d, want ≥ -1", ErrInvalidValue, KeySkipDeep, n)
		}
		c.SkipDeep = n
	}
	if v, ok := get(KeyMaxLeaves); ok {
		n, err := atoi(KeyMaxLeaves, v)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%w: %s=%d, want ≥ 0", ErrInvalidValue, KeyMaxLeaves, n)
		}
		c.MaxLeaves = n
	}
	if v, ok := get(KeySeed); ok {
		s, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, KeySeed, v, err)
		}
		c.Seed, c.HasSeed = s, true
	}
	return nil
}

func atoi(key, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, key, v, err)
	}
	return n, nil
}
