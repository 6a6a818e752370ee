// Package config loads zinc.toml, .env and ZINC_* environment overrides.
//
// Precedence, lowest first: built-in defaults, zinc.toml, environment
// (including variables from .env, which never replace variables already set).
// Command-line flags are applied on top by cmd/zn.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// FileName is the project file searched for from the working directory upward.
const FileName = "zinc.toml"

type Run struct {
	Runtime string   `toml:"runtime"`
	Cargo   string   `toml:"cargo"`
	Bin     string   `toml:"bin"`
	Args    []string `toml:"args"`
}

type Check struct {
	Jobs   int  `toml:"jobs"`
	Strict bool `toml:"strict"`
}

type Cache struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type Config struct {
	Run   Run   `toml:"run"`
	Check Check `toml:"check"`
	Cache Cache `toml:"cache"`
	Log   Log   `toml:"log"`

	// Path is the loaded zinc.toml, "" when none was found.
	Path string `toml:"-"`
	// Root is the directory relative paths resolve against.
	Root string `toml:"-"`
}

// Default returns the configuration used without zinc.toml.
func Default() Config {
	return Config{
		Run: Run{
			Runtime: filepath.Join("crates", "zinc_std"),
			Cargo:   "cargo",
			Bin:     "temp_runner",
		},
		Cache: Cache{Enabled: true},
		Log:   Log{Level: "warn", Format: "text"},
	}
}

// Find walks from startDir up to the filesystem root looking for zinc.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load builds the configuration for startDir. A non-empty explicit path must exist.
func Load(startDir, explicit string) (*Config, error) {
	cfg := Default()
	root, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	cfg.Root = root

	path := explicit
	if path == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return nil, err
		}
		if ok {
			path = found
		}
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(cfg.Root); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(cfg.Run.Runtime) {
		cfg.Run.Runtime = filepath.Join(cfg.Root, cfg.Run.Runtime)
	}
	return &cfg, nil
}

// decodeFile overlays the keys present in path; absent keys keep their defaults.
func (c *Config) decodeFile(path string) error {
	var file Config
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	set := func(dst any, src any, key ...string) {
		if !meta.IsDefined(key...) {
			return
		}
		switch d := dst.(type) {
		case *string:
			*d = strings.TrimSpace(src.(string))
		case *bool:
			*d = src.(bool)
		case *int:
			*d = src.(int)
		case *[]string:
			*d = src.([]string)
		}
	}
	set(&c.Run.Runtime, file.Run.Runtime, "run", "runtime")
	set(&c.Run.Cargo, file.Run.Cargo, "run", "cargo")
	set(&c.Run.Bin, file.Run.Bin, "run", "bin")
	set(&c.Run.Args, file.Run.Args, "run", "args")
	set(&c.Check.Jobs, file.Check.Jobs, "check", "jobs")
	set(&c.Check.Strict, file.Check.Strict, "check", "strict")
	set(&c.Cache.Enabled, file.Cache.Enabled, "cache", "enabled")
	set(&c.Cache.Dir, file.Cache.Dir, "cache", "dir")
	set(&c.Log.Level, file.Log.Level, "log", "level")
	set(&c.Log.Format, file.Log.Format, "log", "format")

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	c.Path = abs
	c.Root = filepath.Dir(abs)
	if c.Cache.Dir != "" && !filepath.IsAbs(c.Cache.Dir) {
		c.Cache.Dir = filepath.Join(c.Root, c.Cache.Dir)
	}
	return nil
}

func loadDotEnv(dir string) error {
	p := filepath.Join(dir, ".env")
	if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w", p, err)
	}
	return nil
}

// applyEnv reads ZINC_* variables through lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("ZINC_RUNTIME", &c.Run.Runtime)
	str("ZINC_CARGO", &c.Run.Cargo)
	str("ZINC_CACHE_DIR", &c.Cache.Dir)
	str("ZINC_LOG_LEVEL", &c.Log.Level)
	str("ZINC_LOG_FORMAT", &c.Log.Format)

	if v, ok := lookup("ZINC_NO_CACHE"); ok && Truthy(v) {
		c.Cache.Enabled = false
	}
	if v, ok := lookup("ZINC_STRICT"); ok && strings.TrimSpace(v) != "" {
		c.Check.Strict = Truthy(v)
	}
	if v, ok := lookup("ZINC_JOBS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ZINC_JOBS: %w", err)
		}
		c.Check.Jobs = n
	}
	return nil
}

// Truthy accepts 1, true, yes and on in any case.
func Truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
