package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Config of a stress run. Keys of the TOML file match the flag names with
// dashes replaced by underscores.
type Config struct {
	Seed       uint64 `toml:"seed"`
	Size       uint32 `toml:"size"`
	Ops        int    `toml:"ops"`
	CheckEvery int    `toml:"check_every"`
	Euler      bool   `toml:"euler"`
	LogLevel   string `toml:"log_level"`
}

func defaultConfig() Config {
	return Config{Seed: 1, Size: 1000, Ops: 100000, CheckEvery: 1000, LogLevel: "info"}
}

var errBadConfig = errors.New("bad config")

func (c Config) validate() error {
	switch {
	case c.Size == 0:
		return fmt.Errorf("%w: size must be positive", errBadConfig)
	case c.Ops < 0:
		return fmt.Errorf("%w: ops must not be negative", errBadConfig)
	case c.CheckEvery <= 0:
		return fmt.Errorf("%w: check_every must be positive", errBadConfig)
	}
	return nil
}

// loadConfig reads the file at path, if any, over the defaults.
func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("reading %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return c, fmt.Errorf("%w: unknown keys in %s: %s", errBadConfig, path, strings.Join(keys, ", "))
	}
	return c, nil
}

// flags are the command line options; the ones set explicitly override the
// config file.
type flags struct {
	fs     *pflag.FlagSet
	config string
	c      Config
}

func newFlags(name string) *flags {
	f := &flags{fs: pflag.NewFlagSet(name, pflag.ContinueOnError)}
	d := defaultConfig()
	f.fs.StringVar(&f.config, "config", "", "TOML file with the run configuration")
	f.fs.Uint64Var(&f.c.Seed, "seed", d.Seed, "seed of the priorities and of the generated operations")
	f.fs.Uint32Var(&f.c.Size, "size", d.Size, "number of elements, or vertices with --euler")
	f.fs.IntVar(&f.c.Ops, "ops", d.Ops, "number of random operations")
	f.fs.IntVar(&f.c.CheckEvery, "check-every", d.CheckEvery, "operations between two full structure checks")
	f.fs.BoolVar(&f.c.Euler, "euler", d.Euler, "stress the Euler tour treap instead of the implicit treap")
	f.fs.StringVar(&f.c.LogLevel, "log-level", d.LogLevel, "logrus level: debug, info, warn, error")
	return f
}

// parse args and resolve the final Config.
func (f *flags) parse(args []string) (Config, error) {
	if err := f.fs.Parse(args); err != nil {
		return Config{}, err
	}
	c, err := loadConfig(f.config)
	if err != nil {
		return c, err
	}
	if f.fs.Changed("seed") {
		c.Seed = f.c.Seed
	}
	if f.fs.Changed("size") {
		c.Size = f.c.Size
	}
	if f.fs.Changed("ops") {
		c.Ops = f.c.Ops
	}
	if f.fs.Changed("check-every") {
		c.CheckEvery = f.c.CheckEvery
	}
	if f.fs.Changed("euler") {
		c.Euler = f.c.Euler
	}
	if f.fs.Changed("log-level") {
		c.LogLevel = f.c.LogLevel
	}
	return c, c.validate()
}
