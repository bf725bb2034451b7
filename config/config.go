/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package config

import (
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/jumboframes/gstree/loader"
	"github.com/jumboframes/gstree/log"
	"github.com/pkg/errors"
)

var ErrInvalid = errors.New("invalid config")

// Duration decodes TOML strings like "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

type Config struct {
	Load LoadSettings `toml:"load"`
	Tree TreeSettings `toml:"tree"`
	Dot  DotSettings  `toml:"dot"`
	Log  LogSettings  `toml:"log"`
}

type LoadSettings struct {
	Input            string
	Format           string
	SkipEmpty        bool     `toml:"skip-empty"`
	ComputeCount     bool     `toml:"compute-count"`
	ProgressInterval Duration `toml:"progress-interval"`
}

func (ls LoadSettings) LoaderFormat() loader.Format {
	if ls.Format == "tabbed" {
		return loader.FormatTabbed
	}
	return loader.FormatLines
}

type TreeSettings struct {
	Capacity     int
	StaleWarning bool `toml:"stale-warning"`
}

type DotSettings struct {
	Name string
}

type LogSettings struct {
	Level string
}

var levels = map[string]log.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

// LogLevel returns the least severe level to print.
func (ls LogSettings) LogLevel() log.Level {
	return levels[strings.ToLower(ls.Level)]
}

func Default() *Config {
	return &Config{
		Load: LoadSettings{
			Format:           "lines",
			ComputeCount:     true,
			ProgressInterval: Duration(time.Second),
		},
		Tree: TreeSettings{
			StaleWarning: true,
		},
		Dot: DotSettings{
			Name: "out",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load reads a TOML file over the defaults, an empty name yields the
// defaults.
func Load(name string) (*Config, error) {
	conf := Default()
	if name != "" {
		md, err := toml.DecodeFile(name, conf)
		if err != nil {
			return nil, errors.Wrapf(err, "decode config %s", name)
		}
		if undecoded := md.Undecoded(); len(undecoded) != 0 {
			log.Warnf("config %s has unknown keys: %v", name, undecoded)
		}
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (*Config, error) {
	conf := Default()
	if _, err := toml.Decode(text, conf); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (conf *Config) Validate() error {
	switch conf.Load.Format {
	case "lines", "tabbed":
	default:
		return errors.Wrapf(ErrInvalid, "load.format %q", conf.Load.Format)
	}
	if conf.Load.ProgressInterval < 0 {
		return errors.Wrap(ErrInvalid, "load.progress-interval is negative")
	}
	if conf.Tree.Capacity < 0 {
		return errors.Wrap(ErrInvalid, "tree.capacity is negative")
	}
	if conf.Dot.Name == "" {
		return errors.Wrap(ErrInvalid, "dot.name is empty")
	}
	if _, ok := levels[strings.ToLower(conf.Log.Level)]; !ok {
		return errors.Wrapf(ErrInvalid, "log.level %q", conf.Log.Level)
	}
	return nil
}
