package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jumboframes/gstree/loader"
	"github.com/jumboframes/gstree/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), conf)
	assert.Equal(t, loader.FormatLines, conf.Load.LoaderFormat())
	assert.Equal(t, log.LevelInfo, conf.Log.LogLevel())
	assert.Equal(t, time.Second, time.Duration(conf.Load.ProgressInterval))
}

func TestParse(t *testing.T) {
	conf, err := Parse(`
[load]
input = "words.tsv"
format = "tabbed"
skip-empty = true
compute-count = false
progress-interval = "250ms"

[tree]
capacity = 1024

[dot]
name = "words"

[log]
level = "DEBUG"
`)
	require.NoError(t, err)
	assert.Equal(t, "words.tsv", conf.Load.Input)
	assert.Equal(t, loader.FormatTabbed, conf.Load.LoaderFormat())
	assert.True(t, conf.Load.SkipEmpty)
	assert.False(t, conf.Load.ComputeCount)
	assert.Equal(t, 250*time.Millisecond, time.Duration(conf.Load.ProgressInterval))
	assert.Equal(t, 1024, conf.Tree.Capacity)
	assert.True(t, conf.Tree.StaleWarning)
	assert.Equal(t, "words", conf.Dot.Name)
	assert.Equal(t, log.LevelDebug, conf.Log.LogLevel())
}

func TestValidate(t *testing.T) {
	cases := []string{
		"[load]\nformat = \"csv\"",
		"[load]\nprogress-interval = \"-1s\"",
		"[tree]\ncapacity = -1",
		"[dot]\nname = \"\"",
		"[log]\nlevel = \"loud\"",
	}
	for _, text := range cases {
		_, err := Parse(text)
		assert.True(t, errors.Is(err, ErrInvalid), text)
	}

	_, err := Parse("[load]\nprogress-interval = \"soon\"")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestLoadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "gstree.toml")
	require.NoError(t, os.WriteFile(name, []byte("[dot]\nname = \"graph\"\nunknown = 1\n"), 0644))

	conf, err := Load(name)
	require.NoError(t, err)
	assert.Equal(t, "graph", conf.Dot.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
