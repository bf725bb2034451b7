/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package loader

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jumboframes/gstree/log"
	"github.com/jumboframes/gstree/suffixtree"
	"github.com/pkg/errors"
	timer "github.com/singchia/go-timer/v2"
)

var (
	ErrCanceled  = errors.New("load canceled")
	ErrBadFormat = errors.New("bad line format")
)

// Format tells how a line maps to an identifier.
type Format int

const (
	// FormatLines uses the zero based line number as identifier.
	FormatLines Format = iota
	// FormatTabbed expects "<id>\t<word>" lines.
	FormatTabbed
)

// Progress is a snapshot of a running or finished load.
type Progress struct {
	Lines   uint64
	Loaded  uint64
	Skipped uint64
}

type LoaderOption func(*Loader)

// OptionLoaderProgress reports progress every interval while loading.
func OptionLoaderProgress(interval time.Duration, report func(Progress)) LoaderOption {
	return func(l *Loader) {
		l.interval = interval
		l.report = report
	}
}

func OptionLoaderTimer(tmr timer.Timer) LoaderOption {
	return func(l *Loader) {
		l.tmr = tmr
	}
}

func OptionLoaderFormat(format Format) LoaderOption {
	return func(l *Loader) {
		l.format = format
	}
}

// OptionLoaderSkipEmpty drops blank lines instead of inserting them at the root.
func OptionLoaderSkipEmpty() LoaderOption {
	return func(l *Loader) {
		l.skipEmpty = true
	}
}

// OptionLoaderComputeCount runs ComputeCount once everything is inserted.
func OptionLoaderComputeCount() LoaderOption {
	return func(l *Loader) {
		l.compute = true
	}
}

// Loader feeds word lists into a tree. A Loader is the tree's only writer
// while Load runs; Progress may be called from any goroutine.
type Loader struct {
	tree      suffixtree.Tree
	format    Format
	skipEmpty bool
	compute   bool

	interval time.Duration
	report   func(Progress)
	tmr      timer.Timer
	ownTmr   bool

	lines   uint64
	loaded  uint64
	skipped uint64
}

func NewLoader(tree suffixtree.Tree, options ...LoaderOption) *Loader {
	l := &Loader{
		tree:   tree,
		format: FormatLines,
	}
	for _, option := range options {
		option(l)
	}
	if l.report != nil && l.interval > 0 && l.tmr == nil {
		l.tmr = timer.NewTimer()
		l.ownTmr = true
	}
	return l
}

func (l *Loader) Progress() Progress {
	return Progress{
		Lines:   atomic.LoadUint64(&l.lines),
		Loaded:  atomic.LoadUint64(&l.loaded),
		Skipped: atomic.LoadUint64(&l.skipped),
	}
}

// Notify logs the current progress, it lets a Loader be registered on a
// user signal.
func (l *Loader) Notify(sg os.Signal) {
	p := l.Progress()
	log.Infof("signal %s, lines: %d, loaded: %d, skipped: %d",
		sg, p.Lines, p.Loaded, p.Skipped)
}

// LoadFile opens name and loads it, see Load.
func (l *Loader) LoadFile(ctx context.Context, name string) (Progress, error) {
	file, err := os.Open(name)
	if err != nil {
		return l.Progress(), errors.Wrapf(err, "open word list %s", name)
	}
	defer file.Close()
	return l.Load(ctx, file)
}

// Load inserts every line of r. It stops between two lines once ctx is done
// and returns ErrCanceled, the words inserted so far stay in the tree.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Progress, error) {
	if l.report != nil && l.interval > 0 {
		tick := l.tmr.Add(l.interval, timer.WithCyclically(),
			timer.WithHandler(func(*timer.Event) {
				l.report(l.Progress())
			}))
		defer tick.Cancel()
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			log.Warnf("load canceled after %d lines", atomic.LoadUint64(&l.lines))
			return l.Progress(), ErrCanceled
		default:
		}
		lineno := atomic.AddUint64(&l.lines, 1) - 1
		word, id, err := l.parse(scanner.Text(), lineno)
		if err != nil {
			return l.Progress(), errors.Wrapf(err, "line %d", lineno+1)
		}
		if word == "" && l.skipEmpty {
			atomic.AddUint64(&l.skipped, 1)
			continue
		}
		l.tree.Insert(word, id)
		atomic.AddUint64(&l.loaded, 1)
	}
	if err := scanner.Err(); err != nil {
		return l.Progress(), errors.Wrap(err, "read word list")
	}
	if l.compute {
		l.tree.ComputeCount()
	}
	p := l.Progress()
	log.Debugf("load done, lines: %d, loaded: %d, skipped: %d", p.Lines, p.Loaded, p.Skipped)
	return p, nil
}

// Close releases the progress timer if the Loader created it.
func (l *Loader) Close() {
	if l.ownTmr {
		l.tmr.Close()
	}
}

func (l *Loader) parse(line string, lineno uint64) (string, uint32, error) {
	line = strings.TrimSuffix(line, "\r")
	switch l.format {
	case FormatTabbed:
		if line == "" {
			return "", 0, ErrBadFormat
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return "", 0, ErrBadFormat
		}
		id, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return "", 0, errors.Wrap(ErrBadFormat, err.Error())
		}
		return parts[1], uint32(id), nil
	default:
		if lineno > uint64(^uint32(0)) {
			return "", 0, errors.Wrap(ErrBadFormat, "too many lines")
		}
		return line, uint32(lineno), nil
	}
}
