/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package sigaction

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jumboframes/gstree/log"
)

var (
	ReservedFiniSignals = []os.Signal{
		os.Interrupt,
		syscall.SIGTERM,
	}
)

// Notifier is told about non terminating signals, the loader reports its
// progress this way.
type Notifier interface {
	Notify(os.Signal)
}

type SignalOption func(*Signal)

// OptionSignalCancel cancels a running load on the first fini signal.
func OptionSignalCancel(cancel context.CancelFunc) SignalOption {
	return func(sig *Signal) {
		sig.cancels = append(sig.cancels, cancel)
	}
}

type Signal struct {
	mu            sync.RWMutex
	sgCh          chan os.Signal
	cancels       []context.CancelFunc
	notifications map[os.Signal][]Notifier
}

func NewSignal(options ...SignalOption) *Signal {
	sig := &Signal{
		sgCh:          make(chan os.Signal, 1),
		cancels:       []context.CancelFunc{},
		notifications: make(map[os.Signal][]Notifier),
	}
	for _, option := range options {
		option(sig)
	}
	signal.Notify(sig.sgCh, ReservedFiniSignals...)
	return sig
}

// Add registers notifiers for sg, fini signals can't be overridden.
func (sig *Signal) Add(sg os.Signal, nts ...Notifier) {
	sig.mu.Lock()
	defer sig.mu.Unlock()

	if isFini(sg) {
		return
	}
	sig.notifications[sg] = append(sig.notifications[sg], nts...)
	signal.Notify(sig.sgCh, sg)
}

// Wait dispatches signals until a fini signal arrives or ctx is done. It
// returns the fini signal, nil if ctx ended the wait.
func (sig *Signal) Wait(ctx context.Context) os.Signal {
	for {
		select {
		case sg := <-sig.sgCh:
			log.Infof("got signal: %s", sg.String())
			if isFini(sg) {
				// only once, the next one is handled by the os
				sig.Stop()
				for _, cancel := range sig.cancels {
					cancel()
				}
				return sg
			}
			sig.mu.RLock()
			nts := sig.notifications[sg]
			sig.mu.RUnlock()
			for _, nt := range nts {
				nt.Notify(sg)
			}

		case <-ctx.Done():
			log.Debugf("signal wait done: %s", ctx.Err())
			return nil
		}
	}
}

// Stop restores default signal handling.
func (sig *Signal) Stop() {
	signal.Stop(sig.sgCh)
}

func isFini(sg os.Signal) bool {
	for _, reserved := range ReservedFiniSignals {
		if sg == reserved {
			return true
		}
	}
	return false
}
