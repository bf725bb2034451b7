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
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	ch chan os.Signal
}

func (r *recorder) Notify(sg os.Signal) {
	r.ch <- sg
}

func TestSignal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &recorder{ch: make(chan os.Signal, 1)}
	sig := NewSignal(OptionSignalCancel(cancel))
	sig.Add(syscall.SIGUSR1, rec)
	sig.Add(syscall.SIGINT, rec)

	done := make(chan os.Signal, 1)
	go func() {
		done <- sig.Wait(context.Background())
	}()

	pid := os.Getpid()
	require.NoError(t, syscall.Kill(pid, syscall.SIGUSR1))
	select {
	case sg := <-rec.ch:
		assert.Equal(t, syscall.SIGUSR1, sg)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier not called")
	}

	require.NoError(t, syscall.Kill(pid, syscall.SIGINT))
	select {
	case sg := <-done:
		assert.Equal(t, os.Interrupt, sg)
	case <-time.After(2 * time.Second):
		t.Fatal("wait did not return")
	}
	assert.Error(t, ctx.Err())
	assert.Len(t, rec.ch, 0)
}

func TestSignalContextDone(t *testing.T) {
	sig := NewSignal()
	defer sig.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Nil(t, sig.Wait(ctx))
}
