package sync

import (
	"sync"
	"sync/atomic"
)

// Once runs f at most once. Unlike sync.Once a caller that finds another
// goroutine inside Do returns immediately instead of waiting for it.
type Once struct {
	done uint32
	m    sync.Mutex
}

func (o *Once) Do(f func()) {
	if atomic.LoadUint32(&o.done) == 0 {
		o.doSlow(f)
	}
}

// Done reports whether f has already run.
func (o *Once) Done() bool {
	return atomic.LoadUint32(&o.done) == 1
}

// Reset arms the Once again, it waits for a running f to return.
func (o *Once) Reset() {
	o.m.Lock()
	defer o.m.Unlock()
	atomic.StoreUint32(&o.done, 0)
}

func (o *Once) doSlow(f func()) {
	// Add for waiting lock.
	ok := o.m.TryLock()
	if !ok {
		return
	}
	defer o.m.Unlock()
	if o.done == 0 {
		defer atomic.StoreUint32(&o.done, 1)
		f()
	}
}
