package schedule

import (
	"sync"
	"time"
)

// Loop is the wall-clock Scheduler. Each handle owns a goroutine with a
// ticker or timer, but callbacks are never run there: they are queued on
// C and must be run by the single goroutine that owns the gadgets.
type Loop struct {
	mu      sync.Mutex
	calls   chan func()
	handles map[*loopHandle]struct{}
	closed  bool
}

type loopHandle struct {
	loop     *Loop
	stopChan chan struct{}
	once     sync.Once

	// cancelled is only touched by the goroutine draining C.
	cancelled bool
}

func NewLoop() *Loop {
	return &Loop{
		calls:   make(chan func()),
		handles: make(map[*loopHandle]struct{}),
	}
}

// C delivers due callbacks. The receiver runs each one as it arrives.
func (l *Loop) C() <-chan func() {
	return l.calls
}

func (l *Loop) Now() time.Time {
	return time.Now()
}

func (l *Loop) Every(period time.Duration, fn Func) Handle {
	h := l.register()
	if h == nil {
		return noopHandle{}
	}

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-h.stopChan:
				return
			case <-ticker.C:
				if !h.deliver(fn) {
					return
				}
			}
		}
	}()

	return h
}

func (l *Loop) After(delay time.Duration, fn Func) Handle {
	h := l.register()
	if h == nil {
		return noopHandle{}
	}

	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-h.stopChan:
		case <-timer.C:
			h.deliver(fn)
			h.release()
		}
	}()

	return h
}

// Close cancels every outstanding handle. Later calls to Every and After
// return handles that never fire.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	handles := make([]*loopHandle, 0, len(l.handles))
	for h := range l.handles {
		handles = append(handles, h)
	}
	l.mu.Unlock()

	for _, h := range handles {
		h.release()
	}
}

func (l *Loop) register() *loopHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	h := &loopHandle{
		loop:     l,
		stopChan: make(chan struct{}),
	}
	l.handles[h] = struct{}{}
	return h
}

// deliver queues fn on the loop channel. It reports false once the handle
// has been stopped.
func (h *loopHandle) deliver(fn Func) bool {
	call := func() {
		if h.cancelled {
			return
		}
		fn(time.Now())
	}

	select {
	case <-h.stopChan:
		return false
	case h.loop.calls <- call:
		return true
	}
}

// Cancel must be called from the goroutine that drains C.
func (h *loopHandle) Cancel() {
	h.cancelled = true
	h.release()
}

func (h *loopHandle) release() {
	h.once.Do(func() {
		close(h.stopChan)

		h.loop.mu.Lock()
		delete(h.loop.handles, h)
		h.loop.mu.Unlock()
	})
}

type noopHandle struct{}

func (noopHandle) Cancel() {}
