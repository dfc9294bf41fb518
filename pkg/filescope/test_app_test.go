package filescope

import (
	"sync"
	"sync/atomic"

	"github.com/rivo/tview"
)

// testApp is a synchronous App for tests. Queued updates run under a
// mutex; sync lets a test read browser state without racing them.
// Draw stays lock-free because the log pane calls it from within
// queued updates.
type testApp struct {
	mu      sync.Mutex
	focused tview.Primitive
	stopped bool
	draws   int32
}

func (a *testApp) QueueUpdateDraw(f func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if f != nil {
		f()
	}
}

func (a *testApp) sync(f func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	f()
}

func (a *testApp) SetFocus(p tview.Primitive) {
	a.focused = p
}

func (a *testApp) Draw() {
	atomic.AddInt32(&a.draws, 1)
}

func (a *testApp) Stop() {
	a.stopped = true
}
