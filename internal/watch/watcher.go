package watch

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Source names which store changed.
type Source string

const (
	SourceData    Source = "data"
	SourceSession Source = "session"
	SourceTheme   Source = "theme"
)

// ChangedMsg is a tea.Msg sent after a watched store changes.
type ChangedMsg struct {
	Source Source
}

// StoppedMsg is returned by Wait once the watcher has been stopped.
type StoppedMsg struct{}

// Watcher forwards store change callbacks to the Bubble Tea runtime.
// At most one change per source is pending at a time; a burst of
// mutations collapses into one reload.
type Watcher struct {
	mu      sync.Mutex
	pending map[Source]bool
	changes chan Source
	stopCh  chan struct{}
	cancels []func()
	stopped bool
}

// NewWatcher creates an idle watcher.
func NewWatcher() *Watcher {
	return &Watcher{
		pending: make(map[Source]bool),
		changes: make(chan Source, 8),
		stopCh:  make(chan struct{}),
	}
}

// Watch subscribes to s and labels its changes with src.
func (w *Watcher) Watch(src Source, s Subscribable) {
	cancel := s.Subscribe(func() { w.push(src) })

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		cancel()
		return
	}
	w.cancels = append(w.cancels, cancel)
}

func (w *Watcher) push(src Source) {
	w.mu.Lock()
	if w.stopped || w.pending[src] {
		w.mu.Unlock()
		return
	}
	w.pending[src] = true
	w.mu.Unlock()

	select {
	case w.changes <- src:
	case <-w.stopCh:
	}
}

// Wait returns a tea.Cmd that blocks until the next change and reports
// it as a ChangedMsg. Re-issue it after handling each message.
func (w *Watcher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case src := <-w.changes:
			w.mu.Lock()
			delete(w.pending, src)
			w.mu.Unlock()
			return ChangedMsg{Source: src}
		case <-w.stopCh:
			return StoppedMsg{}
		}
	}
}

// Stop unsubscribes from every store and releases pending waits.
// It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	cancels := w.cancels
	w.cancels = nil
	w.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	close(w.stopCh)
}
