package dashboard

import (
	"sync"
	"time"
)

const toastDuration = 4 * time.Second

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

type Toast struct {
	Message string
	Kind    ToastKind
}

// Toaster is a single-slot notification channel: a new toast replaces
// whatever is currently showing. Each toast auto-dismisses after a fixed
// duration; the sequence counter keeps a stale timer from clearing a
// newer toast.
type Toaster struct {
	mu      sync.Mutex
	current *Toast
	seq     uint64
	ttl     time.Duration
}

func NewToaster() *Toaster {
	return &Toaster{ttl: toastDuration}
}

func (t *Toaster) Show(message string, kind ToastKind) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	seq := t.seq
	t.current = &Toast{Message: message, Kind: kind}

	time.AfterFunc(t.ttl, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.seq == seq {
			t.current = nil
		}
	})
}

// Dismiss clears the current toast. The pending timer still fires but
// finds a newer sequence (or cleared state) and does nothing.
func (t *Toaster) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	t.current = nil
}

func (t *Toaster) Current() *Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return nil
	}

	toast := *t.current
	return &toast
}
