package core

import (
	"testing"
	"time"
)

// mustEvent waits for the next event of the given kind, discarding other
// kinds along the way.
func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()
	return mustEventMatch(t, ch, kind, func(*Event) bool { return true })
}

// mustEventMatch waits for the next event of the given kind satisfying
// match, discarding everything before it.
func mustEventMatch(t *testing.T, ch <-chan *Event, kind EventKind, match func(*Event) bool) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind && match(ev) {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

// mustSystem waits for a system notice with the exact text.
func mustSystem(t *testing.T, ch <-chan *Event, text string) *Event {
	t.Helper()
	return mustEventMatch(t, ch, EventSystem, func(ev *Event) bool { return ev.Text == text })
}

// mustNoEvent asserts that no event of the given kind arrives within the
// window. Other kinds are discarded.
func mustNoEvent(t *testing.T, ch <-chan *Event, kind EventKind, window time.Duration) {
	t.Helper()

	deadline := time.Now().Add(window)
	for time.Now().Before(deadline) {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if ev != nil && ev.Kind == kind {
				t.Fatalf("unexpected event: %+v", ev)
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}
