// Package display holds the single shared output surface status messages are written to.
package display

import "sync"

// TargetID is the stable external identifier of the display target.
const TargetID = "message-display"

const subscriberBuffer = 8

// Display keeps the most recently written message and fans every write out to subscribers.
// Writes overwrite each other; the last one wins.
type Display struct {
	mu          sync.RWMutex
	text        string
	subscribers map[chan string]struct{}
}

// New returns an empty display.
func New() *Display {
	return &Display{subscribers: make(map[chan string]struct{})}
}

// Show overwrites the displayed text with msg.
// A subscriber that is not keeping up loses its oldest pending message, never the newest.
func (d *Display) Show(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.text = msg
	for ch := range d.subscribers {
		select {
		case ch <- msg:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- msg:
			default:
			}
		}
	}
}

// Text returns the currently displayed text.
func (d *Display) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.text
}

// Subscribe registers a new listener for display writes.
// The returned func unregisters it and closes the channel; it is safe to call more than once.
func (d *Display) Subscribe() (<-chan string, func()) {
	ch := make(chan string, subscriberBuffer)

	d.mu.Lock()
	d.subscribers[ch] = struct{}{}
	d.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.subscribers, ch)
			close(ch)
			d.mu.Unlock()
		})
	}
}
