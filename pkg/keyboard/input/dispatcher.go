// Package input routes touch coordinates to keys on a built keyboard:
// pressed state, key commit on release, repeat for repeatable keys and
// long-press popup activation.
package input

import (
	"time"

	"github.com/Merkost/Simple-Keyboard/pkg/keyboard"
)

const (
	// RepeatDelay is how long a repeatable key must be held before it
	// starts repeating; RepeatInterval paces the repeats after that.
	RepeatDelay    = 400 * time.Millisecond
	RepeatInterval = 50 * time.Millisecond

	// LongPressDelay is the hold time before a key's popup opens.
	LongPressDelay = 300 * time.Millisecond
)

// Dispatcher turns touch events into key callbacks. It is single-threaded
// like the rest of the keyboard: the owning loop calls TouchDown, TouchUp
// and Tick from one goroutine, and Tick drives time-based behavior so the
// dispatcher never spawns goroutines of its own.
type Dispatcher struct {
	// OnKey fires when a key commits: on release for ordinary keys,
	// immediately and then repeatedly for repeatable keys.
	OnKey func(code int, key *keyboard.Key)

	// OnPopup fires once when a long press should open a key's mini
	// keyboard. A key whose popup opened does not commit on release.
	OnPopup func(key *keyboard.Key)

	kb *keyboard.Keyboard

	current    *keyboard.Key
	downAt     time.Time
	lastRepeat time.Time
	repeating  bool
	popupOpen  bool

	now func() time.Time
}

// NewDispatcher binds a dispatcher to a built keyboard. Rebinding after a
// configuration change means making a new dispatcher for the new keyboard.
func NewDispatcher(kb *keyboard.Keyboard) *Dispatcher {
	return &Dispatcher{kb: kb, now: time.Now}
}

// TouchDown presses the key under (x, y) and returns it, or nil when the
// point hits no key. Repeatable keys commit immediately on press.
func (d *Dispatcher) TouchDown(x, y int) *keyboard.Key {
	key := d.kb.KeyAt(x, y)
	if key == nil {
		return nil
	}

	if d.current != nil {
		d.current.Pressed = false
	}
	d.current = key
	key.Pressed = true

	d.downAt = d.now()
	d.lastRepeat = d.downAt
	d.repeating = false
	d.popupOpen = false

	if key.Repeatable {
		d.emit(key)
	}
	return key
}

// TouchUp releases the pressed key and commits it when the release point
// is still inside it. Repeatable keys already committed on press; a key
// whose popup opened is consumed by the popup.
func (d *Dispatcher) TouchUp(x, y int) {
	key := d.current
	if key == nil {
		return
	}
	key.Pressed = false
	d.current = nil

	if key.Repeatable || d.popupOpen {
		return
	}
	if key.Contains(x, y) {
		d.emit(key)
	}
}

// Tick advances held-key behavior and is called once per loop iteration.
func (d *Dispatcher) Tick() {
	key := d.current
	if key == nil {
		return
	}
	now := d.now()

	if key.Repeatable {
		threshold := RepeatInterval
		if !d.repeating {
			threshold = RepeatDelay
		}
		if now.Sub(d.lastRepeat) >= threshold {
			d.lastRepeat = now
			d.repeating = true
			d.emit(key)
		}
		return
	}

	if d.popupOpen {
		return
	}
	if key.PopupCharacters == "" && key.PopupLayout == 0 {
		return
	}
	if now.Sub(d.downAt) >= LongPressDelay {
		d.popupOpen = true
		if d.OnPopup != nil {
			d.OnPopup(key)
		}
	}
}

func (d *Dispatcher) emit(key *keyboard.Key) {
	if d.OnKey != nil {
		d.OnKey(key.Code, key)
	}
}
