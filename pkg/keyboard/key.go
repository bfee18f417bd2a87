package keyboard

// EdgeFlags mark a key as anchored to a keyboard edge. An anchored key's
// hit-region extends to the physical edge on that side so touches at the
// screen border still land on a key.
type EdgeFlags uint8

const (
	EdgeLeft EdgeFlags = 1 << iota
	EdgeRight
)

// Key is a single key's geometry and behavior within a built Keyboard.
type Key struct {
	// Code is the value the key produces: a character code point, or one
	// of the negative control codes.
	Code int

	Label string
	// TopSmallNumber is the secondary glyph drawn in the key's corner.
	TopSmallNumber string

	Icon          Icon
	SecondaryIcon Icon

	// Gap is the horizontal margin before the drawable area; X already
	// excludes it.
	Width, Height, Gap int
	X, Y               int

	Edges EdgeFlags

	// PopupCharacters and PopupLayout describe the long-press mini
	// keyboard. When PopupCharacters is empty, PopupLayout is zero.
	PopupCharacters string
	PopupLayout     int

	Repeatable bool

	// Transient interaction state, owned by input handling and read by
	// rendering. The layout build never touches these.
	Pressed bool
	Focused bool

	row *Row
}

// Row returns the row that owns this key.
func (k *Key) Row() *Row { return k.row }

// Contains reports whether the point (x, y) falls inside the key. An
// edge-anchored key claims all space between itself and the keyboard edge
// on the anchored side.
func (k *Key) Contains(x, y int) bool {
	if y < k.Y || y >= k.Y+k.Height {
		return false
	}
	if x >= k.X && x < k.X+k.Width {
		return true
	}
	if k.Edges&EdgeLeft != 0 && x <= k.X+k.Width {
		return true
	}
	if k.Edges&EdgeRight != 0 && x >= k.X {
		return true
	}
	return false
}
