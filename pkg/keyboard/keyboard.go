// Package keyboard converts declarative, tree-structured keyboard layout
// descriptions into pixel geometry: absolute positions and sizes for every
// key, row bounds, overall dimensions and hit-testing. It consumes an
// already-tokenized stream of row/key declarations; parsing the on-disk
// format is the layoutfile package's job, drawing is the render package's.
package keyboard

import "math"

// DefaultKeyHeight is the fallback key height in pixels when neither the
// layout nor the Config declares one.
const DefaultKeyHeight = 54

// GridColumns is the per-row key limit for grid-synthesized keyboards.
const GridColumns = 10

// Config is the read-only snapshot a Keyboard is built against. A new
// Keyboard is built from scratch whenever any of these change.
type Config struct {
	// DisplayWidth is the available width in pixels and the base for
	// fractional dimensions.
	DisplayWidth int

	// ShowNumbersRow includes rows marked as the numbers row and strips
	// digits from the popup characters of every other key.
	ShowNumbersRow bool

	HeightTier   HeightTier
	EnterVariant EnterVariant

	// DefaultKeyHeight overrides the package default when positive.
	DefaultKeyHeight int
}

// Keyboard owns the rows and keys of one built layout. Apart from the
// shift state and per-key interaction flags it is immutable once built.
type Keyboard struct {
	DefaultWidth         int
	DefaultHeight        int
	DefaultHorizontalGap int

	HeightMultiplier float64

	Rows []*Row
	// Keys is the flattened view across all rows, in document order.
	Keys []*Key

	TotalHeight int
	MinWidth    int

	DisplayWidth int
	EnterVariant EnterVariant

	shiftState ShiftState
}

func newKeyboard(cfg Config) *Keyboard {
	defHeight := cfg.DefaultKeyHeight
	if defHeight <= 0 {
		defHeight = DefaultKeyHeight
	}
	return &Keyboard{
		DefaultWidth:     cfg.DisplayWidth / 10,
		DefaultHeight:    defHeight,
		HeightMultiplier: cfg.HeightTier.Multiplier(),
		DisplayWidth:     cfg.DisplayWidth,
		EnterVariant:     cfg.EnterVariant,
	}
}

// ShiftState returns the current shift state.
func (kb *Keyboard) ShiftState() ShiftState { return kb.shiftState }

// SetShiftState sets the shift state and reports whether it changed.
func (kb *Keyboard) SetShiftState(state ShiftState) bool {
	if kb.shiftState == state {
		return false
	}
	kb.shiftState = state
	return true
}

// KeyAt returns the key containing the point (x, y), or nil when the point
// hits no key.
func (kb *Keyboard) KeyAt(x, y int) *Key {
	for _, k := range kb.Keys {
		if k.Contains(x, y) {
			return k
		}
	}
	return nil
}

// NewGridKeyboard synthesizes a keyboard from a flat run of characters:
// one key per character, laid out left to right with the supplied key
// width, wrapping to a new row after GridColumns keys. Popup layouts such
// as the long-press mini keyboards are built this way.
func NewGridKeyboard(characters string, keyWidth int, cfg Config) *Keyboard {
	kb := newKeyboard(cfg)
	kb.DefaultWidth = keyWidth

	rowHeight := int(math.Round(float64(kb.DefaultHeight) * kb.HeightMultiplier))
	gap := kb.DefaultHorizontalGap

	row := kb.newGridRow(keyWidth, rowHeight, gap)
	x, y, column := 0, 0, 0

	for _, c := range characters {
		if column >= GridColumns {
			x, column = 0, 0
			y += rowHeight
			row = kb.newGridRow(keyWidth, rowHeight, gap)
		}
		key := &Key{
			Code:   int(c),
			Label:  string(c),
			Width:  keyWidth,
			Height: rowHeight,
			Gap:    gap,
			X:      x,
			Y:      y,
			row:    row,
		}
		row.Keys = append(row.Keys, key)
		kb.Keys = append(kb.Keys, key)

		column++
		x += keyWidth + gap
		if x > kb.MinWidth {
			kb.MinWidth = x
		}
	}

	kb.TotalHeight = y + rowHeight
	return kb
}

func (kb *Keyboard) newGridRow(width, height, gap int) *Row {
	row := &Row{
		DefaultWidth:         width,
		DefaultHeight:        height,
		DefaultHorizontalGap: gap,
		keyboard:             kb,
	}
	kb.Rows = append(kb.Rows, row)
	return row
}
