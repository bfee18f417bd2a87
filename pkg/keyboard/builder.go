package keyboard

import (
	"fmt"
	"strings"

	"github.com/Merkost/Simple-Keyboard/pkg/keyboard/internal"
)

// Result is the outcome of a build pass. A malformed declaration never
// fails the build: the pass stops where the problem occurred and whatever
// was already laid out is kept, so a broken layout still yields a usable
// keyboard instead of crashing key input.
type Result struct {
	Keyboard *Keyboard

	// Complete is false when the pass stopped early.
	Complete bool

	// TruncatedAt is the index of the event that stopped the pass, valid
	// only when Complete is false.
	TruncatedAt int
}

// Build runs the single forward layout pass over a declaration stream.
func Build(events []Event, cfg Config) Result {
	b := &builder{kb: newKeyboard(cfg), cfg: cfg}

	for i, ev := range events {
		if err := b.apply(ev); err != nil {
			internal.Logger().Debug("layout pass truncated",
				"event", i, "error", err)
			b.finish()
			return Result{Keyboard: b.kb, TruncatedAt: i}
		}
	}

	b.finish()
	return Result{Keyboard: b.kb, Complete: true}
}

type buildState int

const (
	stateIdle buildState = iota
	stateInRow
	stateInKey
)

// builder is the explicit state machine behind Build. rowIncluded carries
// the numbers-row filter decision across the keys nested in the row, so a
// filtered row's keys are dropped without any non-local control flow.
type builder struct {
	kb  *Keyboard
	cfg Config

	state       buildState
	rowIncluded bool
	row         *Row
	key         *Key
	x, y        int
}

func (b *builder) apply(ev Event) error {
	switch ev.Kind {
	case EventKeyboardAttrs:
		return b.keyboardAttrs(ev.Attrs)
	case EventStartRow:
		return b.startRow(ev.Attrs)
	case EventEndRow:
		return b.endRow()
	case EventStartKey:
		return b.startKey(ev.Attrs)
	case EventEndKey:
		return b.endKey()
	default:
		return fmt.Errorf("unknown event kind %d", ev.Kind)
	}
}

func (b *builder) keyboardAttrs(attrs Attrs) error {
	if b.state != stateIdle {
		return fmt.Errorf("keyboard attributes inside a row declaration")
	}

	width, err := attrs.dimension(AttrKeyWidth)
	if err != nil {
		return err
	}
	b.kb.DefaultWidth = width.Resolve(b.kb.DisplayWidth, b.kb.DisplayWidth/10)

	// The keyboard-level key height is a fixed unit; fractions are not
	// meaningful for it.
	height, err := attrs.dimension(AttrKeyHeight)
	if err != nil {
		return err
	}
	if height.Kind == DimensionAbsolute {
		b.kb.DefaultHeight = int(height.Value)
	}

	gap, err := attrs.dimension(AttrHorizontalGap)
	if err != nil {
		return err
	}
	b.kb.DefaultHorizontalGap = gap.Resolve(b.kb.DisplayWidth, 0)
	return nil
}

func (b *builder) startRow(attrs Attrs) error {
	if b.state != stateIdle {
		return fmt.Errorf("row started inside another declaration")
	}

	row, err := newRow(b.kb, attrs)
	if err != nil {
		return err
	}

	b.state = stateInRow
	b.row = row
	b.rowIncluded = !row.IsNumbersRow || b.cfg.ShowNumbersRow
	if b.rowIncluded {
		b.kb.Rows = append(b.kb.Rows, row)
		b.x = 0
	}
	return nil
}

func (b *builder) endRow() error {
	if b.state != stateInRow {
		return fmt.Errorf("row ended without a matching start")
	}
	if b.rowIncluded {
		b.y += b.row.DefaultHeight
	}
	b.state = stateIdle
	b.row = nil
	return nil
}

func (b *builder) startKey(attrs Attrs) error {
	if b.state != stateInRow {
		return fmt.Errorf("key started outside a row")
	}
	b.state = stateInKey

	// Keys nested in a filtered row are dropped wholesale.
	if !b.rowIncluded {
		return nil
	}

	gapDim, err := attrs.dimension(AttrHorizontalGap)
	if err != nil {
		return err
	}
	widthDim, err := attrs.dimension(AttrKeyWidth)
	if err != nil {
		return err
	}

	key := &Key{
		Width:  widthDim.Resolve(b.kb.DisplayWidth, b.row.DefaultWidth),
		Height: b.row.DefaultHeight,
		Gap:    gapDim.Resolve(b.kb.DisplayWidth, b.row.DefaultHorizontalGap),
		Y:      b.y,
		row:    b.row,
	}

	// The gap precedes the drawable area, so the cursor advances before
	// the key's X is fixed.
	b.x += key.Gap
	key.X = b.x

	if err := b.parseKeyAttrs(key, attrs); err != nil {
		return err
	}

	b.row.Keys = append(b.row.Keys, key)
	b.kb.Keys = append(b.kb.Keys, key)
	b.key = key
	return nil
}

func (b *builder) parseKeyAttrs(key *Key, attrs Attrs) error {
	var err error
	if key.Code, err = attrs.integer(AttrCode); err != nil {
		return err
	}
	if key.Label, err = attrs.text(AttrLabel); err != nil {
		return err
	}
	if key.TopSmallNumber, err = attrs.text(AttrTopSmallNumber); err != nil {
		return err
	}
	if key.PopupCharacters, err = attrs.text(AttrPopupCharacters); err != nil {
		return err
	}
	if key.PopupLayout, err = attrs.integer(AttrPopupLayout); err != nil {
		return err
	}
	if key.Edges, err = attrs.edges(AttrEdgeFlags); err != nil {
		return err
	}
	if key.Repeatable, err = attrs.boolean(AttrRepeatable); err != nil {
		return err
	}
	if key.Icon, err = attrs.icon(AttrIcon); err != nil {
		return err
	}
	if key.SecondaryIcon, err = attrs.icon(AttrSecondaryIcon); err != nil {
		return err
	}

	// Ordinary character keys may omit an explicit code: the label's
	// first character is the code. Mode-change and shift keep their
	// control codes even when labelled.
	if key.Label != "" && key.Code != CodeModeChange && key.Code != CodeShift {
		key.Code = int([]rune(key.Label)[0])
	}

	// With a dedicated numbers row there is no need to reach digits via
	// long-press popups; an emptied popup must not open a dead mini
	// keyboard.
	if b.cfg.ShowNumbersRow && key.PopupCharacters != "" {
		key.PopupCharacters = stripDigits(key.PopupCharacters)
		if key.PopupCharacters == "" {
			key.PopupLayout = 0
		}
	}

	if key.Code == CodeEnter {
		key.Icon = b.kb.EnterVariant.Icon()
	}
	return nil
}

func (b *builder) endKey() error {
	if b.state != stateInKey {
		return fmt.Errorf("key ended without a matching start")
	}
	b.state = stateInRow

	if !b.rowIncluded {
		return nil
	}

	b.x = b.key.X + b.key.Width
	if b.x > b.kb.MinWidth {
		b.kb.MinWidth = b.x
	}
	b.key = nil
	return nil
}

// finish freezes the total height at the accumulated row cursor, so a pass
// truncated mid-stream still reports the height of what was laid out.
func (b *builder) finish() {
	b.kb.TotalHeight = b.y
}

func stripDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, s)
}
