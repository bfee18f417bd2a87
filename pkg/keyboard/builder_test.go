package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyboardAttrs(attrs Attrs) Event { return Event{Kind: EventKeyboardAttrs, Attrs: attrs} }
func startRow(attrs Attrs) Event      { return Event{Kind: EventStartRow, Attrs: attrs} }
func endRow() Event                   { return Event{Kind: EventEndRow} }
func startKey(attrs Attrs) Event      { return Event{Kind: EventStartKey, Attrs: attrs} }
func endKey() Event                   { return Event{Kind: EventEndKey} }

// wholeKey expands to the start/end pair every complete key declaration
// needs.
func wholeKey(attrs Attrs) []Event {
	return []Event{startKey(attrs), endKey()}
}

func wholeRow(attrs Attrs, keys ...Attrs) []Event {
	events := []Event{startRow(attrs)}
	for _, k := range keys {
		events = append(events, wholeKey(k)...)
	}
	return append(events, endRow())
}

func TestBuildGeometry(t *testing.T) {
	events := []Event{keyboardAttrs(Attrs{
		AttrKeyWidth:      Fraction(0.10),
		AttrKeyHeight:     Pixels(40),
		AttrHorizontalGap: Pixels(2),
	})}
	events = append(events, wholeRow(nil,
		Attrs{AttrLabel: "q"},
		Attrs{AttrLabel: "w"},
		Attrs{AttrLabel: "e", AttrKeyWidth: Pixels(64), AttrHorizontalGap: Pixels(0)},
	)...)
	events = append(events, wholeRow(
		Attrs{AttrKeyHeight: Fraction(0.25)},
		Attrs{AttrLabel: "a"},
	)...)

	res := Build(events, Config{DisplayWidth: 320})
	require.True(t, res.Complete)
	kb := res.Keyboard

	require.Len(t, kb.Rows, 2)
	require.Len(t, kb.Keys, 4)

	q, w, e, a := kb.Keys[0], kb.Keys[1], kb.Keys[2], kb.Keys[3]

	// Row one: the cursor advances by gap before each key, by width after.
	assert.Equal(t, 2, q.X)
	assert.Equal(t, 32, q.Width)
	assert.Equal(t, 36, w.X)
	assert.Equal(t, 68, e.X)
	assert.Equal(t, 64, e.Width)
	assert.Equal(t, 0, e.Gap)
	for _, k := range []*Key{q, w, e} {
		assert.Equal(t, 0, k.Y)
		assert.Equal(t, 40, k.Height)
	}

	// Row two starts below row one with its own fractional height.
	assert.Equal(t, 2, a.X)
	assert.Equal(t, 40, a.Y)
	assert.Equal(t, 80, a.Height)

	assert.Equal(t, 132, kb.MinWidth)
	assert.Equal(t, 120, kb.TotalHeight)
}

func TestBuildMinWidthIsMaxKeyExtent(t *testing.T) {
	events := append(
		wholeRow(nil, Attrs{AttrKeyWidth: Pixels(100)}),
		wholeRow(nil, Attrs{AttrKeyWidth: Pixels(30)}, Attrs{AttrKeyWidth: Pixels(30)})...,
	)

	kb := Build(events, Config{DisplayWidth: 320, DefaultKeyHeight: 40}).Keyboard

	max := 0
	for _, k := range kb.Keys {
		if extent := k.X + k.Width; extent > max {
			max = extent
		}
	}
	assert.Equal(t, max, kb.MinWidth)
	assert.Equal(t, 100, kb.MinWidth)
}

func TestBuildNumbersRowFiltered(t *testing.T) {
	events := append(
		wholeRow(Attrs{AttrIsNumbersRow: true},
			Attrs{AttrLabel: "1"}, Attrs{AttrLabel: "2"}),
		wholeRow(nil, Attrs{AttrLabel: "q"})...,
	)

	res := Build(events, Config{DisplayWidth: 320, DefaultKeyHeight: 40, ShowNumbersRow: false})
	require.True(t, res.Complete)
	kb := res.Keyboard

	require.Len(t, kb.Rows, 1)
	assert.False(t, kb.Rows[0].IsNumbersRow)
	require.Len(t, kb.Keys, 1)
	assert.Equal(t, "q", kb.Keys[0].Label)

	// The filtered row contributes no height and the surviving row starts
	// at the top.
	assert.Equal(t, 0, kb.Keys[0].Y)
	assert.Equal(t, 40, kb.TotalHeight)
}

func TestBuildNumbersRowIncluded(t *testing.T) {
	events := append(
		wholeRow(Attrs{AttrIsNumbersRow: true}, Attrs{AttrLabel: "1"}),
		wholeRow(nil, Attrs{AttrLabel: "q"})...,
	)

	kb := Build(events, Config{DisplayWidth: 320, DefaultKeyHeight: 40, ShowNumbersRow: true}).Keyboard

	require.Len(t, kb.Rows, 2)
	assert.True(t, kb.Rows[0].IsNumbersRow)
	require.Len(t, kb.Keys, 2)
	assert.Equal(t, 40, kb.Keys[1].Y)
	assert.Equal(t, 80, kb.TotalHeight)
}

func TestBuildLabelBecomesCode(t *testing.T) {
	events := wholeRow(nil,
		Attrs{AttrLabel: "q"},
		Attrs{AttrLabel: "é"},
		Attrs{AttrCode: CodeShift, AttrLabel: "shift"},
		Attrs{AttrCode: CodeModeChange, AttrLabel: "?123"},
		Attrs{AttrCode: CodeDelete},
	)

	kb := Build(events, Config{DisplayWidth: 320}).Keyboard
	require.Len(t, kb.Keys, 5)

	assert.Equal(t, int('q'), kb.Keys[0].Code)
	assert.Equal(t, int('é'), kb.Keys[1].Code)
	assert.Equal(t, CodeShift, kb.Keys[2].Code)
	assert.Equal(t, CodeModeChange, kb.Keys[3].Code)
	assert.Equal(t, CodeDelete, kb.Keys[4].Code)
}

func TestBuildEnterKeyIcon(t *testing.T) {
	tests := map[string]struct {
		variant EnterVariant
		want    Icon
	}{
		"search":  {EnterSearch, IconEnterSearch},
		"next":    {EnterNextOrGo, IconEnterNext},
		"send":    {EnterSend, IconEnterSend},
		"default": {EnterDefault, IconEnter},
		"none":    {EnterNone, IconEnter},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// A declared icon attribute loses to the variant icon.
			events := wholeRow(nil, Attrs{AttrCode: CodeEnter, AttrIcon: IconShift})
			kb := Build(events, Config{DisplayWidth: 320, EnterVariant: tt.variant}).Keyboard

			require.Len(t, kb.Keys, 1)
			assert.Equal(t, tt.want, kb.Keys[0].Icon)
		})
	}
}

func TestBuildPopupDigitsStripped(t *testing.T) {
	events := wholeRow(nil,
		Attrs{AttrLabel: "a", AttrPopupCharacters: "1a2b3", AttrPopupLayout: 7},
		Attrs{AttrLabel: "b", AttrPopupCharacters: "123", AttrPopupLayout: 7},
	)

	kb := Build(events, Config{DisplayWidth: 320, ShowNumbersRow: true}).Keyboard
	require.Len(t, kb.Keys, 2)

	assert.Equal(t, "ab", kb.Keys[0].PopupCharacters)
	assert.Equal(t, 7, kb.Keys[0].PopupLayout)

	assert.Equal(t, "", kb.Keys[1].PopupCharacters)
	assert.Equal(t, 0, kb.Keys[1].PopupLayout, "an empty popup must not keep a layout reference")
}

func TestBuildPopupKeptWithoutNumbersRow(t *testing.T) {
	events := wholeRow(nil,
		Attrs{AttrLabel: "a", AttrPopupCharacters: "123", AttrPopupLayout: 7},
	)

	kb := Build(events, Config{DisplayWidth: 320, ShowNumbersRow: false}).Keyboard
	require.Len(t, kb.Keys, 1)
	assert.Equal(t, "123", kb.Keys[0].PopupCharacters)
	assert.Equal(t, 7, kb.Keys[0].PopupLayout)
}

func TestBuildTruncatesOnMalformedAttribute(t *testing.T) {
	events := append(
		wholeRow(nil, Attrs{AttrLabel: "q"}, Attrs{AttrLabel: "w"}),
		startRow(nil),
		// keyWidth must be a Dimension; a raw string is malformed.
		startKey(Attrs{AttrKeyWidth: "50"}),
	)

	res := Build(events, Config{DisplayWidth: 320, DefaultKeyHeight: 40})

	assert.False(t, res.Complete)
	assert.Equal(t, len(events)-1, res.TruncatedAt)

	// Everything before the bad event survives.
	kb := res.Keyboard
	require.Len(t, kb.Rows, 2)
	require.Len(t, kb.Keys, 2)
	assert.Equal(t, 40, kb.TotalHeight, "total height is the cursor at truncation")
}

func TestBuildTruncatesOnBrokenStructure(t *testing.T) {
	tests := map[string][]Event{
		"key outside row":  {startKey(nil)},
		"stray end row":    {endRow()},
		"stray end key":    {startRow(nil), endKey()},
		"nested row":       {startRow(nil), startRow(nil)},
		"attrs inside row": {startRow(nil), keyboardAttrs(nil)},
	}

	for name, events := range tests {
		t.Run(name, func(t *testing.T) {
			res := Build(events, Config{DisplayWidth: 320})
			assert.False(t, res.Complete)
			assert.NotNil(t, res.Keyboard)
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	events := []Event{keyboardAttrs(Attrs{AttrHorizontalGap: Fraction(0.01)})}
	events = append(events, wholeRow(Attrs{AttrIsNumbersRow: true},
		Attrs{AttrLabel: "1"}, Attrs{AttrLabel: "2"})...)
	events = append(events, wholeRow(nil,
		Attrs{AttrLabel: "q", AttrPopupCharacters: "1q"},
		Attrs{AttrCode: CodeEnter, AttrKeyWidth: Fraction(0.15), AttrEdgeFlags: EdgeRight},
	)...)
	cfg := Config{DisplayWidth: 320, DefaultKeyHeight: 40, ShowNumbersRow: true, EnterVariant: EnterSend}

	first := Build(events, cfg)
	second := Build(events, cfg)
	require.True(t, first.Complete)
	require.True(t, second.Complete)

	a, b := first.Keyboard, second.Keyboard
	require.Equal(t, len(a.Keys), len(b.Keys))
	require.Equal(t, len(a.Rows), len(b.Rows))
	assert.Equal(t, a.TotalHeight, b.TotalHeight)
	assert.Equal(t, a.MinWidth, b.MinWidth)

	for i := range a.Keys {
		ka, kc := a.Keys[i], b.Keys[i]
		assert.Equal(t, ka.X, kc.X)
		assert.Equal(t, ka.Y, kc.Y)
		assert.Equal(t, ka.Width, kc.Width)
		assert.Equal(t, ka.Height, kc.Height)
		assert.Equal(t, ka.Gap, kc.Gap)
		assert.Equal(t, ka.Code, kc.Code)
		assert.Equal(t, ka.PopupCharacters, kc.PopupCharacters)
	}
}
