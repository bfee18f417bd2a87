package keyboard

import "math"

// Row is an ordered run of keys sharing a horizontal band. Its defaults are
// resolved once at creation, falling back to the owning keyboard's.
type Row struct {
	DefaultWidth         int
	DefaultHeight        int
	DefaultHorizontalGap int

	// IsNumbersRow marks the optional digit row; the keyboard uses it as
	// a filter predicate during the build.
	IsNumbersRow bool

	Keys []*Key

	keyboard *Keyboard
}

// Keyboard returns the keyboard that owns this row.
func (r *Row) Keyboard() *Keyboard { return r.keyboard }

func newRow(kb *Keyboard, attrs Attrs) (*Row, error) {
	width, err := attrs.dimension(AttrKeyWidth)
	if err != nil {
		return nil, err
	}
	height, err := attrs.dimension(AttrKeyHeight)
	if err != nil {
		return nil, err
	}
	gap, err := attrs.dimension(AttrHorizontalGap)
	if err != nil {
		return nil, err
	}
	numbers, err := attrs.boolean(AttrIsNumbersRow)
	if err != nil {
		return nil, err
	}

	// The height multiplier applies here so every row scales with the
	// configured keyboard height tier.
	resolved := height.Resolve(kb.DisplayWidth, kb.DefaultHeight)
	scaled := int(math.Round(float64(resolved) * kb.HeightMultiplier))

	return &Row{
		DefaultWidth:         width.Resolve(kb.DisplayWidth, kb.DefaultWidth),
		DefaultHeight:        scaled,
		DefaultHorizontalGap: gap.Resolve(kb.DisplayWidth, kb.DefaultHorizontalGap),
		IsNumbersRow:         numbers,
		keyboard:             kb,
	}, nil
}
