package keyboard

import "fmt"

// EventKind identifies one structured declaration in a layout description
// stream.
type EventKind int

const (
	// EventKeyboardAttrs carries the keyboard-wide default attributes.
	EventKeyboardAttrs EventKind = iota
	// EventStartRow opens a row declaration.
	EventStartRow
	// EventEndRow closes the current row.
	EventEndRow
	// EventStartKey opens a key declaration inside the current row.
	EventStartKey
	// EventEndKey closes the current key.
	EventEndKey
)

// Attribute names carried by declaration events.
const (
	AttrKeyWidth        = "keyWidth"
	AttrKeyHeight       = "keyHeight"
	AttrHorizontalGap   = "horizontalGap"
	AttrIsNumbersRow    = "isNumbersRow"
	AttrCode            = "code"
	AttrLabel           = "label"
	AttrTopSmallNumber  = "topSmallNumber"
	AttrPopupCharacters = "popupCharacters"
	AttrPopupLayout     = "popupLayout"
	AttrEdgeFlags       = "edgeFlags"
	AttrRepeatable      = "isRepeatable"
	AttrIcon            = "icon"
	AttrSecondaryIcon   = "secondaryIcon"
)

// Attrs maps attribute names to raw declaration values: Dimension for sized
// attributes, bool, string, int, Icon or EdgeFlags for the rest. Producers
// (such as the layoutfile package) fill these maps; the builder consumes
// them through the typed accessors below.
type Attrs map[string]any

// Event is one structured declaration from a layout description.
type Event struct {
	Kind  EventKind
	Attrs Attrs
}

// The accessors treat a missing attribute as its zero value and a value of
// the wrong dynamic type as malformed, which truncates the build pass.

func (a Attrs) dimension(name string) (Dimension, error) {
	v, ok := a[name]
	if !ok {
		return Dimension{}, nil
	}
	d, ok := v.(Dimension)
	if !ok {
		return Dimension{}, fmt.Errorf("attribute %s: want dimension, got %T", name, v)
	}
	return d, nil
}

func (a Attrs) boolean(name string) (bool, error) {
	v, ok := a[name]
	if !ok {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("attribute %s: want bool, got %T", name, v)
	}
	return b, nil
}

func (a Attrs) text(name string) (string, error) {
	v, ok := a[name]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("attribute %s: want string, got %T", name, v)
	}
	return s, nil
}

func (a Attrs) integer(name string) (int, error) {
	v, ok := a[name]
	if !ok {
		return 0, nil
	}
	n, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("attribute %s: want int, got %T", name, v)
	}
	return n, nil
}

func (a Attrs) icon(name string) (Icon, error) {
	v, ok := a[name]
	if !ok {
		return IconNone, nil
	}
	ic, ok := v.(Icon)
	if !ok {
		return IconNone, fmt.Errorf("attribute %s: want icon, got %T", name, v)
	}
	return ic, nil
}

func (a Attrs) edges(name string) (EdgeFlags, error) {
	v, ok := a[name]
	if !ok {
		return 0, nil
	}
	e, ok := v.(EdgeFlags)
	if !ok {
		return 0, fmt.Errorf("attribute %s: want edge flags, got %T", name, v)
	}
	return e, nil
}
