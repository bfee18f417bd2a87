// Package layoutfile parses TOML keyboard layout descriptions into the
// declaration event stream the keyboard package consumes. Validation is
// strict here: the geometry core is best-effort by design, so this is the
// layer that tells an author their layout file is broken.
package layoutfile

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Merkost/Simple-Keyboard/pkg/keyboard"
)

//go:embed layouts/english.toml
var englishLayout []byte

// Default returns the event stream of the embedded English QWERTY layout.
func Default() ([]keyboard.Event, error) {
	return Parse(englishLayout)
}

// Load reads and parses a layout file.
func Load(path string) ([]keyboard.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	return Parse(data)
}

// Parse turns a TOML layout document into declaration events. Sized
// attributes accept an integer (pixels) or a percentage string such as
// "10%" (fraction of the display width).
func Parse(data []byte) ([]keyboard.Event, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	attrs := keyboard.Attrs{}
	if err := setDimensions(attrs, doc.Keyboard.KeyWidth, doc.Keyboard.KeyHeight, doc.Keyboard.HorizontalGap); err != nil {
		return nil, fmt.Errorf("keyboard: %w", err)
	}
	events := []keyboard.Event{{Kind: keyboard.EventKeyboardAttrs, Attrs: attrs}}

	for ri, row := range doc.Rows {
		rowAttrs := keyboard.Attrs{}
		if err := setDimensions(rowAttrs, row.KeyWidth, row.KeyHeight, row.HorizontalGap); err != nil {
			return nil, fmt.Errorf("row %d: %w", ri, err)
		}
		if row.NumbersRow {
			rowAttrs[keyboard.AttrIsNumbersRow] = true
		}
		events = append(events, keyboard.Event{Kind: keyboard.EventStartRow, Attrs: rowAttrs})

		for ki, key := range row.Keys {
			keyAttrs, err := keyEventAttrs(key)
			if err != nil {
				return nil, fmt.Errorf("row %d key %d: %w", ri, ki, err)
			}
			events = append(events,
				keyboard.Event{Kind: keyboard.EventStartKey, Attrs: keyAttrs},
				keyboard.Event{Kind: keyboard.EventEndKey},
			)
		}

		events = append(events, keyboard.Event{Kind: keyboard.EventEndRow})
	}

	return events, nil
}

type document struct {
	Keyboard keyboardTable `toml:"keyboard"`
	Rows     []rowTable    `toml:"row"`
}

type keyboardTable struct {
	KeyWidth      any `toml:"key-width"`
	KeyHeight     any `toml:"key-height"`
	HorizontalGap any `toml:"horizontal-gap"`
}

type rowTable struct {
	KeyWidth      any        `toml:"key-width"`
	KeyHeight     any        `toml:"key-height"`
	HorizontalGap any        `toml:"horizontal-gap"`
	NumbersRow    bool       `toml:"numbers-row"`
	Keys          []keyTable `toml:"key"`
}

type keyTable struct {
	Code            *int64   `toml:"code"`
	Label           string   `toml:"label"`
	TopSmallNumber  string   `toml:"top-small-number"`
	PopupCharacters string   `toml:"popup-characters"`
	PopupLayout     *int64   `toml:"popup-layout"`
	Edges           []string `toml:"edges"`
	Repeatable      bool     `toml:"repeatable"`
	Icon            string   `toml:"icon"`
	SecondaryIcon   string   `toml:"secondary-icon"`
	KeyWidth        any      `toml:"key-width"`
	HorizontalGap   any      `toml:"horizontal-gap"`
}

func keyEventAttrs(key keyTable) (keyboard.Attrs, error) {
	attrs := keyboard.Attrs{}
	if err := setDimension(attrs, keyboard.AttrKeyWidth, key.KeyWidth); err != nil {
		return nil, err
	}
	if err := setDimension(attrs, keyboard.AttrHorizontalGap, key.HorizontalGap); err != nil {
		return nil, err
	}

	if key.Code != nil {
		attrs[keyboard.AttrCode] = int(*key.Code)
	}
	if key.Label != "" {
		attrs[keyboard.AttrLabel] = key.Label
	}
	if key.TopSmallNumber != "" {
		attrs[keyboard.AttrTopSmallNumber] = key.TopSmallNumber
	}
	if key.PopupCharacters != "" {
		attrs[keyboard.AttrPopupCharacters] = key.PopupCharacters
	}
	if key.PopupLayout != nil {
		attrs[keyboard.AttrPopupLayout] = int(*key.PopupLayout)
	}
	if key.Repeatable {
		attrs[keyboard.AttrRepeatable] = true
	}
	if key.Icon != "" {
		attrs[keyboard.AttrIcon] = keyboard.Icon(key.Icon)
	}
	if key.SecondaryIcon != "" {
		attrs[keyboard.AttrSecondaryIcon] = keyboard.Icon(key.SecondaryIcon)
	}

	if len(key.Edges) > 0 {
		flags, err := parseEdges(key.Edges)
		if err != nil {
			return nil, err
		}
		attrs[keyboard.AttrEdgeFlags] = flags
	}

	return attrs, nil
}

func setDimensions(attrs keyboard.Attrs, width, height, gap any) error {
	if err := setDimension(attrs, keyboard.AttrKeyWidth, width); err != nil {
		return err
	}
	if err := setDimension(attrs, keyboard.AttrKeyHeight, height); err != nil {
		return err
	}
	return setDimension(attrs, keyboard.AttrHorizontalGap, gap)
}

func setDimension(attrs keyboard.Attrs, name string, v any) error {
	if v == nil {
		return nil
	}
	d, err := parseDimension(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	attrs[name] = d
	return nil
}

func parseDimension(v any) (keyboard.Dimension, error) {
	switch t := v.(type) {
	case int64:
		return keyboard.Pixels(int(t)), nil
	case float64:
		return keyboard.Pixels(int(math.Round(t))), nil
	case string:
		s := strings.TrimSpace(t)
		if !strings.HasSuffix(s, "%") {
			return keyboard.Dimension{}, fmt.Errorf("%q is neither pixels nor a percentage", t)
		}
		f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return keyboard.Dimension{}, fmt.Errorf("%q is not a valid percentage", t)
		}
		return keyboard.Fraction(f / 100), nil
	default:
		return keyboard.Dimension{}, fmt.Errorf("unsupported dimension type %T", v)
	}
}

func parseEdges(names []string) (keyboard.EdgeFlags, error) {
	var flags keyboard.EdgeFlags
	for _, n := range names {
		switch strings.ToLower(n) {
		case "left":
			flags |= keyboard.EdgeLeft
		case "right":
			flags |= keyboard.EdgeRight
		default:
			return 0, fmt.Errorf("unknown edge %q", n)
		}
	}
	return flags, nil
}
