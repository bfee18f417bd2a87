package keyboard

// Control codes produced by non-character keys. They are negative so they
// never collide with character code points.
const (
	CodeShift      = -1
	CodeModeChange = -2
	CodeEnter      = -4
	CodeDelete     = -5
	CodeEmoji      = -6

	// CodeSpace is an ordinary character code, named because input
	// handling treats the space bar specially.
	CodeSpace = 32
)

// ShiftState is the tri-state shift of a Keyboard.
type ShiftState int

const (
	ShiftOff ShiftState = iota
	// ShiftOnOneChar shifts the next committed character only.
	ShiftOnOneChar
	// ShiftOnPermanent is caps lock.
	ShiftOnPermanent
)

// EnterVariant selects which icon the Enter key requests, derived from the
// editor action the keyboard is attached to.
type EnterVariant int

const (
	EnterNone EnterVariant = iota
	EnterSearch
	EnterNextOrGo
	EnterSend
	EnterDefault
)

// Icon names an asset the rendering layer resolves to a drawable. The
// geometry core only requests icons by name.
type Icon string

const (
	IconNone        Icon = ""
	IconEnter       Icon = "enter"
	IconEnterSearch Icon = "enter-search"
	IconEnterNext   Icon = "enter-next"
	IconEnterSend   Icon = "enter-send"
	IconShift       Icon = "shift"
	IconDelete      Icon = "delete"
	IconEmoji       Icon = "emoji"
)

// Icon returns the asset the Enter key shows for this variant.
func (v EnterVariant) Icon() Icon {
	switch v {
	case EnterSearch:
		return IconEnterSearch
	case EnterNextOrGo:
		return IconEnterNext
	case EnterSend:
		return IconEnterSend
	default:
		return IconEnter
	}
}

// HeightTier is the user-facing keyboard height setting.
type HeightTier int

const (
	HeightSmall HeightTier = iota
	HeightMedium
	HeightLarge
)

var heightMultipliers = map[HeightTier]float64{
	HeightSmall:  1.0,
	HeightMedium: 1.2,
	HeightLarge:  1.4,
}

// Multiplier returns the row-height scale for the tier. Unknown tiers fall
// back to 1.0.
func (t HeightTier) Multiplier() float64 {
	if m, ok := heightMultipliers[t]; ok {
		return m
	}
	return 1.0
}
