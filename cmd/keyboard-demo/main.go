// Command keyboard-demo renders an interactive keyboard in an SDL window.
// Clicks act as touches: tap to type into the preview line, hold delete to
// repeat, hold a letter to log its popup characters.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/Merkost/Simple-Keyboard/pkg/keyboard"
	"github.com/Merkost/Simple-Keyboard/pkg/keyboard/input"
	"github.com/Merkost/Simple-Keyboard/pkg/keyboard/layoutfile"
	"github.com/Merkost/Simple-Keyboard/pkg/keyboard/render"
)

const previewHeight = 80

func main() {
	layoutPath := flag.String("layout", "", "path to a TOML layout (default: embedded english)")
	width := flag.Int("width", 720, "display width in pixels")
	numbersRow := flag.Bool("numbers-row", false, "show the dedicated numbers row")
	tierName := flag.String("tier", "small", "keyboard height tier: small, medium or large")
	enterName := flag.String("enter", "default", "enter variant: default, search, next or send")
	fontPath := flag.String("font", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", "path to a TTF font")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		keyboard.SetLogLevel(slog.LevelDebug)
		keyboard.SetLogOutput(os.Stderr)
	}

	if err := run(*layoutPath, *width, *numbersRow, parseTier(*tierName), parseEnter(*enterName), *fontPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseTier(name string) keyboard.HeightTier {
	switch name {
	case "medium":
		return keyboard.HeightMedium
	case "large":
		return keyboard.HeightLarge
	default:
		return keyboard.HeightSmall
	}
}

func parseEnter(name string) keyboard.EnterVariant {
	switch name {
	case "search":
		return keyboard.EnterSearch
	case "next":
		return keyboard.EnterNextOrGo
	case "send":
		return keyboard.EnterSend
	default:
		return keyboard.EnterDefault
	}
}

func run(layoutPath string, width int, numbersRow bool, tier keyboard.HeightTier, enter keyboard.EnterVariant, fontPath string) error {
	events, err := loadLayout(layoutPath)
	if err != nil {
		return err
	}

	cfg := keyboard.Config{
		DisplayWidth:   width,
		ShowNumbersRow: numbersRow,
		HeightTier:     tier,
		EnterVariant:   enter,
	}
	kb := buildKeyboard(events, cfg)

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}
	defer sdl.Quit()
	if err := ttf.Init(); err != nil {
		return fmt.Errorf("init ttf: %w", err)
	}
	defer ttf.Quit()

	windowHeight := int32(previewHeight + kb.TotalHeight)
	window, err := sdl.CreateWindow("keyboard-demo",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), windowHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	theme := render.GetTheme()
	theme.FontPath = fontPath
	render.SetTheme(theme)

	r, err := render.NewRenderer(renderer, kb.DefaultHeight)
	if err != nil {
		return err
	}
	defer r.Close()

	var text []rune
	bindDispatcher := func(kb *keyboard.Keyboard) *input.Dispatcher {
		d := input.NewDispatcher(kb)
		d.OnKey = func(code int, key *keyboard.Key) {
			text = handleKey(kb, code, key, text)
		}
		d.OnPopup = func(key *keyboard.Key) {
			fmt.Printf("popup for %q: %s\n", key.Label, key.PopupCharacters)
		}
		return d
	}
	dispatcher := bindDispatcher(kb)

	const originY = previewHeight

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if ev.Type != sdl.KEYDOWN {
					break
				}
				switch ev.Keysym.Sym {
				case sdl.K_ESCAPE:
					return nil
				case sdl.K_F1:
					// Toggling the numbers row changes the geometry, so the
					// keyboard is rebuilt and the dispatcher rebound.
					cfg.ShowNumbersRow = !cfg.ShowNumbersRow
					kb = buildKeyboard(events, cfg)
					dispatcher = bindDispatcher(kb)
					window.SetSize(int32(width), int32(previewHeight+kb.TotalHeight))
				}
			case *sdl.MouseButtonEvent:
				if ev.Button != sdl.BUTTON_LEFT {
					break
				}
				x, y := int(ev.X), int(ev.Y)-originY
				if ev.Type == sdl.MOUSEBUTTONDOWN {
					dispatcher.TouchDown(x, y)
				} else {
					dispatcher.TouchUp(x, y)
				}
			}
		}
		dispatcher.Tick()

		bg := render.GetTheme().BackgroundColor
		renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
		renderer.Clear()
		r.DrawLabel(string(text)+"_", 10, 20, render.GetTheme().TextColor)
		r.DrawKeyboard(kb, 0, originY)
		renderer.Present()

		sdl.Delay(16)
	}
}

func buildKeyboard(events []keyboard.Event, cfg keyboard.Config) *keyboard.Keyboard {
	res := keyboard.Build(events, cfg)
	if !res.Complete {
		fmt.Fprintf(os.Stderr, "layout truncated at event %d, showing partial keyboard\n", res.TruncatedAt)
	}
	return res.Keyboard
}

func loadLayout(path string) ([]keyboard.Event, error) {
	if path == "" {
		return layoutfile.Default()
	}
	return layoutfile.Load(path)
}

// handleKey applies one committed key to the preview text and the shift
// state, returning the updated text.
func handleKey(kb *keyboard.Keyboard, code int, key *keyboard.Key, text []rune) []rune {
	switch code {
	case keyboard.CodeShift:
		// Tap cycles off, one-shot, caps lock.
		switch kb.ShiftState() {
		case keyboard.ShiftOff:
			kb.SetShiftState(keyboard.ShiftOnOneChar)
		case keyboard.ShiftOnOneChar:
			kb.SetShiftState(keyboard.ShiftOnPermanent)
		default:
			kb.SetShiftState(keyboard.ShiftOff)
		}
		return text

	case keyboard.CodeDelete:
		if len(text) > 0 {
			text = text[:len(text)-1]
		}
		return text

	case keyboard.CodeEnter:
		fmt.Printf("enter: %q\n", string(text))
		return text[:0]

	case keyboard.CodeModeChange, keyboard.CodeEmoji:
		fmt.Printf("unhandled control key %q\n", key.Label)
		return text

	default:
		r := rune(code)
		if kb.ShiftState() != keyboard.ShiftOff {
			r = shiftRune(r)
			if kb.ShiftState() == keyboard.ShiftOnOneChar {
				kb.SetShiftState(keyboard.ShiftOff)
			}
		}
		return append(text, r)
	}
}

func shiftRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
