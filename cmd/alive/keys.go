package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var namedKeys = map[tcell.Key]string{
	tcell.KeyUp:        "ArrowUp",
	tcell.KeyDown:      "ArrowDown",
	tcell.KeyLeft:      "ArrowLeft",
	tcell.KeyRight:     "ArrowRight",
	tcell.KeyEnter:     "Enter",
	tcell.KeyTab:       "Tab",
	tcell.KeyBackspace: "Backspace",
	tcell.KeyDelete:    "Delete",
	tcell.KeyHome:      "Home",
	tcell.KeyEnd:       "End",
	tcell.KeyPgUp:      "PageUp",
	tcell.KeyPgDn:      "PageDown",
}

// keyToken converts a terminal key into a physical key code token
// ("ArrowUp", "KeyB", "Digit3"); unknown keys return false
func keyToken(ev *tcell.EventKey) (string, bool) {
	if ev.Key() != tcell.KeyRune {
		tok, ok := namedKeys[ev.Key()]
		return tok, ok
	}
	return runeToken(ev.Rune())
}

func runeToken(r rune) (string, bool) {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return "Key" + string(unicode.ToUpper(r)), true
	case r >= '0' && r <= '9':
		return "Digit" + string(r), true
	case r == ' ':
		return "Space", true
	case unicode.IsPrint(r):
		return string(r), true
	default:
		return "", false
	}
}
