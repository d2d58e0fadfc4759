package dashboard

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// MenuItem is one entry of the dashboard menu. The set is closed.
type MenuItem int

const (
	MenuHome MenuItem = iota
	MenuCreatePrompt
	MenuViewPrompts
	MenuAudioTranscription
)

// MenuItems lists the menu in display order.
var MenuItems = []MenuItem{MenuHome, MenuCreatePrompt, MenuViewPrompts, MenuAudioTranscription}

func (m MenuItem) String() string {
	switch m {
	case MenuCreatePrompt:
		return "Create Prompt"
	case MenuViewPrompts:
		return "View Prompts"
	case MenuAudioTranscription:
		return "Audio Transcription"
	default:
		return "Home"
	}
}

// ParseMenuItem resolves user input to a menu entry. It accepts the 1-based
// position or the label, ignoring case and surrounding whitespace.
func ParseMenuItem(input string) (MenuItem, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return MenuHome, false
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(MenuItems) {
			return MenuHome, false
		}
		return MenuItems[n-1], true
	}
	fold := cases.Fold()
	want := fold.String(strings.Join(strings.Fields(input), " "))
	for _, item := range MenuItems {
		if fold.String(item.String()) == want {
			return item, true
		}
	}
	return MenuHome, false
}
