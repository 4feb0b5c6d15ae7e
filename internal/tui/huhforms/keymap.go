package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// KeyMapWithShiftEnter adds shift+enter to the newline keys of text fields,
// alongside the default alt+enter and ctrl+j
func KeyMapWithShiftEnter() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()
	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)
	return keymap
}
