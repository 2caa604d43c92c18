package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/helmy2/go-hijri-picker/internal/config"
)

type keyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Year    key.Binding
	Select  key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

func newKeyMap(confirmLabel string) keyMap {
	return keyMap{
		Left:    key.NewBinding(key.WithKeys(config.KeyLeft, config.KeyLeftAlt)),
		Right:   key.NewBinding(key.WithKeys(config.KeyRight, config.KeyRightAlt)),
		Up:      key.NewBinding(key.WithKeys(config.KeyUp, config.KeyUpAlt)),
		Down:    key.NewBinding(key.WithKeys(config.KeyDown, config.KeyDownAlt), key.WithHelp(config.HelpKeyMove, config.HelpDescMove)),
		Next:    key.NewBinding(key.WithKeys(config.KeyNext, config.KeyNextAlt), key.WithHelp(config.HelpKeyPage, config.HelpDescPage)),
		Prev:    key.NewBinding(key.WithKeys(config.KeyPrev, config.KeyPrevAlt)),
		Year:    key.NewBinding(key.WithKeys(config.KeyYear), key.WithHelp(config.KeyYear, config.HelpDescYear)),
		Select:  key.NewBinding(key.WithKeys(config.KeySelect, config.KeySelectAlt), key.WithHelp(config.HelpKeySelect, config.HelpDescSelect)),
		Confirm: key.NewBinding(key.WithKeys(config.KeyConfirm), key.WithHelp(config.KeyConfirm, confirmLabel)),
		Quit:    key.NewBinding(key.WithKeys(config.KeyQuit, config.KeyEsc, config.KeyCtrlC), key.WithHelp(config.KeyQuit, config.HelpDescQuit)),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Next, k.Year, k.Select, k.Confirm, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
