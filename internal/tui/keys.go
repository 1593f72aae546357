package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Send     key.Binding
	Record   key.Binding
	NextLink key.Binding
	Follow   key.Binding
	Toggle   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "שליחה")),
		Record:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "הקלטה")),
		NextLink: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "קישור הבא")),
		Follow:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "פתיחת קישור")),
		Toggle:   key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "פתיחה/סגירה")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "יציאה")),
	}
}
