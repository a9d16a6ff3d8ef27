package console

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextSpeaker key.Binding
	Advance     key.Binding
	Pause       key.Binding
	Crisis      key.Binding
	Clear       key.Binding
	RollCall    key.Binding
	Committee   key.Binding
	Up          key.Binding
	Down        key.Binding
	Pass        key.Binding
	Debate      key.Binding
	Toggle      key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextSpeaker: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next speaker")),
		Advance:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "next stage")),
		Pause:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Crisis:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "crisis")),
		Clear:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear motions")),
		RollCall:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "roll call")),
		Committee:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "committee")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Pass:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "pass motion")),
		Debate:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "start debate")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSpeaker, k.Advance, k.Pause, k.Crisis, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSpeaker, k.Advance, k.Pause, k.Crisis},
		{k.Up, k.Down, k.Pass, k.Debate, k.Clear},
		{k.RollCall, k.Committee, k.Help, k.Quit},
	}
}
