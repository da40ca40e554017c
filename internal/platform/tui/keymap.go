package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func bind(helpKey, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc))
}

// GameKeys are the bindings active during a match.
type GameKeys struct {
	Up, Down         key.Binding // left paddle
	AltUp, AltDown   key.Binding // right paddle in versus
	Pause, Restart   key.Binding
	Back, Screenshot key.Binding
	Quit             key.Binding
}

func DefaultGameKeys() GameKeys {
	return GameKeys{
		Up:         bind("w", "P1 up", "w"),
		Down:       bind("s", "P1 down", "s"),
		AltUp:      bind("↑", "P2 up", "up"),
		AltDown:    bind("↓", "P2 down", "down"),
		Pause:      bind("p", "pause", "p"),
		Restart:    bind("r", "restart", "r"),
		Back:       bind("esc/b", "menu", "esc", "b"),
		Screenshot: bind("ctrl+s", "screenshot", "ctrl+s"),
		Quit:       bind("q", "quit", "q", "ctrl+c"),
	}
}

func (k GameKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.AltUp, k.AltDown, k.Pause, k.Quit}
}

func (k GameKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.AltUp, k.AltDown},
		{k.Pause, k.Restart, k.Back, k.Screenshot, k.Quit},
	}
}

// Action decodes msg. Unbound keys and the screenshot key give ActionNone.
func (k GameKeys) Action(msg tea.KeyMsg) core.Action {
	for _, b := range []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.AltUp, core.ActionAltUp},
		{k.AltDown, core.ActionAltDown},
		{k.Pause, core.ActionPause},
		{k.Restart, core.ActionRestart},
		{k.Back, core.ActionBack},
	} {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MenuKeys are the bindings of the mode picker.
type MenuKeys struct {
	Up, Down, Select, Scores, Quit key.Binding
}

func DefaultMenuKeys() MenuKeys {
	return MenuKeys{
		Up:     bind("↑/k", "up", "up", "w", "k"),
		Down:   bind("↓/j", "down", "down", "s", "j"),
		Select: bind("enter", "play", "enter", " "),
		Scores: bind("tab", "matches", "tab"),
		Quit:   bind("q", "quit", "q", "ctrl+c"),
	}
}

func (k MenuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

func (k MenuKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// ScoreKeys are the bindings of the match history.
type ScoreKeys struct {
	Up, Down   key.Binding // scroll the table
	Next, Prev key.Binding // switch mode
	Back, Quit key.Binding
}

func DefaultScoreKeys() ScoreKeys {
	return ScoreKeys{
		Up:   bind("↑/k", "scroll up", "up", "k"),
		Down: bind("↓/j", "scroll down", "down", "j"),
		Next: bind("tab", "next mode", "tab", "right", "l"),
		Prev: bind("S-tab", "prev mode", "shift+tab", "left", "h"),
		Back: bind("esc/b", "back", "esc", "b"),
		Quit: bind("q", "quit", "q", "ctrl+c"),
	}
}

func (k ScoreKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Back, k.Quit}
}

func (k ScoreKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Next, k.Prev}, {k.Back, k.Quit}}
}
