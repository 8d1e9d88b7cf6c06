package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neruppu-daa/internal/config"
	"github.com/vovakirdan/neruppu-daa/internal/core"
)

// KeyMap translates terminal keys into game keys.
// This centralizes key bindings and makes them testable.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	A       key.Binding
	D       key.Binding
	Space   key.Binding
	Quit    key.Binding
	Restart key.Binding
}

var keyHelp = map[core.Key]string{
	core.KeyLeft:    "move left",
	core.KeyRight:   "move right",
	core.KeyA:       "move left",
	core.KeyD:       "move right",
	core.KeySpace:   "start",
	core.KeyQuit:    "quit",
	core.KeyRestart: "play again",
}

// NewKeyMap builds the bindings from the configured terminal key strings.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	bind := func(k core.Key) key.Binding {
		strs := keys[k.String()]
		return key.NewBinding(
			key.WithKeys(strs...),
			key.WithHelp(helpLabel(strs), keyHelp[k]),
		)
	}

	return KeyMap{
		Left:    bind(core.KeyLeft),
		Right:   bind(core.KeyRight),
		A:       bind(core.KeyA),
		D:       bind(core.KeyD),
		Space:   bind(core.KeySpace),
		Quit:    bind(core.KeyQuit),
		Restart: bind(core.KeyRestart),
	}
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

// helpLabel joins key strings for the help view, naming the space bar.
func helpLabel(strs []string) string {
	names := make([]string, 0, len(strs))
	for _, s := range strs {
		if s == " " {
			s = "space"
		}
		names = append(names, s)
	}
	return strings.Join(names, "/")
}

// boundKey pairs a game key with its binding.
type boundKey struct {
	key core.Key
	b   key.Binding
}

// bindings lists every binding in core.Keys order.
func (k KeyMap) bindings() []boundKey {
	return []boundKey{
		{core.KeyLeft, k.Left},
		{core.KeyRight, k.Right},
		{core.KeyA, k.A},
		{core.KeyD, k.D},
		{core.KeySpace, k.Space},
		{core.KeyQuit, k.Quit},
		{core.KeyRestart, k.Restart},
	}
}

// Lookup returns the game key for a terminal key, or KeyNone.
// Matching ignores whether a binding is shown in help.
func (k KeyMap) Lookup(msg tea.KeyMsg) core.Key {
	s := msg.String()
	for _, kb := range k.bindings() {
		for _, want := range kb.b.Keys() {
			if s == want {
				return kb.key
			}
		}
	}
	return core.KeyNone
}

// ForPhase enables only the bindings that do something in the phase,
// which keeps the help footer relevant.
func (k KeyMap) ForPhase(p core.Phase) KeyMap {
	playing := p == core.PhasePlaying
	k.Left.SetEnabled(playing)
	k.Right.SetEnabled(playing)
	k.A.SetEnabled(playing)
	k.D.SetEnabled(playing)
	k.Space.SetEnabled(p == core.PhaseMenu)
	k.Restart.SetEnabled(p == core.PhaseGameOver)
	k.Quit.SetEnabled(true)
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Space, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.A},
		{k.Right, k.D},
		{k.Space, k.Restart, k.Quit},
	}
}
