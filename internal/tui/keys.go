package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

const (
	actionQuit  Action = "quit"
	actionUp    Action = "up"
	actionDown  Action = "down"
	actionLeft  Action = "left"
	actionRight Action = "right"
	actionPress Action = "press"
)

type Binding struct {
	Action Action
	Keys   []string
	Help   string
}

// KeyRegistry maps key names to bindings. Digits and operators are not
// bound: the keypad is operated through focus or the mouse.
type KeyRegistry struct {
	bindings []*Binding
	index    map[string]*Binding
}

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{index: make(map[string]*Binding)}
	r.Register(Binding{Action: actionUp, Keys: []string{"up", "k"}, Help: "up"})
	r.Register(Binding{Action: actionDown, Keys: []string{"down", "j"}, Help: "down"})
	r.Register(Binding{Action: actionLeft, Keys: []string{"left", "h"}, Help: "left"})
	r.Register(Binding{Action: actionRight, Keys: []string{"right", "l"}, Help: "right"})
	r.Register(Binding{Action: actionPress, Keys: []string{"enter", "space"}, Help: "press"})
	r.Register(Binding{Action: actionQuit, Keys: []string{"q", "ctrl+c"}, Help: "quit"})
	return r
}

// Register adds b. Keys already taken by another binding are dropped.
func (r *KeyRegistry) Register(b Binding) {
	nb := b
	nb.Keys = nil
	for _, k := range normalizeKeyList(b.Keys) {
		if _, taken := r.index[k]; taken {
			continue
		}
		nb.Keys = append(nb.Keys, k)
	}
	if len(nb.Keys) == 0 {
		return
	}
	stored := &nb
	r.bindings = append(r.bindings, stored)
	for _, k := range nb.Keys {
		r.index[k] = stored
	}
}

func (r *KeyRegistry) Lookup(keyName string) *Binding {
	return r.index[normalizeKeyName(keyName)]
}

// HelpBindings returns bubbles key bindings for the help footer.
func (r *KeyRegistry) HelpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		helpKey := b.Keys[0]
		if len(b.Keys) > 1 {
			helpKey = strings.Join(b.Keys[:2], "/")
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(helpKey, b.Help)))
	}
	return out
}

// ApplyOverrides replaces the keys of the named actions.
func (r *KeyRegistry) ApplyOverrides(overrides map[string][]string) error {
	if len(overrides) == 0 {
		return nil
	}
	byAction := make(map[Action]*Binding, len(r.bindings))
	for _, b := range r.bindings {
		byAction[b.Action] = b
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	updated := make([]Binding, 0, len(r.bindings))
	replaced := make(map[Action]bool)
	for _, name := range names {
		action := Action(strings.ToLower(strings.TrimSpace(name)))
		b, ok := byAction[action]
		if !ok {
			return fmt.Errorf("unknown key action %q", name)
		}
		keys := normalizeKeyList(overrides[name])
		if len(keys) == 0 {
			return fmt.Errorf("key action %q: no keys", name)
		}
		nb := *b
		nb.Keys = keys
		updated = append(updated, nb)
		replaced[action] = true
	}
	for _, b := range r.bindings {
		if !replaced[b.Action] {
			updated = append(updated, *b)
		}
	}

	r.bindings = nil
	r.index = make(map[string]*Binding)
	for _, b := range updated {
		r.Register(b)
	}
	return nil
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	k = strings.ToLower(strings.TrimSpace(k))
	if k == "return" {
		return "enter"
	}
	return k
}
