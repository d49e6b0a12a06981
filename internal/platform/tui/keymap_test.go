package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quarterslot/quarters/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		isQuit bool
	}{
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc is back, not pause", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b is back", runeKey('b'), core.ActionBack, false},
		{"space jumps", runeKey(' '), core.ActionJump, false},
		{"x rotates", runeKey('x'), core.ActionRotate, false},
		{"tab rotates", tea.KeyMsg{Type: tea.KeyTab}, core.ActionRotate, false},
		{"enter is primary", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPrimary, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key is none", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tt.msg)
			if action != tt.action || isQuit != tt.isQuit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
					tt.msg.String(), action, isQuit, tt.action, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.action {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.action)
		}
	}
}
