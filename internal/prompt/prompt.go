// Package prompt asks the user yes/no questions on the terminal.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/pypippark/internal/messages"
	"github.com/conn-castle/pypippark/internal/terminal"
)

var (
	// ErrNotInteractive is returned when a prompt is needed but no terminal is attached.
	ErrNotInteractive = errors.New(messages.PromptRequiresTerminal)
	// ErrAborted is returned when the user dismisses the prompt.
	ErrAborted = errors.New(messages.PromptAborted)
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(title string, value *bool) error
}

// HuhUI implements Confirmer with charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI returns a HuhUI that checks terminal.IsInteractive before prompting.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return ErrNotInteractive
}

// keyMap lets both Esc and Ctrl+C abort the form.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	km.Confirm.Prev = key.NewBinding(key.WithDisabled())
	return km
}

// formFilter turns interrupts into a quit so the renderer clears the form.
func formFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

// Confirm renders a yes/no prompt on stderr. value holds the default on entry.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(value),
		),
	)
	form.WithKeyMap(keyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(formFilter),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Static answers without prompting. path --yes uses Static(true).
type Static bool

// Confirm sets value to the static answer.
func (s Static) Confirm(_ string, value *bool) error {
	*value = bool(s)
	return nil
}
