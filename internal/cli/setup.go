package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/valter-silva-au/holocron/internal/config"
	"github.com/valter-silva-au/holocron/internal/storage"
)

// setup wizard field indices
const (
	fieldTILPath = iota
	fieldNotesPath
	fieldFormat
	fieldCount
)

var setupFormats = []config.NotesFormat{
	config.FormatObsidian,
	config.FormatLogseq,
	config.FormatPlain,
}

type setupModel struct {
	tilInput   textinput.Model
	notesInput textinput.Model
	format     int
	focus      int
	errMsg     string

	done      bool
	cancelled bool
}

func newSetupModel() setupModel {
	ti := textinput.New()
	ti.Placeholder = "~/til"
	ti.CharLimit = 300
	ti.Focus()

	ni := textinput.New()
	ni.Placeholder = "~/notes (optional)"
	ni.CharLimit = 300

	return setupModel{
		tilInput:   ti,
		notesInput: ni,
		focus:      fieldTILPath,
	}
}

func (m setupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit

	case "tab", "down":
		m.blurCurrent()
		m.focus = (m.focus + 1) % fieldCount
		m.focusCurrent()
		return m, nil

	case "shift+tab", "up":
		m.blurCurrent()
		m.focus = (m.focus - 1 + fieldCount) % fieldCount
		m.focusCurrent()
		return m, nil

	case "enter":
		if strings.TrimSpace(m.tilInput.Value()) == "" {
			m.errMsg = "TIL path is required"
			m.blurCurrent()
			m.focus = fieldTILPath
			m.focusCurrent()
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	switch m.focus {
	case fieldTILPath:
		var cmd tea.Cmd
		m.tilInput, cmd = m.tilInput.Update(msg)
		return m, cmd
	case fieldNotesPath:
		var cmd tea.Cmd
		m.notesInput, cmd = m.notesInput.Update(msg)
		return m, cmd
	case fieldFormat:
		switch key.String() {
		case "left", "h":
			m.format = (m.format - 1 + len(setupFormats)) % len(setupFormats)
		case "right", "l":
			m.format = (m.format + 1) % len(setupFormats)
		}
	}

	return m, nil
}

func (m *setupModel) blurCurrent() {
	switch m.focus {
	case fieldTILPath:
		m.tilInput.Blur()
	case fieldNotesPath:
		m.notesInput.Blur()
	}
}

func (m *setupModel) focusCurrent() {
	switch m.focus {
	case fieldTILPath:
		m.tilInput.Focus()
		m.tilInput.CursorEnd()
	case fieldNotesPath:
		m.notesInput.Focus()
		m.notesInput.CursorEnd()
	}
}

func (m setupModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("51")).
		Padding(1, 2).
		Width(60)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")).
		Render("Welcome to Holocron - first-time setup")

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(setupLabel("TIL repo:", m.focus == fieldTILPath))
	b.WriteString("  ")
	b.WriteString(m.tilInput.View())
	b.WriteString("\n\n")
	b.WriteString(setupLabel("Notes:", m.focus == fieldNotesPath))
	b.WriteString("  ")
	b.WriteString(m.notesInput.View())
	b.WriteString("\n\n")
	b.WriteString(setupLabel("Format:", m.focus == fieldFormat))
	b.WriteString("  ")
	b.WriteString(m.renderFormats())
	b.WriteString("\n\n")
	if m.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("Enter: save  Esc: cancel  Tab: next  ←→: toggle format"))

	return boxStyle.Render(b.String())
}

func (m setupModel) renderFormats() string {
	parts := make([]string, 0, len(setupFormats))
	for i, f := range setupFormats {
		if i == m.format {
			style := lipgloss.NewStyle().Bold(true)
			if m.focus == fieldFormat {
				style = style.Foreground(lipgloss.Color("51"))
			}
			parts = append(parts, style.Render("● "+string(f)))
		} else {
			parts = append(parts, dimStyle.Render("○ "+string(f)))
		}
	}
	return strings.Join(parts, "   ")
}

func setupLabel(label string, focused bool) string {
	style := lipgloss.NewStyle().Width(9)
	if focused {
		style = style.Bold(true).Foreground(lipgloss.Color("51"))
	} else {
		style = style.Foreground(lipgloss.Color("252"))
	}
	return style.Render(label)
}

// runSetup walks first-time configuration, saves the resulting config, and
// scaffolds the TIL repo when it does not look like one yet.
func runSetup() (*config.Config, error) {
	m := newSetupModel()
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		// No usable terminal. Point at the non-interactive path instead.
		return nil, fmt.Errorf("setup requires a terminal (%w); configure manually with: holocron config --til-path <path>", err)
	}

	result := final.(setupModel)
	if result.cancelled {
		return nil, fmt.Errorf("setup cancelled: configure later with: holocron config --til-path <path>")
	}

	cfg := config.New(config.ExpandHome(strings.TrimSpace(result.tilInput.Value())))
	cfg.NotesPath = config.ExpandHome(strings.TrimSpace(result.notesInput.Value()))
	cfg.NotesFormat = setupFormats[result.format]

	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.TILPath, "README.md")); os.IsNotExist(err) {
		if _, err := storage.InitTILRepo(cfg.TILPath, cfg.ArchiveDir); err != nil {
			return nil, fmt.Errorf("scaffolding TIL repo: %w", err)
		}
		fmt.Printf("Scaffolded TIL repo at %s\n", cfg.TILPath)
	}

	fmt.Println(successStyle.Render("Setup complete."))
	return cfg, nil
}
