package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	adapter "github.com/ionut-t/synedit/adapter-bubbletea"
	"github.com/ionut-t/synedit/highlighter"
	"github.com/ionut-t/synedit/internal/config"
	"github.com/ionut-t/synedit/internal/log"
	"github.com/ionut-t/synedit/internal/watcher"
	"github.com/ionut-t/synedit/syntaxedit"
	"github.com/ionut-t/synedit/ui"
)

const messageDuration = 3 * time.Second

const sampleCode = `use std::collections::HashMap;

/// Counts how often each word appears.
fn word_counts(text: &str) -> HashMap<&str, usize> {
    let mut counts = HashMap::new();
    for word in text.split_whitespace() {
        *counts.entry(word).or_insert(0) += 1;
    }
    counts
}

fn main() {
    let counts = word_counts("the quick brown fox jumps over the lazy dog");
    println!("{:?}", counts.get("the"));
}
`

type fileChangedMsg struct{}
type clearStatusMsg struct{ id int }

type showcaseKeys struct {
	Quit  key.Binding
	Leave key.Binding
	Save  key.Binding
}

// footerKeys is what the help footer lists.
type footerKeys struct {
	editor   syntaxedit.KeyMap
	showcase showcaseKeys
}

func (k footerKeys) ShortHelp() []key.Binding {
	return append(k.editor.ShortHelp(), k.showcase.Save, k.showcase.Quit)
}

func (k footerKeys) FullHelp() [][]key.Binding {
	return append(k.editor.FullHelp(), []key.Binding{k.showcase.Save, k.showcase.Leave, k.showcase.Quit})
}

type showcase struct {
	host   *adapter.Model
	state  *syntaxedit.EditorState
	args   syntaxedit.SyntaxEditorArgs
	system *highlighter.SyntaxSystem
	scroll *ui.ScrollableState

	background ui.Color
	foreground ui.Color

	keys footerKeys
	help help.Model

	file     string
	lastText string
	status   string
	statusID int

	watcher *watcher.Watcher
	changes <-chan struct{}
}

func newShowcase(cfg config.Config) (*showcase, error) {
	ui.SetScaleFactor(adapter.DefaultScaleFactor)

	text := sampleCode
	if cfg.File != "" {
		content, err := os.ReadFile(expandHome(cfg.File))
		switch {
		case err == nil:
			text = string(content)
		case os.IsNotExist(err):
			text = ""
		default:
			return nil, fmt.Errorf("reading %s: %w", cfg.File, err)
		}
	}

	m := &showcase{
		system:   highlighter.NewSyntaxSystem(),
		scroll:   ui.NewScrollableState(),
		file:     cfg.File,
		lastText: text,
		help:     help.New(),
		keys: footerKeys{
			editor: syntaxedit.DefaultKeyMap(),
			showcase: showcaseKeys{
				Quit:  key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
				Leave: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit when unfocused")),
				Save:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
			},
		},
	}
	m.background, m.foreground = themeColors(m.system, cfg.Editor.Theme)

	opts := []syntaxedit.StateOption{syntaxedit.WithText(text)}
	if cfg.Editor.SelectionColor != "" {
		c, err := ui.ParseHex(cfg.Editor.SelectionColor)
		if err != nil {
			return nil, fmt.Errorf("selection color: %w", err)
		}
		opts = append(opts, syntaxedit.WithSelectionColor(c.WithAlpha(0.4)))
	}
	m.state = syntaxedit.NewEditorState(ui.Dp(cfg.Editor.LineHeight), opts...)

	args, err := m.editorArgs(cfg)
	if err != nil {
		return nil, err
	}
	m.args = args

	if cfg.File != "" && cfg.Watch {
		if err := m.watch(cfg.File); err != nil {
			log.ErrorErr(log.CatWatcher, "watch failed", err, "file", cfg.File)
		}
	}

	m.host = adapter.New(m.build, 0, 0,
		adapter.WithBackground(m.background),
		adapter.WithBlink(m.state.Blink()),
	)
	return m, nil
}

func (m *showcase) editorArgs(cfg config.Config) (syntaxedit.SyntaxEditorArgs, error) {
	var args syntaxedit.SyntaxEditorArgs
	switch cfg.Editor.Preset {
	case "simple":
		args = syntaxedit.Simple()
	case "outlined":
		args = syntaxedit.Outlined()
	case "minimal":
		args = syntaxedit.Minimal()
	default:
		args = syntaxedit.DefaultArgs()
	}

	args = args.
		WithWidth(ui.Fill()).
		WithHeight(ui.Fixed(ui.Dp(cfg.Editor.Height).ToPx())).
		WithBackgroundColor(m.background).
		WithFocusBackgroundColor(m.background).
		WithThemeName(cfg.Editor.Theme).
		WithFileExtension(cfg.ExtensionFor()).
		WithOnChange(m.onChange)

	if err := args.Validate(); err != nil {
		return args, fmt.Errorf("editor args: %w", err)
	}
	return args, nil
}

// themeColors picks the page colours from the theme so highlighted text
// stays readable.
func themeColors(system *highlighter.SyntaxSystem, theme string) (bg, fg ui.Color) {
	bg, fg = ui.RGB(0.18, 0.18, 0.18), ui.RGB(0.83, 0.82, 0.78)

	style, ok := system.Theme(theme)
	if !ok {
		return bg, fg
	}
	entry := style.Get(chroma.Background)
	if entry.Background.IsSet() {
		if c, err := ui.ParseHex(entry.Background.String()); err == nil {
			bg = c
		}
	}
	if entry.Colour.IsSet() {
		if c, err := ui.ParseHex(entry.Colour.String()); err == nil {
			fg = c
		}
	}
	return bg, fg
}

func (m *showcase) build(s *ui.Scope) {
	s.Node("showcase", func(s *ui.Scope) {
		ui.Surface(s, ui.SurfaceArgs{Width: ui.Fill(), Height: ui.Fill(), Color: m.background}, func(s *ui.Scope) {
			ui.Scrollable(s, m.scroll, func(s *ui.Scope) {
				ui.Surface(s, ui.SurfaceArgs{Width: ui.Fill(), Height: ui.Wrap(), Padding: 25, Color: m.background}, func(s *ui.Scope) {
					ui.Column(s, func(s *ui.Scope) {
						ui.Text(s, "Syntax Editor Showcase", ui.TextArgs{Color: m.foreground, Bold: true})
						ui.Spacer(s, 0, 10)
						syntaxedit.SyntaxEditorWith(s, m.args, m.state, m.system)
					})
				})
			})
		})

		// A press nothing else took lands outside the editor
		s.Input(func(in *ui.InputContext) {
			for _, ev := range in.CursorEvents {
				if ev.Kind == ui.CursorPressed && m.state.IsFocused() {
					m.state.Unfocus()
				}
			}
		})
	})
}

// onChange accepts every edit and logs what changed.
func (m *showcase) onChange(text string) string {
	inserted, deleted := changeSummary(m.lastText, text)
	log.Debug(log.CatEditor, "text changed", "inserted", inserted, "deleted", deleted, "runes", utf8.RuneCountInString(text))
	m.lastText = text
	return text
}

// changeSummary counts the runes inserted and deleted between two versions.
func changeSummary(before, after string) (inserted, deleted int) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += utf8.RuneCountInString(d.Text)
		case diffmatchpatch.DiffDelete:
			deleted += utf8.RuneCountInString(d.Text)
		}
	}
	return inserted, deleted
}

func (m *showcase) watch(file string) error {
	w, err := watcher.New(watcher.DefaultConfig(expandHome(file)))
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return err
	}
	m.watcher = w
	m.changes = changes
	return nil
}

func (m *showcase) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// Close releases the file watcher.
func (m *showcase) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Stop()
}

func (m *showcase) Init() tea.Cmd {
	return tea.Batch(m.host.Init(), m.waitForChange())
}

func (m *showcase) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.host.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.showcase.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.showcase.Leave) && !m.state.IsFocused():
			return m, tea.Quit
		case key.Matches(msg, m.keys.showcase.Save):
			return m, m.save()
		}

	case fileChangedMsg:
		return m, tea.Batch(m.reload(), m.waitForChange())

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	_, cmd := m.host.Update(msg)
	return m, cmd
}

func (m *showcase) reload() tea.Cmd {
	content, err := os.ReadFile(expandHome(m.file))
	if err != nil {
		log.ErrorErr(log.CatWatcher, "reload failed", err, "file", m.file)
		return m.setStatus(err.Error())
	}

	text := string(content)
	if text == m.state.Text() {
		return nil
	}

	log.Info(log.CatWatcher, "file changed on disk", "file", m.file)
	m.state.SetText(text)
	m.lastText = text
	m.host.Refresh()
	return m.setStatus(fmt.Sprintf("reloaded %s", m.file))
}

func (m *showcase) save() tea.Cmd {
	if m.file == "" {
		return m.setStatus("no file to save to, start with --file")
	}

	text := m.state.Text()
	if err := os.WriteFile(expandHome(m.file), []byte(text), 0644); err != nil {
		log.ErrorErr(log.CatEditor, "save failed", err, "file", m.file)
		return m.setStatus(err.Error())
	}
	return m.setStatus(fmt.Sprintf("%d bytes written to %s", len(text), m.file))
}

func (m *showcase) setStatus(status string) tea.Cmd {
	m.status = status
	m.statusID++
	id := m.statusID
	return tea.Tick(messageDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m *showcase) View() string {
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = lipgloss.NewStyle().Foreground(lipgloss.Color(m.foreground.Hex())).Render(m.status)
	}
	return m.host.View() + "\n" + footer
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
